// internal/writer/writer_test.go
package writer

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/tempwire/tempwire/internal/poller"
)

func sampleAt(addr string, at time.Time, temp float64) poller.Sample {
	return poller.Sample{Address: addr, At: at, Temperature: temp}
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return rows
}

func TestAppend_HeaderOnceThenRows(t *testing.T) {
	w := New(t.TempDir())
	addr := "2825EA520510F3CE"
	base := time.Date(2018, 6, 14, 12, 30, 0, 0, time.Local)

	const n = 3
	for i := 0; i < n; i++ {
		s := sampleAt(addr, base.Add(time.Duration(i)*time.Second), 20.5+float64(i))
		if err := w.Append(s); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	rows := readAll(t, w.Path(addr))
	if len(rows) != n+1 {
		t.Fatalf("expected header + %d rows, got %d rows", n, len(rows))
	}
	if got := strings.Join(rows[0], ","); got != "uid,timestamp,temperature" {
		t.Fatalf("header = %q", got)
	}

	// chronological, non-decreasing timestamps
	prev := time.Time{}
	for i, row := range rows[1:] {
		at, err := time.ParseInLocation(TimestampLayout, row[1], time.Local)
		if err != nil {
			t.Fatalf("row %d timestamp %q: %v", i, row[1], err)
		}
		if at.Before(prev) {
			t.Fatalf("row %d out of order: %v before %v", i, at, prev)
		}
		prev = at
	}
}

func TestAppend_RoundTrip(t *testing.T) {
	w := New(t.TempDir())
	at := time.Date(2018, 6, 14, 12, 30, 45, 125_000_000, time.Local)
	s := sampleAt("1030AA520510F301", at, 21.9375)

	if err := w.Append(s); err != nil {
		t.Fatalf("append: %v", err)
	}

	rows := readAll(t, w.Path(s.Address))
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	row := rows[1]

	if row[0] != s.Address {
		t.Errorf("uid = %q, want %q", row[0], s.Address)
	}
	if row[1] != "2018-06-14T12:30:45.125" {
		t.Errorf("timestamp = %q", row[1])
	}
	temp, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		t.Fatalf("temperature %q: %v", row[2], err)
	}
	if temp != s.Temperature {
		t.Errorf("temperature = %v, want %v", temp, s.Temperature)
	}
}

func TestAppend_CRLFLineEndings(t *testing.T) {
	w := New(t.TempDir())
	s := sampleAt("2825EA520510F3CE", time.Now(), -5.0625)

	if err := w.Append(s); err != nil {
		t.Fatalf("append: %v", err)
	}

	raw, err := os.ReadFile(w.Path(s.Address))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(raw, []byte("\r\n")) {
		t.Fatalf("no CRLF line endings in %q", raw)
	}
}

func TestAppend_EscapesDelimiter(t *testing.T) {
	// Device addresses never contain commas; the quoting rule still holds.
	w := New(t.TempDir())
	s := sampleAt("AB,CD", time.Now(), 1.5)

	if err := w.Append(s); err != nil {
		t.Fatalf("append: %v", err)
	}

	rows := readAll(t, w.Path(s.Address))
	if rows[1][0] != "AB,CD" {
		t.Fatalf("uid = %q after round trip", rows[1][0])
	}
}

func TestPath_JoinsDirAndAddress(t *testing.T) {
	w := New("data")

	want := filepath.Join("data", "2825EA520510F3CE.csv")
	if got := w.Path("2825EA520510F3CE"); got != want {
		t.Fatalf("Path = %q, want %q", got, want)
	}
}
