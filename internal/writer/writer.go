// internal/writer/writer.go
package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tempwire/tempwire/internal/poller"
)

// TimestampLayout is the local date-time format recorded per row.
const TimestampLayout = "2006-01-02T15:04:05.000"

// header is written once when a device file is first created.
var header = []string{"uid", "timestamp", "temperature"}

// FileWriter appends samples to one CSV file per device address,
// Excel dialect: comma-delimited, CRLF line endings, double-quote
// escaping. The file handle is held for a single append only.
type FileWriter struct {
	dir string
}

func New(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

// Path returns the CSV file path for a device address.
func (w *FileWriter) Path(address string) string {
	return filepath.Join(w.dir, address+".csv")
}

// Append writes one sample row, creating the file and header first if
// needed. The file is flushed and closed on every exit path.
func (w *FileWriter) Append(s poller.Sample) error {
	path := w.Path(s.Address)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("writer: open %s: %w", path, err)
	}

	werr := appendRecord(f, s)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return fmt.Errorf("writer: close %s: %w", path, cerr)
	}
	return nil
}

func appendRecord(f *os.File, s poller.Sample) error {
	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("writer: stat %s: %w", f.Name(), err)
	}

	cw := csv.NewWriter(f)
	cw.UseCRLF = true

	if st.Size() == 0 {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("writer: header %s: %w", f.Name(), err)
		}
	}

	row := []string{
		s.Address,
		s.At.Format(TimestampLayout),
		strconv.FormatFloat(s.Temperature, 'f', -1, 64),
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("writer: row %s: %w", f.Name(), err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writer: flush %s: %w", f.Name(), err)
	}
	return nil
}
