// internal/status/tracker_test.go
package status

import (
	"errors"
	"testing"
	"time"
)

func TestObserve_FirstSuccessIsTransition(t *testing.T) {
	tr := NewTracker()
	at := time.Now()

	snap, changed := tr.Observe("28AA", at, nil)
	if !changed {
		t.Fatalf("unknown -> ok must be a transition")
	}
	if snap.Health != HealthOK || snap.LastError != "" {
		t.Fatalf("snapshot = %+v", snap)
	}
	if !snap.Since.Equal(at) {
		t.Fatalf("Since = %v, want %v", snap.Since, at)
	}
}

func TestObserve_SteadyStateIsQuiet(t *testing.T) {
	tr := NewTracker()
	first := time.Now()

	tr.Observe("28AA", first, nil)
	snap, changed := tr.Observe("28AA", first.Add(time.Second), nil)
	if changed {
		t.Fatalf("ok -> ok must not be a transition")
	}
	if !snap.Since.Equal(first) {
		t.Fatalf("Since moved on steady state: %v", snap.Since)
	}
}

func TestObserve_FailureAndRecovery(t *testing.T) {
	tr := NewTracker()
	base := time.Now()
	readErr := errors.New("scratchpad crc error")

	tr.Observe("28AA", base, nil)

	snap, changed := tr.Observe("28AA", base.Add(time.Second), readErr)
	if !changed || snap.Health != HealthError {
		t.Fatalf("ok -> error not reported: %+v changed=%v", snap, changed)
	}
	if snap.LastError != readErr.Error() {
		t.Fatalf("LastError = %q", snap.LastError)
	}

	snap, changed = tr.Observe("28AA", base.Add(2*time.Second), nil)
	if !changed || snap.Health != HealthOK {
		t.Fatalf("error -> ok not reported: %+v changed=%v", snap, changed)
	}
	if snap.LastError != "" {
		t.Fatalf("LastError not cleared: %q", snap.LastError)
	}
}

func TestObserve_DevicesAreIndependent(t *testing.T) {
	tr := NewTracker()
	at := time.Now()

	tr.Observe("28AA", at, errors.New("boom"))
	snap, _ := tr.Observe("28BB", at, nil)
	if snap.Health != HealthOK {
		t.Fatalf("28BB affected by 28AA: %+v", snap)
	}

	if got, ok := tr.Snapshot("28AA"); !ok || got.Health != HealthError {
		t.Fatalf("28AA snapshot = %+v ok=%v", got, ok)
	}
}

func TestHealthString(t *testing.T) {
	if HealthUnknown.String() != "unknown" || HealthOK.String() != "ok" || HealthError.String() != "error" {
		t.Fatalf("unexpected health strings: %s %s %s", HealthUnknown, HealthOK, HealthError)
	}
}
