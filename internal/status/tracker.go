// internal/status/tracker.go
package status

import "time"

// Tracker keeps per-device health and reports transitions.
// Not safe for concurrent use; the record loop owns it.
type Tracker struct {
	devices map[string]Snapshot
}

func NewTracker() *Tracker {
	return &Tracker{devices: make(map[string]Snapshot)}
}

// Observe records the outcome of one sample attempt for a device.
// It returns the new snapshot and whether the health state changed.
func (t *Tracker) Observe(address string, at time.Time, err error) (Snapshot, bool) {
	prev := t.devices[address]

	next := Snapshot{Health: HealthOK, Since: prev.Since}
	if err != nil {
		next.Health = HealthError
		next.LastError = err.Error()
	}

	changed := prev.Health != next.Health
	if changed {
		next.Since = at
	}

	t.devices[address] = next
	return next, changed
}

// Snapshot returns the current state for a device address.
func (t *Tracker) Snapshot(address string) (Snapshot, bool) {
	s, ok := t.devices[address]
	return s, ok
}
