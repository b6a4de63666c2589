// internal/status/status.go
package status

import "time"

// Health of one sensor as seen by the scan loop.
type Health uint8

const (
	// HealthUnknown is the boot state, before the first sample attempt.
	HealthUnknown Health = iota

	// HealthOK means the last sample attempt succeeded.
	HealthOK

	// HealthError means the last sample attempt failed.
	HealthError
)

func (h Health) String() string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthError:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot is the current state of one device.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health    Health
	LastError string    // empty while healthy
	Since     time.Time // when the current health state was entered
}
