// internal/poller/types.go
package poller

import (
	"fmt"
	"time"
)

// Sample is one temperature reading from one bus device.
// Ephemeral: handed to the writer immediately, not retained.
type Sample struct {
	Address     string
	At          time.Time
	Temperature float64 // degrees Celsius, as reported by the device
}

// DeviceError records a per-device failure during one scan pass.
// The device's sample is dropped for the pass; the pass continues.
type DeviceError struct {
	Address string
	Err     error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device %s: %v", e.Address, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// ScanResult is the outcome of one enumeration pass over the bus.
type ScanResult struct {
	At      time.Time
	Samples []Sample
	Faults  []*DeviceError

	Err error // non-nil means enumeration itself failed
}
