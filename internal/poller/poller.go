// internal/poller/poller.go
package poller

import (
	"errors"
	"time"
)

// Bus abstracts the 1-Wire operations the poller needs: enumeration only.
// The adapter behind it owns exclusive bus access for the process lifetime.
type Bus interface {
	// Devices yields every device currently present on the bus,
	// in adapter-defined order. Handles are valid for one pass.
	Devices() ([]Device, error)
}

// Device is one device discovered during a scan pass.
type Device interface {
	Address() string
}

// Thermometer is the optional temperature-sensing capability of a Device.
// Temperature triggers a conversion and reads back the converted value.
type Thermometer interface {
	Device
	Temperature() (float64, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	// Interval is the idle delay between scan passes.
	// Zero means back-to-back passes.
	Interval time.Duration
}

// Poller is a dumb, clock-driven scanner.
type Poller struct {
	cfg Config
	bus Bus
}

// New creates a poller with immutable config.
func New(cfg Config, bus Bus) (*Poller, error) {
	if bus == nil {
		return nil, errors.New("poller: bus required")
	}
	if cfg.Interval < 0 {
		return nil, errors.New("poller: interval must be >= 0")
	}
	return &Poller{cfg: cfg, bus: bus}, nil
}

// PollOnce performs exactly one scan pass.
//
// Every present device is visited exactly once. Devices without the
// Thermometer capability are skipped silently. A failing device is
// recorded as a fault and does not stop the pass. An enumeration
// failure aborts the pass with ScanResult.Err set.
//
// Sample timestamps are captured once the device's conversion and
// readback have completed; Thermometer fuses both into one call, so
// the timestamp is not atomic with the physical sample.
func (p *Poller) PollOnce() ScanResult {
	res := ScanResult{At: time.Now()}

	devices, err := p.bus.Devices()
	if err != nil {
		res.Err = err
		return res
	}

	for _, dev := range devices {
		th, ok := dev.(Thermometer)
		if !ok {
			continue
		}

		tc, err := th.Temperature()
		at := time.Now()
		if err != nil {
			res.Faults = append(res.Faults, &DeviceError{
				Address: dev.Address(),
				Err:     err,
			})
			continue
		}

		res.Samples = append(res.Samples, Sample{
			Address:     dev.Address(),
			At:          at,
			Temperature: tc,
		})
	}

	return res
}
