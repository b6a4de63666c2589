// internal/poller/onewire/device.go
package onewire

import (
	digitemp "github.com/mcsakoff/go-digitemp"
)

// romDevice is a bus device identified by its 64-bit ROM code.
// Valid for one enumeration pass only.
type romDevice struct {
	rom *digitemp.ROM
}

func (d romDevice) Address() string {
	return d.rom.String()
}

// thermometer adds the temperature capability to a romDevice.
type thermometer struct {
	romDevice
	uart *digitemp.UARTAdapter
}

// Temperature binds a driver sensor to the ROM, triggers a conversion
// and reads back the converted value in degrees Celsius.
//
// The sensor binding is rebuilt each pass: discovered devices are
// transient, and a device that vanished since enumeration surfaces
// here as a per-sample error rather than a stale handle.
func (t *thermometer) Temperature() (float64, error) {
	sensor, err := digitemp.NewTemperatureSensor(t.uart, t.rom, true)
	if err != nil {
		return 0, err
	}
	tc, err := sensor.GetTemperatureFloat()
	if err != nil {
		return 0, err
	}
	return float64(tc), nil
}
