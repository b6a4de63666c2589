// internal/poller/onewire/client.go
package onewire

import (
	"errors"
	"fmt"
	"strings"

	digitemp "github.com/mcsakoff/go-digitemp"
	"go.bug.st/serial"

	"github.com/tempwire/tempwire/internal/poller"
)

var (
	// ErrAdapterNotDetected means the physical adapter could not be
	// confirmed on the named port. Fatal at startup, never retried.
	ErrAdapterNotDetected = errors.New("onewire: adapter not detected")

	// ErrUnknownAdapter means the adapter name resolves to no driver.
	ErrUnknownAdapter = errors.New("onewire: unknown adapter name")
)

// Temperature-sensing 1-Wire family codes.
const (
	familyDS18S20 = 0x10
	familyDS1822  = 0x22
	familyDS18B20 = 0x28
)

// drivers maps normalized adapter names to the passive-UART driver.
// The DS9097 family are passive serial adapters driven directly
// through UART timing; that is the only driver digitemp implements.
var drivers = map[string]struct{}{
	"DS9097":  {},
	"DS9097E": {},
}

// Client implements poller.Bus over a serial 1-Wire adapter.
//
// The Client owns the only handle to the serial port for the process
// lifetime, and the driver serializes every bus transaction behind its
// internal lock; together these give the exclusive bus access the scan
// loop relies on. Each enumeration pass issues a bus reset and a
// full-device (not alarm-only) ROM search.
type Client struct {
	uart *digitemp.UARTAdapter
	port string
}

// Open resolves the adapter driver by name, verifies the port is
// present, and claims the serial port.
func Open(adapterName, port string) (*Client, error) {
	name := normalizeAdapterName(adapterName)
	if _, ok := drivers[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAdapter, adapterName)
	}

	if !portPresent(port) {
		return nil, fmt.Errorf("%w: port %s not found", ErrAdapterNotDetected, port)
	}

	uart, err := digitemp.NewUartAdapter(port)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAdapterNotDetected, port, err)
	}

	return &Client{uart: uart, port: port}, nil
}

// Close releases the serial port.
func (c *Client) Close() error {
	return c.uart.Close()
}

// Port returns the serial port the adapter was opened on.
func (c *Client) Port() string {
	return c.port
}

// Devices enumerates every device currently present on the bus.
// Devices in temperature-sensing families carry the poller.Thermometer
// capability; all other families come back as plain devices.
func (c *Client) Devices() ([]poller.Device, error) {
	roms, err := c.uart.GetConnectedROMs()
	if err != nil {
		return nil, fmt.Errorf("onewire: rom search: %w", err)
	}

	devices := make([]poller.Device, 0, len(roms))
	for _, rom := range roms {
		base := romDevice{rom: rom}
		switch rom.Code[0] {
		case familyDS18S20, familyDS1822, familyDS18B20:
			devices = append(devices, &thermometer{romDevice: base, uart: c.uart})
		default:
			devices = append(devices, base)
		}
	}
	return devices, nil
}

// normalizeAdapterName strips the {} wrapper and upper-cases, so
// "{DS9097E}" and "ds9097e" resolve to the same driver.
func normalizeAdapterName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "{")
	name = strings.TrimSuffix(name, "}")
	return strings.ToUpper(name)
}

// portPresent checks the OS serial port list for the named port.
// If the list cannot be obtained the check is skipped: opening the
// port stays the authoritative test.
func portPresent(port string) bool {
	ports, err := serial.GetPortsList()
	if err != nil || len(ports) == 0 {
		return true
	}
	for _, p := range ports {
		if p == port {
			return true
		}
	}
	return false
}
