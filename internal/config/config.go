// internal/config/config.go
package config

import "time"

// DefaultAdapterName is the adapter driver used when none is given.
// The braces format follows the DS9097E naming convention of the
// original logger.
const DefaultAdapterName = "{DS9097E}"

// Config is the validated runtime configuration.
// Immutable after Validate; one per process run.
type Config struct {
	// DataDir is the directory that receives one CSV file per sensor.
	DataDir string `yaml:"data_dir"`

	// Port is the serial port the bus adapter is attached to,
	// e.g. COM3 or /dev/ttyUSB0.
	Port string `yaml:"adapter_port"`

	// AdapterName selects the adapter driver.
	AdapterName string `yaml:"adapter_name"`

	// WaitTimeMs is the idle delay between scan passes, in milliseconds.
	// Zero means back-to-back passes.
	WaitTimeMs int `yaml:"wait_time_ms"`
}

// Default returns a Config carrying only defaults.
func Default() *Config {
	return &Config{
		AdapterName: DefaultAdapterName,
	}
}

// Interval is the idle delay between scan passes.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.WaitTimeMs) * time.Millisecond
}
