// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration and MUST NOT touch the filesystem.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil configuration")
	}

	if cfg.DataDir == "" {
		return errors.New("missing required option --data")
	}
	if cfg.Port == "" {
		return errors.New("missing required option --adapter-port")
	}
	if cfg.WaitTimeMs < 0 {
		return fmt.Errorf("--wait-time must be >= 0, got %d", cfg.WaitTimeMs)
	}
	if cfg.AdapterName == "" {
		return errors.New("adapter name must not be empty")
	}

	return nil
}
