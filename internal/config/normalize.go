// internal/config/normalize.go
package config

import "path/filepath"

// Normalize applies defaults and path cleanup.
// It is allowed to mutate configuration.
// It MUST be called before Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.AdapterName == "" {
		cfg.AdapterName = DefaultAdapterName
	}

	if cfg.DataDir != "" {
		cfg.DataDir = filepath.Clean(cfg.DataDir)
	}
}
