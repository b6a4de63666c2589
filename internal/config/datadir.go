// internal/config/datadir.go
package config

import (
	"fmt"
	"os"
)

// EnsureDataDir makes sure the data directory exists and is a directory,
// creating it (including parents) when absent.
//
// A data path that exists as a regular file is a configuration error.
// A creation failure aborts startup as well: every later sample write
// would fail against the same path.
func EnsureDataDir(cfg *Config) error {
	st, err := os.Stat(cfg.DataDir)
	switch {
	case err == nil:
		if !st.IsDir() {
			return fmt.Errorf("data path %s is a file, not a folder", cfg.DataDir)
		}
		return nil

	case os.IsNotExist(err):
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("cannot create data folder %s: %w", cfg.DataDir, err)
		}
		return nil

	default:
		return fmt.Errorf("data path %s: %w", cfg.DataDir, err)
	}
}
