// Package config provides the optional locstat configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Scan ScanConfig `toml:"scan"`
}

// ScanConfig maps scan-related settings. Nil fields were absent from the
// file and leave the built-in default untouched.
type ScanConfig struct {
	AllTypes *bool     `toml:"all-types"`
	Threads  *int      `toml:"threads"`
	Ext      *[]string `toml:"ext"`
	Exclude  *[]string `toml:"exclude"`
	Depth    *int      `toml:"depth"`
	MinSize  *string   `toml:"min-size"`
	Summary  *bool     `toml:"summary"`
}

// Load reads a TOML config from the given path. A missing file is not an
// error.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}

		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}

	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}
