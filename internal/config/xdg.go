package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns $XDG_CONFIG_HOME, falling back to ~/.config.
func XDGConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}

	return filepath.Join(home, ".config")
}

// DefaultPath returns the default location of the configuration file.
func DefaultPath() string {
	return filepath.Join(XDGConfigHome(), "locstat", "config.toml")
}
