package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDir = "aureus"

// DefaultConfigPath returns the user config file location under XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "config.json")
}

// DefaultCachePath returns the sqlite price cache location under XDG_STATE_HOME.
func DefaultCachePath() string {
	return filepath.Join(xdg.StateHome, appDir, "prices.db")
}

// DefaultDataPath returns the user data directory under XDG_DATA_HOME.
func DefaultDataPath() string {
	return filepath.Join(xdg.DataHome, appDir)
}
