package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the plugin-local configuration, section [main].
type Config struct {
	Main MainConfig `koanf:"main" toml:"main"`
}

// MainConfig holds the recognized keys of the main section.
type MainConfig struct {
	// Frontend is passed through opaquely to the interactive frontend.
	Frontend string `koanf:"frontend" toml:"frontend"`

	// Unattended selects a non-interactive policy: diff, maintainer or
	// user. Any other value is treated as absent.
	Unattended string `koanf:"unattended" toml:"unattended"`

	// ScanPaths are the directories searched for leftover variant
	// files when no explicit paths are given on the command line.
	ScanPaths []string `koanf:"scan_paths" toml:"scan_paths"`
}

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		Main: MainConfig{
			Frontend:   "",
			Unattended: "",
			ScanPaths:  []string{"/etc"},
		},
	}
}

// DefaultTOML renders the default configuration as a TOML document, used
// by the genconfig command.
func DefaultTOML() ([]byte, error) {
	return toml.Marshal(Default())
}

// DefaultPath returns the expected location of the user's config file.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "confmend", "confmend.toml")
}
