// Package config loads the viewer host configuration.
//
// The copy pipeline itself takes no configuration; this file configures the
// bundled viewer: locale, key bindings, and display options.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Keys maps viewer actions to single-rune key bindings.
type Keys struct {
	CopyRelative string `toml:"copy_relative"`
	CopyAbsolute string `toml:"copy_absolute"`
	Quit         string `toml:"quit"`
}

// Config is the viewer host configuration.
type Config struct {
	// Locale selects the message catalog (BCP 47, e.g. "en", "de-AT").
	Locale string `toml:"locale"`

	// LogLevel sets the minimum log level ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// ShowLineNumbers toggles the line number gutter.
	ShowLineNumbers bool `toml:"show_line_numbers"`

	// Keys are the viewer key bindings.
	Keys Keys `toml:"keys"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Locale:          "en",
		LogLevel:        "info",
		ShowLineNumbers: true,
		Keys: Keys{
			CopyRelative: "r",
			CopyAbsolute: "a",
			Quit:         "q",
		},
	}
}

// DefaultPath returns the conventional config file location, or "" when the
// user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "copyline", "config.toml")
}

// Load reads the TOML config at path. A missing file is not an error and
// yields the defaults. Fields absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
