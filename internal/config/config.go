// Package config provides configuration loading for the editor.
//
// Configuration comes from three layers, later layers overriding
// earlier ones: built-in defaults, a TOML file, and SKEIN_* environment
// variables. A Watcher can monitor the file for live reload.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full editor configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Logging LoggingConfig `toml:"logging"`
}

// EditorConfig holds editor behavior settings.
type EditorConfig struct {
	// TabWidth is the display width of a tab character in cells.
	TabWidth int `toml:"tab_width"`
	// ScrollMarginVertical keeps the cursor this many lines from the
	// top and bottom window edges.
	ScrollMarginVertical int `toml:"scroll_margin_vertical"`
	// ScrollMarginHorizontal keeps the cursor this many cells from the
	// left and right window edges.
	ScrollMarginHorizontal int `toml:"scroll_margin_horizontal"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabWidth:               4,
			ScrollMarginVertical:   2,
			ScrollMarginHorizontal: 6,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration file at path, applying defaults for
// missing values and environment overrides on top. A missing file is not
// an error; the defaults and environment are still applied.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Fall through to env overrides.
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// envPrefix prefixes all configuration environment variables.
const envPrefix = "SKEIN_"

// applyEnv overrides settings from SKEIN_* environment variables.
func (c *Config) applyEnv() {
	if v, ok := lookupInt(envPrefix + "TAB_WIDTH"); ok {
		c.Editor.TabWidth = v
	}
	if v, ok := lookupInt(envPrefix + "SCROLL_MARGIN_VERTICAL"); ok {
		c.Editor.ScrollMarginVertical = v
	}
	if v, ok := lookupInt(envPrefix + "SCROLL_MARGIN_HORIZONTAL"); ok {
		c.Editor.ScrollMarginHorizontal = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok && v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("editor.tab_width %d out of range [1,16]", c.Editor.TabWidth)
	}
	if c.Editor.ScrollMarginVertical < 0 {
		return fmt.Errorf("editor.scroll_margin_vertical %d is negative", c.Editor.ScrollMarginVertical)
	}
	if c.Editor.ScrollMarginHorizontal < 0 {
		return fmt.Errorf("editor.scroll_margin_horizontal %d is negative", c.Editor.ScrollMarginHorizontal)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

func lookupInt(name string) (int, bool) {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
