// Package config loads the preview demo configuration. Everything is
// optional: a missing file, a missing key, or an unset variable falls
// back to a safe default, never an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the cuipreview demo configuration, loaded from YAML with
// CUIPREVIEW_* environment overrides applied on top.
type Config struct {
	// Overlay toggles applied to new placeholders.
	ShowIndex    bool `yaml:"show_index"`
	ShowSize     bool `yaml:"show_size"`
	ShowPosition bool `yaml:"show_position"`

	// CornerRadius applied to new placeholders. 0 renders sharp corners.
	CornerRadius float64 `yaml:"corner_radius"`

	// Frame allocated to each placeholder on the canvas.
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`

	// Palette optionally replaces the built-in 11-color palette with a
	// list of hex colors ("#RRGGBB").
	Palette []string `yaml:"palette"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls the demo's file logger. The TUI owns the terminal,
// so there is no console output option.
type LogConfig struct {
	File    string `yaml:"file"`
	Verbose bool   `yaml:"verbose"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ShowIndex:    true,
		ShowSize:     true,
		ShowPosition: true,
		CornerRadius: 0,
		CellWidth:    0, // 0 lets the canvas pick its default
		CellHeight:   0,
		Log: LogConfig{
			File: "cuipreview.log",
		},
	}
}

// Load reads path, layering file values over Default and environment
// overrides over both. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Fall through to env overrides with pure defaults.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides layers CUIPREVIEW_* variables over the loaded values.
func (c *Config) applyEnvOverrides() {
	setBool := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}

	setBool("CUIPREVIEW_SHOW_INDEX", &c.ShowIndex)
	setBool("CUIPREVIEW_SHOW_SIZE", &c.ShowSize)
	setBool("CUIPREVIEW_SHOW_POSITION", &c.ShowPosition)
	setBool("CUIPREVIEW_VERBOSE", &c.Log.Verbose)

	if v := os.Getenv("CUIPREVIEW_CORNER_RADIUS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.CornerRadius = f
		}
	}
	if v := os.Getenv("CUIPREVIEW_LOG_FILE"); v != "" {
		c.Log.File = v
	}
}
