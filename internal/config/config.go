// Package config loads the tool's YAML configuration.
//
// Configuration covers only host-side defaults: log verbosity, render
// surface dimensions and the default merge selection policy. The core
// engines take everything they need as arguments and never read config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the tool configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Render  RenderConfig  `yaml:"render"`
	Merge   MergeConfig   `yaml:"merge"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `yaml:"level"`
	// Pretty enables the human-readable console writer.
	Pretty bool `yaml:"pretty"`
}

// RenderConfig sets the default raster surface dimensions.
type RenderConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MergeConfig sets merge defaults.
type MergeConfig struct {
	// Select is the default bulk selection policy
	// (matched, green, yellow, all-linked or none).
	Select string `yaml:"select"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Pretty: true},
		Render:  RenderConfig{Width: 512, Height: 512},
		Merge:   MergeConfig{Select: "matched"},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "mapmerge", "config.yaml"), nil
}

// Load reads a YAML config file layered over the defaults. An empty path
// means the per-user location; a missing file there is not an error and
// yields the defaults. An explicitly given path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values without touching the filesystem.
func (c Config) Validate() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	if c.Render.Width < 1 || c.Render.Height < 1 {
		return fmt.Errorf("render dimensions must be positive (got %dx%d)", c.Render.Width, c.Render.Height)
	}
	switch c.Merge.Select {
	case "matched", "green", "yellow", "all-linked", "none":
	default:
		return fmt.Errorf("invalid merge.select %q", c.Merge.Select)
	}
	return nil
}
