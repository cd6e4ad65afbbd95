// Package config loads the editor's YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/worldedit/internal/scene"
	"github.com/samdwyer/worldedit/internal/world"
)

const (
	DefaultDoubleClickMs = 400
	DefaultFileName      = ".worldedit.yaml"

	// Environment overrides, applied after the file is read.
	EnvConfig    = "WORLDEDIT_CONFIG"
	EnvLibrary   = "WORLDEDIT_LIBRARY"
	EnvTelemetry = "WORLDEDIT_TELEMETRY"
)

// Config holds the editor settings read from the yaml file.
type Config struct {
	Width               int         `yaml:"width"`
	Length              int         `yaml:"length"`
	ActionsLimit        string      `yaml:"actions_limit"`
	InitialBeepersCount string      `yaml:"initial_beepers_count"`
	DoubleClickMs       int         `yaml:"double_click_ms"`
	Library             string      `yaml:"library"`
	LogFile             string      `yaml:"log_file"`
	Telemetry           bool        `yaml:"telemetry"`
	Theme               ThemeConfig `yaml:"theme"`
}

// ThemeConfig holds hex colors for the cell kinds. Empty values keep the
// built-in color.
type ThemeConfig struct {
	Wall   string `yaml:"wall"`
	Marker string `yaml:"marker"`
	Agent  string `yaml:"agent"`
	Cursor string `yaml:"cursor"`
	Border string `yaml:"border"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Width:               world.DefaultWidth,
		Length:              world.DefaultLength,
		ActionsLimit:        scene.DefaultActionsLimit,
		InitialBeepersCount: scene.DefaultInitialBeepersCount,
		DoubleClickMs:       DefaultDoubleClickMs,
		Library:             defaultLibraryPath(),
		LogFile:             filepath.Join(os.TempDir(), "worldedit.log"),
		Telemetry:           true,
	}
}

// Load reads path over the defaults. A missing file is not an error when
// path is the implicit default location.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	implicit := path == ""
	if implicit {
		path = os.Getenv(EnvConfig)
		implicit = path == ""
	}
	if implicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	case implicit && os.IsNotExist(err):
	default:
		return nil, err
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values a session cannot start without.
func (c *Config) Validate() error {
	b := world.Bounds{Width: c.Width, Length: c.Length}
	if !b.Valid() {
		return &world.DimensionError{Width: c.Width, Length: c.Length}
	}
	if c.DoubleClickMs < 0 {
		return fmt.Errorf("double_click_ms must not be negative, got %d", c.DoubleClickMs)
	}
	return nil
}

// Settings returns the scene settings a new session starts with.
func (c *Config) Settings() scene.Settings {
	return scene.Settings{
		ActionsLimit:        c.ActionsLimit,
		InitialBeepersCount: c.InitialBeepersCount,
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLibrary); v != "" {
		c.Library = v
	}
	if v := os.Getenv(EnvTelemetry); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			c.Telemetry = on
		}
	}
}

func defaultLibraryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "worldedit.db"
	}
	return filepath.Join(dir, "worldedit", "library.db")
}
