// Package config holds the game configuration: window mode, asset
// location, logging and the dance-mat button mapping. Configuration lives
// in a YAML file under the user state directory and can be hot-reloaded.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"dancerunaway/internal/input"
)

// Config is the full game configuration.
type Config struct {
	// Window runs the game windowed instead of fullscreen.
	Window bool `yaml:"window"`

	// Debug maps the keyboard arrows to steps, for development without a
	// dance mat.
	Debug bool `yaml:"debug"`

	// AssetsDir is the root of the media tree.
	AssetsDir string `yaml:"assets_dir"`

	Logging LoggingConfig `yaml:"logging"`

	// ButtonMapping binds raw joystick button numbers to pad names
	// (cross, up, circle, right, square, down, triangle, left).
	ButtonMapping map[int]string `yaml:"button_mapping"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the default configuration, matching the reference
// dance mat.
func Default() *Config {
	return &Config{
		AssetsDir: "assets",
		Logging:   LoggingConfig{Level: "info"},
		ButtonMapping: map[int]string{
			6: "cross",
			2: "up",
			7: "circle",
			3: "right",
			5: "square",
			1: "down",
			4: "triangle",
			0: "left",
		},
	}
}

// Load reads the configuration at path, overlaying the defaults. A missing
// file yields the defaults. Environment overrides apply last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("DANCE_RUNAWAY_ASSETS"); dir != "" {
		c.AssetsDir = dir
	}
	if v := os.Getenv("DANCE_RUNAWAY_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

// Mapping builds the input mapping from the configured button bindings.
func (c *Config) Mapping() (input.Mapping, error) {
	m, err := input.NewMapping(c.ButtonMapping)
	if err != nil {
		return input.Mapping{}, fmt.Errorf("invalid button_mapping: %w", err)
	}
	return m, nil
}

// StateDir returns the per-user state directory for the game.
func StateDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, "dance-runaway"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ScoresPath returns the default scores database location.
func ScoresPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "scores.db"), nil
}
