// Package config loads and persists tfc's application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the persisted application settings. The core combine
// logic never touches this; it belongs to the CLI surface, like the window
// settings of the original GUI.
type Config struct {
	// LastDirectory is the directory of the most recent combined output.
	LastDirectory string `yaml:"last_directory"`
	// OutputDir is where default-named outputs are written.
	OutputDir string `yaml:"output_dir"`
	// Debug enables debug logging without the --debug flag.
	Debug bool `yaml:"debug"`
}

// DefaultPath returns the default config location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "tfc", "config.yaml"), nil
}

// Load reads and parses the configuration file. A missing file is not an
// error; it yields a config with defaults applied.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.expandEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// expandEnv expands environment variables in path fields.
func (c *Config) expandEnv() {
	c.LastDirectory = os.ExpandEnv(c.LastDirectory)
	c.OutputDir = os.ExpandEnv(c.OutputDir)
}

// applyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
}
