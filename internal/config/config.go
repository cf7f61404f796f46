// Package config provides configuration for the chess rules engine and
// the chessrules command.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Rules   Rules     `yaml:"rules"`
	Log     LogConfig `yaml:"log"`
	Workers int       `yaml:"workers"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:   NewRules(),
		Log:     NewLogConfig(),
		Workers: 1,
	}
}

// Load reads a YAML configuration file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg, err := Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Parse decodes YAML configuration on top of the defaults and validates it.
func Parse(raw []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "parse config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}
