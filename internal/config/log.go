package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() LogConfig {
	return LogConfig{Level: "info", Format: "console"}
}

// Validate checks that the log settings are known values.
func (l LogConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q: %w", l.Format, errors.ErrInvalidConfig)
	}
	return nil
}
