package app

import (
	"fmt"
	"strings"
)

// Default values for the ambient settings.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Throw      string // raw positional argument
	SingleShot bool   // true when a throw argument was supplied

	LogFormat string
	LogLevel  string
	Color     bool
}

// NewConfig normalizes and validates cfg. Empty log settings fall back to
// the defaults.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if !cfg.SingleShot && cfg.Throw != "" {
		return nil, fmt.Errorf("throw %q given without single-shot mode", cfg.Throw)
	}

	return &cfg, nil
}
