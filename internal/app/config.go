package app

import (
	"fmt"

	"github.com/vk/hepnos-wizard/internal/config"
	"github.com/vk/hepnos-wizard/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProfilePath string // optional HCL profile file or directory
	OutputPath  string // empty means the app's output writer
	Format      render.Format

	// Overrides are applied on top of the profile.
	Overrides *config.Profile

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = render.FormatJSON
	}
	if _, err := render.ParseFormat(string(cfg.Format)); err != nil {
		return nil, err
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.Overrides == nil {
		cfg.Overrides = &config.Profile{}
	}
	return &cfg, nil
}
