package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pterm/pterm"
)

// Config controls the game front-end. Values are read from the environment
// at startup.
type Config struct {
	MaxHints int    `env:"CARD24_MAX_HINTS" envDefault:"3"`
	MaxDepth int    `env:"CARD24_MAX_DEPTH" envDefault:"64"`
	LogLevel string `env:"CARD24_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxHints < 1 {
		return Config{}, fmt.Errorf("CARD24_MAX_HINTS must be at least 1, got %d", cfg.MaxHints)
	}
	if cfg.MaxDepth < 1 {
		return Config{}, fmt.Errorf("CARD24_MAX_DEPTH must be at least 1, got %d", cfg.MaxDepth)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level maps LogLevel onto the terminal logger's levels.
func (c Config) Level() (pterm.LogLevel, error) {
	switch strings.ToLower(c.LogLevel) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return pterm.LogLevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
