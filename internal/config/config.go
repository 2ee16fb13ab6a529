// Package config loads process-level settings from TSP_-prefixed
// environment variables. Algorithm parameters travel with the instance
// itself; only host concerns (parallelism, log verbosity) live here.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config is the environment-derived runtime configuration.
type Config struct {
	// Workers overrides the solver pool size; 0 keeps autodetection.
	Workers int `env:"WORKERS" envDefault:"0" validate:"gte=0"`

	// LogLevel selects the slog threshold for diagnostics on stderr.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// Load parses and validates the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "TSP_"}); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) {
			// Surface only the first problem; one actionable message
			// reads better than a wall of them.
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps the textual level onto its slog constant.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
