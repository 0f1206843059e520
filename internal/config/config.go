// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"BLOGICUM_DB_PATH" envDefault:"./data/blogicum.db"`
	ServerHost string `env:"BLOGICUM_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"BLOGICUM_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"BLOGICUM_ENV" envDefault:"development"`
	LogLevel   string `env:"BLOGICUM_LOG_LEVEL" envDefault:"info"`

	// Public surface limits
	RateLimitRPS   float64 `env:"BLOGICUM_RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"BLOGICUM_RATE_LIMIT_BURST" envDefault:"40"`
	RequestTimeout int     `env:"BLOGICUM_REQUEST_TIMEOUT" envDefault:"15"` // seconds

	// Seeding configuration
	DoSeed bool `env:"BLOGICUM_DO_SEED" envDefault:"false"` // Enable demo data seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// SlogLevel maps the configured log level string to a slog.Level.
// Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
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

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.RateLimitRPS <= 0 {
		return nil, fmt.Errorf("BLOGICUM_RATE_LIMIT_RPS must be positive, got %v", cfg.RateLimitRPS)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("BLOGICUM_REQUEST_TIMEOUT must be positive, got %d", cfg.RequestTimeout)
	}

	return cfg, nil
}
