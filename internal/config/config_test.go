// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"log/slog"
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBPath != "./data/blogicum.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/blogicum.db")
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr(), "localhost:8080")
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment = false, want true")
	}
	if cfg.RateLimitRPS != 20 {
		t.Errorf("RateLimitRPS = %v, want 20", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 40 {
		t.Errorf("RateLimitBurst = %d, want 40", cfg.RateLimitBurst)
	}
	if cfg.RequestTimeout != 15 {
		t.Errorf("RequestTimeout = %d, want 15", cfg.RequestTimeout)
	}
	if cfg.DoSeed {
		t.Error("DoSeed = true, want false")
	}
}

func TestLoadCustomValues(t *testing.T) {
	os.Clearenv()
	t.Setenv("BLOGICUM_DB_PATH", "/tmp/custom.db")
	t.Setenv("BLOGICUM_SERVER_HOST", "0.0.0.0")
	t.Setenv("BLOGICUM_SERVER_PORT", "9000")
	t.Setenv("BLOGICUM_ENV", "production")
	t.Setenv("BLOGICUM_DO_SEED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/tmp/custom.db")
	}
	if cfg.ServerAddr() != "0.0.0.0:9000" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr(), "0.0.0.0:9000")
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment = true, want false")
	}
	if !cfg.DoSeed {
		t.Error("DoSeed = false, want true")
	}
}

func TestLoadRejectsInvalidLimits(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero rps", "BLOGICUM_RATE_LIMIT_RPS", "0"},
		{"negative rps", "BLOGICUM_RATE_LIMIT_RPS", "-1"},
		{"zero timeout", "BLOGICUM_REQUEST_TIMEOUT", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load with %s=%s succeeded, want error", tt.key, tt.value)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := Config{LogLevel: tt.level}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
