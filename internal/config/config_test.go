package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGIN", "")
	t.Setenv("ENV", "")
	t.Setenv("TOKEN_TTL_HOURS", "")
	t.Setenv("RATE_LIMIT_AUTH_MAX", "")
	t.Setenv("RATE_LIMIT_AUTH_WINDOW_SECONDS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.CORSOrigin != "*" {
		t.Errorf("CORSOrigin = %q, want *", cfg.CORSOrigin)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.TokenTTL)
	}
	if cfg.AuthRateMax != 20 || cfg.AuthRateWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 20/1m", cfg.AuthRateMax, cfg.AuthRateWindow)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "8080")
	t.Setenv("TOKEN_TTL_HOURS", "72")
	t.Setenv("RATE_LIMIT_AUTH_MAX", "5")
	t.Setenv("RATE_LIMIT_AUTH_WINDOW_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.TokenTTL != 72*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.AuthRateMax != 5 || cfg.AuthRateWindow != 30*time.Second {
		t.Errorf("rate limit = %d/%v", cfg.AuthRateMax, cfg.AuthRateWindow)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")
	if _, err := Load(); err == nil {
		t.Error("Load succeeded without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("Load succeeded without JWT_SECRET")
	}
}

func TestLoadBadTTL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TOKEN_TTL_HOURS", "zero")

	if _, err := Load(); err == nil {
		t.Error("Load accepted a non-numeric TOKEN_TTL_HOURS")
	}
}
