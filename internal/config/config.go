package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	Port        string
	CORSOrigin  string
	Env         string

	// Rate limit for the auth endpoints (requests per window).
	AuthRateMax    int
	AuthRateWindow time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	cfg := &Config{
		DatabaseURL:    dsn,
		JWTSecret:      secret,
		TokenTTL:       24 * time.Hour,
		Port:           envOr("PORT", "5000"),
		CORSOrigin:     envOr("CORS_ORIGIN", "*"),
		Env:            envOr("ENV", "dev"),
		AuthRateMax:    envOrInt("RATE_LIMIT_AUTH_MAX", 20),
		AuthRateWindow: time.Duration(envOrInt("RATE_LIMIT_AUTH_WINDOW_SECONDS", 60)) * time.Second,
	}

	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL_HOURS must be a positive integer, got %q", v)
		}
		cfg.TokenTTL = time.Duration(hours) * time.Hour
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
