package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the checkout backend.
type Config struct {
	Port        string
	Environment string

	// GhostsPay gateway
	GhostsSecretKey     string
	GhostsCompanyID     string
	GhostsPostbackURL   string
	GhostsBaseURL       string
	GhostsWebhookSecret string

	// Payment status store
	StoreBackend string // "memory" or "redis"
	RedisURL     string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	// .env is optional; real deployments inject env vars directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "4000"),
		Environment:         getEnv("APP_ENV", "development"),
		GhostsSecretKey:     os.Getenv("GHOSTS_SECRET_KEY"),
		GhostsCompanyID:     os.Getenv("GHOSTS_COMPANY_ID"),
		GhostsPostbackURL:   getEnv("GHOSTS_POSTBACK_URL", "http://localhost:4000/api/ghostspay/webhook"),
		GhostsBaseURL:       getEnv("GHOSTS_BASE_URL", "https://api.ghostspaysv2.com/functions/v1"),
		GhostsWebhookSecret: os.Getenv("GHOSTS_WEBHOOK_SECRET"),
		StoreBackend:        getEnv("STORE_BACKEND", "memory"),
		RedisURL:            getEnv("REDIS_URL", "redis://localhost:6379"),
	}

	if cfg.StoreBackend != "memory" && cfg.StoreBackend != "redis" {
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: must be memory or redis", cfg.StoreBackend)
	}

	return cfg, nil
}

// HasGatewayCredentials reports whether both GhostsPay credentials are set.
// Startup warns when they are missing; the checkout path fails the request.
func (c *Config) HasGatewayCredentials() bool {
	return c.GhostsSecretKey != "" && c.GhostsCompanyID != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
