package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port      string
	Env       string
	DBDriver  string
	DBDSN     string
	JWTSecret string
	JWTExpiry time.Duration
}

func Load() Config {
	cfg := Config{
		Port:      getEnv("PORT", "3003"),
		Env:       getEnv("ENV", "development"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBDSN:     getEnv("DB_DSN", "file:bloglist.db"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry: 24 * time.Hour,
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
