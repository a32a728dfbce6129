package config

import (
	"errors"
	"os"
)

// Config holds process-wide configuration, loaded once at startup and
// read-only afterwards.
type Config struct {
	ServerPort string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBDatabase string

	JWTSecret string

	RunMigrations bool
}

// Load reads configuration from the environment. A missing JWT_SECRET is a
// startup failure, not something to discover on the first request.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DBUser:        getEnv("DB_USER", "root"),
		DBPassword:    getEnv("DB_PASS", ""),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBDatabase:    getEnv("DB_NAME", "appfit_db"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RunMigrations: getEnv("RUN_MIGRATIONS", "true") == "true",
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET não configurado no arquivo .env")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
