// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

// AppConfig holds all application-wide configuration.
type AppConfig struct {
	ServerPort string
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	LogLevel   string
}

// LoadConfig loads configuration from environment variables, falling back
// to development defaults. JWT_SECRET has no default and is required.
func LoadConfig() (*AppConfig, error) {
	serverPort := getEnv("SERVER_PORT", "8080")
	dbPath := getEnv("DB_PATH", "data/splitsphere.db")
	logLevel := getEnv("LOG_LEVEL", "info")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	tokenTTLStr := getEnv("TOKEN_TTL", "24h")
	tokenTTL, err := time.ParseDuration(tokenTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	return &AppConfig{
		ServerPort: serverPort,
		DBPath:     dbPath,
		JWTSecret:  jwtSecret,
		TokenTTL:   tokenTTL,
		LogLevel:   logLevel,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
