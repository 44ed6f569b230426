package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs before it can serve a request.
type Config struct {
	Port           string
	GroqAPIKey     string
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	DBSSLMode      string
	JWTSecret      string
	GoogleClientID string
	RedisURL       string
}

var requiredKeys = []string{
	"GROQ_API_KEY",
	"DB_HOST",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_PORT",
	"JWT_SECRET_KEY",
	"GOOGLE_CLIENT_ID",
}

// Load reads .env if present and validates the required keys, reporting every
// missing one at once so misconfiguration is caught at startup, not on the
// first request that happens to need the value.
func Load() (*Config, error) {
	// .env is optional; in production the environment is set directly.
	_ = godotenv.Load()

	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(os.Getenv(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		GroqAPIKey:     os.Getenv("GROQ_API_KEY"),
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		DBSSLMode:      os.Getenv("DB_SSLMODE"),
		JWTSecret:      os.Getenv("JWT_SECRET_KEY"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		RedisURL:       os.Getenv("REDIS_URL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}
	return cfg, nil
}
