// Package config loads process configuration from the environment once at
// startup. The resulting struct is read-only and passed by reference; no
// package reads configuration ambiently.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs: listen address, database,
// token signing, and the outbound mail transport.
type Config struct {
	HTTPAddr    string
	DatabaseURL string

	JWTSecret string
	TokenTTL  time.Duration

	// AppBaseURL is the public origin embedded in password-reset links.
	AppBaseURL string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
}

// Load reads configuration from the environment, first merging a local
// .env file when one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		TokenTTL:     getEnvDuration("TOKEN_TTL", 24*time.Hour),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "465"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
