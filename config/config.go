package config

import (
	"os"
	"time"
)

// Config aggregates the environment-driven settings for both halves of the
// app: the API server and the embedded mobile client core.
type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	ResendAPIKey   string
	FromEmail      string
	AllowedOrigins []string

	Client ClientConfig
}

// ClientConfig is what the mobile client core needs to reach the backend.
type ClientConfig struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	KeystorePath   string
}

// Load reads configuration from environment variables, applying defaults.
func Load() Config {
	cfg := Config{
		Port:         valueOrDefault("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		FromEmail:    valueOrDefault("FROM_EMAIL", "no-reply@paynest.app"),
		Client: ClientConfig{
			APIBaseURL:     valueOrDefault("API_URL", "http://localhost:8080/api/v1"),
			RequestTimeout: 30 * time.Second,
			KeystorePath:   valueOrDefault("KEYSTORE_PATH", "paynest-keystore.db"),
		},
	}

	frontendURL := valueOrDefault("FRONTEND_URL", "http://localhost:3000")
	cfg.AllowedOrigins = []string{
		frontendURL,
		"https://paynest.app",
		"https://www.paynest.app",
	}

	if v := os.Getenv("CLIENT_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Client.RequestTimeout = d
		}
	}

	return cfg
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
