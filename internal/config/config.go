package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port      string
	SecretKey string

	// Database connection string. A postgres:// URL selects the Postgres
	// driver; anything else is treated as an SQLite file path.
	DatabaseURL string

	// Upstream credentials
	GeminiAPIKey string

	// Cross-origin allow-list for the local development frontends.
	AllowedOrigins []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:         getEnv("PORT", "5000"),
		SecretKey:    getEnv("SECRET_KEY", "dev-secret-key"),
		DatabaseURL:  getEnv("DATABASE_URL", "portfolio.db"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS",
			"http://localhost:8080,http://127.0.0.1:8080,http://localhost:3000")),
	}

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList splits a comma-separated value, trimming whitespace around entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
