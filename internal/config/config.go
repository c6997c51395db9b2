package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port        string
	Env         string
	DatabaseURL string // postgres; empty selects the sqlite fallback
	SQLitePath  string
	RedisURL    string

	// AgentKey is the shared secret for manager endpoints. A demo
	// placeholder, not an access control design.
	AgentKey string
}

// Load reads configuration from environment variables.
// In development, it loads from .env file if present.
// In production, it panics on missing required variables.
func Load() *Config {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getEnv("SQLITE_PATH", "./data/aura.db"),
		RedisURL:    os.Getenv("REDIS_URL"),
		AgentKey:    getEnv("AGENT_API_KEY", "manager-demo-key"),
	}

	// In production, require an explicit agent key
	if cfg.Env == "production" {
		if os.Getenv("AGENT_API_KEY") == "" {
			panic("AGENT_API_KEY is required in production")
		}
	}

	return cfg
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
