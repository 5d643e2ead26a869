package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AccountMode selects which login behavior the account service runs with.
type AccountMode string

const (
	// ModeUpsert treats a login as an upsert keyed by the caller-supplied id.
	ModeUpsert AccountMode = "upsert"
	// ModeAction dispatches on an explicit action field keyed by email.
	ModeAction AccountMode = "action"
)

type Config struct {
	Port            string
	DatabaseURL     string
	RedisURL        string
	AccountMode     AccountMode // Which login behavior to run ("upsert" or "action")
	CORSOrigins     string      // Comma-separated list of allowed origins, "*" for any
	CacheTTLMinutes int         // TTL for cached user lookups
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		AccountMode:     parseMode(getEnv("ACCOUNT_MODE", string(ModeUpsert))),
		CORSOrigins:     getEnv("CORS_ALLOWED_ORIGINS", "*"),
		CacheTTLMinutes: getEnvInt("CACHE_TTL_MINUTES", 60),
	}
}

func parseMode(value string) AccountMode {
	switch AccountMode(value) {
	case ModeUpsert, ModeAction:
		return AccountMode(value)
	default:
		log.Printf("Unknown ACCOUNT_MODE %q, falling back to %q", value, ModeUpsert)
		return ModeUpsert
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
