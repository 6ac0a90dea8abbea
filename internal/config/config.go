// Package config centralises configuration parsing for the signup service.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress       string
	LogLevel          string
	LogFormat         string
	KafkaBrokers      []string // empty disables roster event publishing
	RosterEventsTopic string
	CORSOrigin        string
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev. A .env file in the working directory is honoured when
// present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddress:       getEnv("HTTP_ADDRESS", ":8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		RosterEventsTopic: getEnv("ROSTER_EVENTS_TOPIC", "roster_events"),
		CORSOrigin:        getEnv("CORS_ORIGIN", "*"),
	}

	cfg.KafkaBrokers = splitAndTrim(getEnv("KAFKA_BROKERS", ""))
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
