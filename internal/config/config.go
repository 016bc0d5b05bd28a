// internal/config/config.go
//
// Process configuration, read once at startup from the environment
// (after godotenv has loaded any local .env file).
//
// Keys:
//   - PORT           HTTP listen port (default 8001).
//   - LOG_LEVEL      zerolog level name (default "info").
//   - CLIENT_ORIGIN  CORS origin allowed to call the API with credentials.
//   - GEMINI_API_KEY Gemini API key; required to serve any generate call.
//   - GEMINI_MODEL   Gemini model name (default gemini-2.5-flash).
//   - SESSION_TTL    lifetime of an unconsumed game session (default 30m).

package config

import (
	"os"
	"time"
)

// Config holds everything main.go needs to wire the process.
type Config struct {
	Port         string
	LogLevel     string
	ClientOrigin string
	GeminiAPIKey string
	GeminiModel  string
	SessionTTL   time.Duration
}

// FromEnv builds a Config from environment variables, applying defaults.
func FromEnv() Config {
	return Config{
		Port:         envOr("PORT", "8001"),
		LogLevel:     envOr("LOG_LEVEL", "info"),
		ClientOrigin: envOr("CLIENT_ORIGIN", "http://localhost:5173"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOr("GEMINI_MODEL", "gemini-2.5-flash"),
		SessionTTL:   envDurOr("SESSION_TTL", 30*time.Minute),
	}
}

// envOr returns the value of k or def if unset/empty.
func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envDurOr parses k as a time.Duration, falling back to def.
func envDurOr(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
