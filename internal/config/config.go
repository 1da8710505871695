package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBPath string

	// DefaultMaxDistanceKm bounds proximity searches when the caller does
	// not supply a radius
	DefaultMaxDistanceKm float64

	// SessionTTL is how long an active navigation session may go without an
	// update before the sweeper removes it. Zero disables sweeping.
	SessionTTL time.Duration

	// Rate limiting for the public API
	RateLimit       int
	RateLimitWindow time.Duration
}

// Load reads configuration from the environment. A .env file is honored when
// present but is not required.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 ":8080",
		DBPath:               "./data/organs.db",
		DefaultMaxDistanceKm: 500,
		SessionTTL:           30 * time.Minute,
		RateLimit:            100,
		RateLimitWindow:      time.Minute,
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if v := os.Getenv("MAX_DISTANCE_KM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.DefaultMaxDistanceKm = f
		}
	}
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.SessionTTL = time.Duration(n) * time.Minute
		}
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimit = n
		}
	}

	return cfg
}
