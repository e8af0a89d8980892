// Package config provides the immutable service configuration.
package config

import (
	"os"
	"time"
)

// Config holds the process-wide configuration. It is loaded once at startup
// and passed by injection into every component; nothing reads the environment
// at request time.
type Config struct {
	Addr          string        // Listen address (e.g. ":8080")
	JWTSecret     string        // HMAC signing secret for session credentials
	JWTExpiration time.Duration // Session credential lifetime
}

// Load reads the configuration from environment variables.
func Load() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	expiration := 24 * time.Hour
	if v := os.Getenv("JWT_EXPIRATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			expiration = d
		}
	}

	return Config{
		Addr:          addr,
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: expiration,
	}
}
