// Package mail provides a Notifier implementation backed by the Resend email API.
package mail

import (
	"os"
	"time"
)

// Config holds configuration for the Resend mail channel.
type Config struct {
	APIKey      string        // API key for authentication
	BaseURL     string        // Base URL for the API (e.g. "https://api.resend.com")
	From        string        // Sender address
	AppName     string        // Application name used in subjects and bodies
	FrontendURL string        // Base URL of the front end, for building reset links
	Timeout     time.Duration // HTTP request timeout
}

// LoadConfig loads mail configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:      os.Getenv("RESEND_API_KEY"),
		BaseURL:     os.Getenv("RESEND_BASE_URL"),
		From:        os.Getenv("FROM_EMAIL"),
		AppName:     os.Getenv("APP_NAME"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		Timeout:     10 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.resend.com"
	}
	if cfg.From == "" {
		cfg.From = "noreply@fibidy.com"
	}
	if cfg.AppName == "" {
		cfg.AppName = "Fibidy"
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:3000"
	}
	return cfg
}
