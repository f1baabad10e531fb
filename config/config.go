// Package config loads application configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	// Application
	AppName         string        `envconfig:"APP_NAME" default:"cp-tracker"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	Timezone        string        `envconfig:"TIMEZONE" default:"Local"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`

	// HTTP server
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"8080"`

	// PostgreSQL
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// Redis (sessions)
	RedisURL   string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"168h"`

	// Auth
	BcryptCost int `envconfig:"BCRYPT_COST" default:"12"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Location resolves the configured timezone. "Local" and an empty value
// mean the host timezone; streak day boundaries follow this location.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
