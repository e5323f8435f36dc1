// Package config manages application configuration
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Session slot backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Port        string `env:"VASCO_PORT" envDefault:"8080"`
	Environment string `env:"VASCO_ENV" envDefault:"development"` // "development" or "production"
	LogLevel    string `env:"VASCO_LOG_LEVEL" envDefault:"info"`

	// Persisted session slot
	SessionBackend string `env:"VASCO_SESSION_BACKEND" envDefault:"sqlite"`
	SessionKey     string `env:"VASCO_SESSION_KEY" envDefault:"vascoUser"`
	DatabaseURL    string `env:"VASCO_DATABASE_URL" envDefault:"vasco.db"`
	RedisAddr      string `env:"VASCO_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string `env:"VASCO_REDIS_PASSWORD"`
	RedisDB        int    `env:"VASCO_REDIS_DB" envDefault:"0"`

	// Security
	SecretKey       string        `env:"VASCO_SECRET_KEY" envDefault:"dev-secret-key-change-in-production"` // For JWT signing
	SessionDuration time.Duration `env:"VASCO_SESSION_DURATION" envDefault:"24h"`

	// Cosmetic pauses before reporting a form result
	LoginDelay    time.Duration `env:"VASCO_LOGIN_DELAY" envDefault:"0s"`
	RegisterDelay time.Duration `env:"VASCO_REGISTER_DELAY" envDefault:"0s"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that env tags cannot express
func (c *Config) Validate() error {
	switch c.SessionBackend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown session backend %q", c.SessionBackend)
	}
	if c.SessionKey == "" {
		return fmt.Errorf("session key must not be empty")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
