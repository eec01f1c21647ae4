package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration parsed from environment variables.
type Config struct {
	// Path to the SQLite database file; empty selects the in-memory backend.
	DBPath string `env:"DB_PATH"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"cricmanager-dev-secret"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Disables the simulated auth latency (tests, local tooling).
	AuthFastMode bool `env:"AUTH_FAST_MODE" envDefault:"false"`
}

// Load parses environment variables into a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
