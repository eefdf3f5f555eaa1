package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront client.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Backend REST API
	APIBaseURL  string `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`
	HTTPTimeout int    `env:"HTTP_TIMEOUT_SECONDS" envDefault:"30"`

	// Local state
	StateDir string `env:"STATE_DIR" envDefault:""`
}

// Load reads configuration from a .env file when present and from environment
// variables. Missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.StateDir == "" {
		dir, err := defaultStateDir()
		if err != nil {
			return nil, err
		}
		cfg.StateDir = dir
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API base URL: %q", c.APIBaseURL)
	}
	if c.HTTPTimeout < 1 {
		return fmt.Errorf("invalid HTTP timeout: %d", c.HTTPTimeout)
	}
	return nil
}

func defaultStateDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "storefront"), nil
}
