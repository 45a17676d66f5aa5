// Package jquants provides a client for the J-Quants listed-company API.
package jquants

import (
	"time"

	"github.com/kettleTeacues/yfinance/internal/shared/envconfig"
)

// Config holds configuration for the J-Quants API client.
type Config struct {
	BaseURL  string        `env:"JQUANTS_URL" envDefault:"https://api.jquants.com/v1" validate:"required,url"`
	Mail     string        `env:"JQUANTS_MAIL" validate:"required"`
	Password string        `env:"JQUANTS_PASS" validate:"required"`
	Timeout  time.Duration `env:"JQUANTS_TIMEOUT" envDefault:"30s"`
}

// LoadConfig loads J-Quants configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
