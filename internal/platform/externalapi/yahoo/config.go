// Package yahoo provides a client for the Yahoo Finance endpoints behind yfinance.
package yahoo

import (
	"time"

	"github.com/kettleTeacues/yfinance/internal/shared/envconfig"
)

// Config holds configuration for the Yahoo Finance client.
type Config struct {
	BaseURL   string        `env:"YAHOO_BASE_URL" envDefault:"https://query2.finance.yahoo.com" validate:"required,url"`
	CookieURL string        `env:"YAHOO_COOKIE_URL" envDefault:"https://fc.yahoo.com" validate:"required,url"`
	NewsURL   string        `env:"YAHOO_NEWS_URL" envDefault:"https://finance.yahoo.com" validate:"required,url"`
	UserAgent string        `env:"YAHOO_USER_AGENT" envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"`
	Timeout   time.Duration `env:"YAHOO_TIMEOUT" envDefault:"30s"`
	RPS       float64       `env:"YAHOO_RPS" envDefault:"2" validate:"gt=0"` // 1秒あたりのリクエスト上限
}

// LoadConfig loads Yahoo Finance configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
