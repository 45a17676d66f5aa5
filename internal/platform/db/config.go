// Package db はストレージハンドルの生成（接続・マイグレーション・クローズ）を提供します。
package db

import (
	"time"

	"github.com/kettleTeacues/yfinance/internal/shared/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the database connection settings.
// PG_URL が設定されている場合は個別の接続項目より優先されます。
type Config struct {
	Driver         string        `env:"DB_DRIVER" envDefault:"postgres" validate:"oneof=postgres sqlite"`
	URL            string        `env:"PG_URL"`
	Host           string        `env:"DB_HOST" envDefault:"localhost"`
	Port           string        `env:"DB_PORT" envDefault:"5432"`
	User           string        `env:"DB_USER"`
	Password       string        `env:"DB_PASSWORD"`
	Name           string        `env:"DB_NAME"`
	SSLMode        string        `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath     string        `env:"SQLITE_PATH" envDefault:"yfinance.db"`
	Echo           bool          `env:"DB_ECHO"`
	RunMigrations  bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"60s"`
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
