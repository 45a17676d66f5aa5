package db

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const retryInterval = 3 * time.Second

// Opener は DSN から gorm の接続を開く関数です。
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN は設定から接続文字列を生成します。
// SQLAlchemy 形式の URL（postgresql+psycopg2://）は pgx が解釈できる形に直します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.SQLitePath
	}
	if cfg.URL != "" {
		u := cfg.URL
		if i := strings.Index(u, "://"); i >= 0 {
			if scheme := u[:i]; strings.HasPrefix(scheme, "postgresql+") || strings.HasPrefix(scheme, "postgres+") {
				u = "postgres" + u[i:]
			}
		}
		return u
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// ConnectWithRetry は timeout に達するまで一定間隔で接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, Wrap("connect", fmt.Errorf("gave up after %s: %w", timeout, err))
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(min(retryInterval, remaining))
	}
}

// Open はストレージハンドルを開き、設定に応じて models をマイグレーションします。
// 呼び出し側は終了時に Close を呼ぶ必要があります。
func Open(cfg Config, models ...any) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: newLogger(cfg.Echo)}
	open := func(dsn string) (*gorm.DB, error) {
		if cfg.Driver == DriverSQLite {
			return gorm.Open(sqlite.Open(dsn), gcfg)
		}
		return gorm.Open(postgres.Open(dsn), gcfg)
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, open)
	if err != nil {
		return nil, err
	}
	if cfg.Driver == DriverSQLite {
		// SQLite は同時書き込みができないため接続を1本に絞る
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	if cfg.RunMigrations && len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			_ = Close(db)
			return nil, Wrap("migrate", err)
		}
		slog.Info("database migrated", "driver", cfg.Driver, "models", len(models))
	}
	return db, nil
}

// Ping はハンドルの疎通を確認します。
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return Wrap("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return Wrap("ping", err)
	}
	return nil
}

// Close はハンドルが保持する接続プールを閉じます。
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return Wrap("close", err)
	}
	if err := sqlDB.Close(); err != nil {
		return Wrap("close", err)
	}
	return nil
}

func newLogger(echo bool) logger.Interface {
	level := logger.Warn
	if echo {
		level = logger.Info
	}
	return logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
