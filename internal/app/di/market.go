// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/usecase"
	"github.com/kettleTeacues/yfinance/internal/platform/cache"
	"github.com/kettleTeacues/yfinance/internal/platform/externalapi/jquants"
	"github.com/kettleTeacues/yfinance/internal/platform/externalapi/yahoo"
	infrahttp "github.com/kettleTeacues/yfinance/internal/platform/http"
	infraredis "github.com/kettleTeacues/yfinance/internal/platform/redis"
)

// NewMarket creates a fully configured YahooMarket with a cookie-aware HTTP client.
func NewMarket() (*yahoo.YahooMarket, error) {
	cfg, err := yahoo.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("yahoo config: %w", err)
	}
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout, infrahttp.WithCookieJar())
	return yahoo.NewYahooMarket(cfg, httpClient), nil
}

// NewRedis returns a connected client, or nil when Redis is not configured or unreachable.
// The caller owns the client and must close it.
func NewRedis(ctx context.Context) *redis.Client {
	cfg, err := infraredis.LoadConfig()
	if err != nil {
		slog.Warn("invalid redis config; running without cache", "error", err)
		return nil
	}
	rdb, err := infraredis.NewRedisClient(ctx, cfg)
	if err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
		return nil
	}
	return rdb
}

// NewCompanyDirectory creates the J-Quants listing client, wrapped with the Redis cache.
// A nil rdb makes the cache a pass-through.
func NewCompanyDirectory(rdb *redis.Client) (usecase.CompanyDirectory, error) {
	cfg, err := jquants.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("jquants config: %w", err)
	}
	dir := jquants.NewJQuantsDirectory(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
	return cache.NewCachingCompanyDirectory(rdb, dir, ""), nil
}
