// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/usecase"
)

const defaultDirectoryKey = "jquants:listed_info"

// CachingCompanyDirectory decorates a CompanyDirectory with Redis caching.
// The listing is cached until the next 08:00 JST, when J-Quants publishes the new one.
type CachingCompanyDirectory struct {
	inner usecase.CompanyDirectory
	rdb   *redis.Client
	key   string
	ttl   func() time.Duration
}

var _ usecase.CompanyDirectory = (*CachingCompanyDirectory)(nil)

// NewCachingCompanyDirectory wraps inner. A nil rdb makes the decorator a pass-through.
// If key is empty, it uses "jquants:listed_info".
func NewCachingCompanyDirectory(rdb *redis.Client, inner usecase.CompanyDirectory, key string) *CachingCompanyDirectory {
	if key == "" {
		key = defaultDirectoryKey
	}
	return &CachingCompanyDirectory{
		inner: inner,
		rdb:   rdb,
		key:   key,
		ttl:   TimeUntilNext8AM,
	}
}

// ListCompanies returns the cached listing, falling back to the inner directory on a miss.
func (c *CachingCompanyDirectory) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListCompanies(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Company
		if err := json.Unmarshal(b, &out); err == nil {
			slog.Info("company listing served from cache", "key", c.key, "companies", len(out))
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	// 2) Fallback to the directory
	out, err := c.inner.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if len(out) > 0 {
		if b, err := json.Marshal(out); err == nil {
			if err := c.rdb.Set(ctx, c.key, b, c.ttl()).Err(); err != nil {
				slog.Warn("failed to cache company listing", "key", c.key, "error", err)
			}
		}
	}
	return out, nil
}
