package ratelimiter

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// DefaultSecurityDelay は銘柄間に挟む既定の待機時間です。
const DefaultSecurityDelay = 100 * time.Millisecond

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	WaitIfNeeded(ctx context.Context) error
}

// RateLimiterは、操作の間隔を一定以上に保ちます。
type RateLimiter struct {
	limiter *rate.Limiter
	every   time.Duration
}

// NewRateLimiterは interval ごとに1回だけ操作を許可する RateLimiter を生成します。
// interval が 0 以下の場合は待機しません。
func NewRateLimiter(interval time.Duration) *RateLimiter {
	if interval <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Every(interval), 1), every: interval}
}

// WaitIfNeededは前回の操作から interval が経過するまで待機します。
// ctx がキャンセルされた場合はそのエラーを返します。
func (rl *RateLimiter) WaitIfNeeded(ctx context.Context) error {
	start := time.Now()
	if err := rl.limiter.Wait(ctx); err != nil {
		return err
	}
	if waited := time.Since(start); waited > time.Second {
		slog.Debug("rate limit wait", "waited", waited, "interval", rl.every)
	}
	return nil
}
