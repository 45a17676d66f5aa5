// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PingFunc はストレージなど依存先の疎通確認関数です。
type PingFunc func(ctx context.Context) error

// pingTimeout は /healthz が依存先の応答を待つ最大時間です。
const pingTimeout = 2 * time.Second

// NewHealth はサービスヘルスチェック用の /healthz ハンドラーを返します。
// ping が nil の場合はプロセスの生存のみを報告します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func NewHealth(ping PingFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
			defer cancel()
			if err := ping(ctx); err != nil {
				if c.Request.Method == http.MethodHead {
					c.Status(http.StatusServiceUnavailable)
					return
				}
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		default:
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		}
	}
}

// Health は依存先を確認しないヘルスチェックです。
func Health(c *gin.Context) {
	NewHealth(nil)(c)
}
