package router

import (
	"github.com/gin-gonic/gin"

	runhandler "github.com/kettleTeacues/yfinance/internal/feature/ingestrun/transport/handler"
	symbollisthandler "github.com/kettleTeacues/yfinance/internal/feature/symbollist/transport/handler"
	"github.com/kettleTeacues/yfinance/internal/platform/http/handler"
)

// NewRouter はステータスAPIのルーティングを構築します。
// すべて参照系のエンドポイントのため認証は設けません。
func NewRouter(health handler.PingFunc, runs *runhandler.RunHandler,
	symbol *symbollisthandler.SymbolHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用（DBの疎通も確認）
	hz := handler.NewHealth(health)
	r.GET("/healthz", hz)
	r.HEAD("/healthz", hz)

	// バッチ実行記録
	r.GET("/runs", runs.List)
	r.GET("/runs/:id", runs.Get)

	// 銘柄マスタ
	r.GET("/symbols", symbol.List)

	return r
}
