package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/transport/http/dto"
)

// SymbolUsecase は銘柄情報に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListStocks(ctx context.Context) ([]entity.Stock, error)
}

// SymbolHandler は銘柄情報に関するHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List は銘柄マスタの一覧を返すAPIです。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *SymbolHandler) List(c *gin.Context) {
	stocks, err := h.uc.ListStocks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.SymbolItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.SymbolItem{Code: s.Symbol, Name: s.CompanyName, Market: s.Market})
	}
	c.JSON(http.StatusOK, out)
}
