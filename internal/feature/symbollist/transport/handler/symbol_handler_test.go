package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/domain/entity"
)

// mockSymbolUsecase はSymbolUsecaseインターフェースのモック実装です。
type mockSymbolUsecase struct {
	ListStocksFunc func(ctx context.Context) ([]entity.Stock, error)
}

// ListStocks はモックのListStocks関数を呼び出します。
func (m *mockSymbolUsecase) ListStocks(ctx context.Context) ([]entity.Stock, error) {
	if m.ListStocksFunc != nil {
		return m.ListStocksFunc(ctx)
	}
	return nil, nil
}

// TestNewSymbolHandler はNewSymbolHandlerコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewSymbolHandler(t *testing.T) {
	t.Parallel()

	handler := NewSymbolHandler(&mockSymbolUsecase{})

	assert.NotNil(t, handler, "handler should not be nil")
	assert.NotNil(t, handler.uc, "usecase should not be nil")
}

// TestSymbolHandler_List はListハンドラーの各種シナリオをテーブル駆動テストで検証します。
func TestSymbolHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		listStocks     func(ctx context.Context) ([]entity.Stock, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns list of stocks",
			listStocks: func(ctx context.Context) ([]entity.Stock, error) {
				return []entity.Stock{
					{ID: 1, Symbol: "6758.T", CompanyName: "ソニーグループ", Market: "プライム"},
					{ID: 2, Symbol: "7974.T", CompanyName: "任天堂"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"code":"6758.T","name":"ソニーグループ","market":"プライム"},{"code":"7974.T","name":"任天堂"}]`,
		},
		{
			name: "success: returns empty list when no stocks",
			listStocks: func(ctx context.Context) ([]entity.Stock, error) {
				return []entity.Stock{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "success: returns nil from usecase",
			listStocks: func(ctx context.Context) ([]entity.Stock, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "failure: usecase returns error",
			listStocks: func(ctx context.Context) ([]entity.Stock, error) {
				return nil, errors.New("database connection failed")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"database connection failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewSymbolHandler(&mockSymbolUsecase{ListStocksFunc: tt.listStocks})

			router := gin.New()
			router.GET("/symbols", handler.List)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/symbols", nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestSymbolHandler_List_DTOConversion は内部フィールドが公開されないことを検証します。
func TestSymbolHandler_List_DTOConversion(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	handler := NewSymbolHandler(&mockSymbolUsecase{
		ListStocksFunc: func(ctx context.Context) ([]entity.Stock, error) {
			return []entity.Stock{{ID: 999, Symbol: "TEST.T", CompanyName: "Test Company", Sector: "電気機器"}}, nil
		},
	})

	router := gin.New()
	router.GET("/symbols", handler.List)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/symbols", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"code":"TEST.T","name":"Test Company"}]`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "999")
	assert.NotContains(t, w.Body.String(), "電気機器")
}
