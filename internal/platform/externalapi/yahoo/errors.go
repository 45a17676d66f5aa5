package yahoo

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/kettleTeacues/yfinance/internal/platform/externalapi/yahoo/dto"
)

var (
	// ErrNoCrumb は crumb を取得できなかった場合に返されます。
	ErrNoCrumb = errors.New("yahoo: crumb not available")
	// ErrNoData はレスポンスにデータが含まれていない場合に返されます。Fetch では Empty に変換されます。
	ErrNoData = errors.New("yahoo: no data found")
)

// APIError は Yahoo が 4xx/5xx を返した場合のエラーです。
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("yahoo %s: %s", e.Endpoint, e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("yahoo http %d: %s", e.StatusCode, e.Endpoint)
	}
	return fmt.Sprintf("yahoo http %d: %s: %s", e.StatusCode, e.Endpoint, e.Message)
}

// isNoData は「データなし」を表すレスポンスかどうかを判定します。
func isNoData(err error) bool {
	if errors.Is(err, ErrNoData) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return true
		}
		return strings.Contains(strings.ToLower(apiErr.Message), "no data found")
	}
	return false
}

// bodyError は 200 応答に含まれる error オブジェクトをエラーに変換します。
func bodyError(endpoint string, body *dto.ErrorBody) error {
	if strings.EqualFold(body.Code, "Not Found") || strings.Contains(strings.ToLower(body.Description), "no data found") {
		return fmt.Errorf("%w: %s", ErrNoData, body.Description)
	}
	return &APIError{Endpoint: endpoint, Message: strings.TrimSpace(body.Code + " " + body.Description)}
}
