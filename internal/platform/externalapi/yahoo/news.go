package yahoo

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/platform/externalapi/yahoo/dto"
)

const newsCount = 10

// news は銘柄の最新ニュースを取得します。各行は記事 ID と content を持ちます。
func (y *YahooMarket) news(ctx context.Context, symbol string) (entity.Snapshot, error) {
	q := url.Values{}
	q.Set("queryRef", "latestNews")
	q.Set("serviceKey", "ncp_fin")
	payload := map[string]any{
		"serviceConfig": map[string]any{
			"snippetCount": newsCount,
			"s":            []string{symbol},
		},
	}

	var res dto.NewsResponse
	if err := y.doJSON(ctx, http.MethodPost, y.cfg.NewsURL, "/xhr/ncp", q, payload, &res); err != nil {
		return nil, err
	}
	rows := make([]entity.Row, 0, len(res.Data.TickerStream.Stream))
	for _, n := range res.Data.TickerStream.Stream {
		if n.ID == "" || n.Content == nil {
			continue
		}
		rows = append(rows, entity.Row{
			Index: n.ID,
			Item:  entity.Item{"id": n.ID, "content": n.Content},
		})
	}
	return entity.Tabular{Rows: rows}, nil
}
