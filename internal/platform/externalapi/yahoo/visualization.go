package yahoo

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/platform/externalapi/yahoo/dto"
)

const earningsDatesLimit = 12

// earningsColumns は visualization の列名 → 行の表示名です。
var earningsColumns = map[string]string{
	"epsestimate":    "EPS Estimate",
	"epsactual":      "Reported EPS",
	"epssurprisepct": "Surprise(%)",
}

// earningsDates は決算発表日と EPS の予想・実績を取得します。
func (y *YahooMarket) earningsDates(ctx context.Context, symbol string) (entity.Snapshot, error) {
	payload := map[string]any{
		"sortType":     "DESC",
		"entityIdType": "earnings",
		"sortField":    "startdatetime",
		"includeFields": []string{
			"ticker", "startdatetime", "startdatetimetype",
			"epsestimate", "epsactual", "epssurprisepct",
		},
		"query": map[string]any{
			"operator": "and",
			"operands": []any{
				map[string]any{"operator": "eq", "operands": []string{"ticker", symbol}},
				map[string]any{"operator": "eq", "operands": []string{"eventtype", "2"}},
			},
		},
		"offset": 0,
		"size":   earningsDatesLimit,
	}
	q := url.Values{}
	q.Set("lang", "en-US")
	q.Set("region", "US")

	var res dto.VisualizationResponse
	if err := y.doJSON(ctx, http.MethodPost, y.cfg.BaseURL, "/v1/finance/visualization", q, payload, &res); err != nil {
		return nil, err
	}
	if res.Finance.Error != nil {
		return nil, bodyError("/v1/finance/visualization", res.Finance.Error)
	}
	if len(res.Finance.Result) == 0 || len(res.Finance.Result[0].Documents) == 0 {
		return entity.Empty{}, nil
	}

	doc := res.Finance.Result[0].Documents[0]
	var rows []entity.Row
	for _, cells := range doc.Rows {
		var index string
		item := entity.Item{}
		for i, col := range doc.Columns {
			if i >= len(cells) {
				break
			}
			if col.ID == "startdatetime" {
				index, _ = cells[i].(string)
				continue
			}
			if label, ok := earningsColumns[col.ID]; ok {
				item[label] = cells[i]
			}
		}
		if index == "" {
			continue
		}
		rows = append(rows, entity.Row{Index: index, Item: item})
	}
	return entity.Tabular{Rows: rows}, nil
}
