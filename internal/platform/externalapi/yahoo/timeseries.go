package yahoo

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/platform/externalapi/yahoo/dto"
)

// timeseriesStart は取得開始日時（UNIX 秒）です。
const timeseriesStart = 493590046

// statement は財務諸表を fundamentals-timeseries から取得し、asOfDate ごとの行に並べ替えます。
// period は "annual" または "quarterly" です。
func (y *YahooMarket) statement(ctx context.Context, symbol, period string, keys []string) (entity.Snapshot, error) {
	types := make([]string, len(keys))
	for i, k := range keys {
		types[i] = period + k
	}
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("type", strings.Join(types, ","))
	q.Set("period1", strconv.Itoa(timeseriesStart))
	q.Set("period2", strconv.FormatInt(y.now().Unix(), 10))

	var res dto.TimeseriesResponse
	endpoint := "/ws/fundamentals-timeseries/v1/finance/timeseries/" + url.PathEscape(symbol)
	if err := y.getJSON(ctx, endpoint, q, &res); err != nil {
		return nil, err
	}
	if res.Timeseries.Error != nil {
		return nil, bodyError("/ws/fundamentals-timeseries", res.Timeseries.Error)
	}

	byDate := map[string]entity.Item{}
	for _, series := range res.Timeseries.Result {
		for name, v := range series {
			if name == "meta" || name == "timestamp" || !strings.HasPrefix(name, period) {
				continue
			}
			label := camelToTitle(strings.TrimPrefix(name, period))
			points, _ := v.([]any)
			for _, p := range points {
				point, ok := p.(map[string]any)
				if !ok {
					continue
				}
				date, _ := point["asOfDate"].(string)
				if date == "" {
					continue
				}
				value := unwrap(point["reportedValue"])
				if value == nil {
					continue
				}
				it, ok := byDate[date]
				if !ok {
					it = entity.Item{}
					byDate[date] = it
				}
				it[label] = value
			}
		}
	}
	return entity.Tabular{Rows: sortedRows(byDate)}, nil
}

// camelToTitle は "TotalRevenue" を "Total Revenue"、"NetPPE" を "Net PPE" に変換します。
func camelToTitle(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
