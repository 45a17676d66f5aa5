package yahoo

import (
	"context"
	"log/slog"
	"net/url"
	"sort"
	"time"

	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/platform/externalapi/yahoo/dto"
)

const (
	stampLayout = "2006-01-02T15:04:05.000000Z"
	stampLen    = 24
	dateLayout  = "2006-01-02"
)

// chartRanges は足の間隔ごとの取得期間です。1分足は Yahoo 側の上限が短いため 5d に抑えます。
var chartRanges = map[string]string{
	entity.Interval1d: "1y",
	entity.Interval1m: "5d",
}

// chart は v8/finance/chart を取得し、最初の結果を返します。
func (y *YahooMarket) chart(ctx context.Context, symbol string, q url.Values) (*dto.ChartResult, error) {
	var res dto.ChartResponse
	if err := y.getJSON(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), q, &res); err != nil {
		return nil, err
	}
	if res.Chart.Error != nil {
		return nil, bodyError("/v8/finance/chart", res.Chart.Error)
	}
	if len(res.Chart.Result) == 0 {
		return nil, ErrNoData
	}
	return &res.Chart.Result[0], nil
}

func (y *YahooMarket) history(ctx context.Context, symbol, interval string) (entity.Snapshot, error) {
	q := url.Values{}
	q.Set("interval", interval)
	q.Set("range", chartRanges[interval])
	q.Set("includePrePost", "false")
	r, err := y.chart(ctx, symbol, q)
	if err != nil {
		return nil, err
	}
	return entity.Tabular{Rows: barRows(r, interval == entity.Interval1d)}, nil
}

// barRows はチャートの足を行に変換します。OHLC がすべて欠けている足は除外します。
// daily が true の場合、取引所タイムゾーンの日付の 0 時をインデックスにします。
func barRows(r *dto.ChartResult, daily bool) []entity.Row {
	if len(r.Indicators.Quote) == 0 {
		return nil
	}
	loc := exchangeLocation(r.Meta)
	q := r.Indicators.Quote[0]
	rows := make([]entity.Row, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		open, high, low, cl := at(q.Open, i), at(q.High, i), at(q.Low, i), at(q.Close, i)
		if open == nil && high == nil && low == nil && cl == nil {
			continue
		}
		t := time.Unix(ts, 0).In(loc)
		if daily {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		}
		rows = append(rows, entity.Row{
			Index: stamp(t),
			Item: entity.Item{
				"Open":   deref(open),
				"High":   deref(high),
				"Low":    deref(low),
				"Close":  deref(cl),
				"Volume": deref(at(q.Volume, i)),
			},
		})
	}
	return rows
}

// events は配当と株式分割の全期間の履歴を取得します。
func (y *YahooMarket) events(ctx context.Context, symbol string) (*dto.ChartResult, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("range", "max")
	q.Set("events", "div,split")
	return y.chart(ctx, symbol, q)
}

func (y *YahooMarket) actions(ctx context.Context, symbol string) (entity.Snapshot, error) {
	r, err := y.events(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if r.Events == nil {
		return entity.Empty{}, nil
	}
	loc := exchangeLocation(r.Meta)
	byDate := map[string]entity.Item{}
	row := func(ts int64) entity.Item {
		d := time.Unix(ts, 0).In(loc).Format(dateLayout)
		it, ok := byDate[d]
		if !ok {
			it = entity.Item{"Dividends": 0.0, "Stock Splits": 0.0}
			byDate[d] = it
		}
		return it
	}
	for _, d := range r.Events.Dividends {
		row(d.Date)["Dividends"] = d.Amount
	}
	for _, s := range r.Events.Splits {
		if s.Denominator != 0 {
			row(s.Date)["Stock Splits"] = s.Numerator / s.Denominator
		}
	}
	return entity.Tabular{Rows: sortedRows(byDate)}, nil
}

func (y *YahooMarket) dividends(ctx context.Context, symbol string) (entity.Snapshot, error) {
	r, err := y.events(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if r.Events == nil {
		return entity.Empty{}, nil
	}
	loc := exchangeLocation(r.Meta)
	byDate := make(map[string]entity.Item, len(r.Events.Dividends))
	for _, d := range r.Events.Dividends {
		byDate[time.Unix(d.Date, 0).In(loc).Format(dateLayout)] = entity.Item{"Dividends": d.Amount}
	}
	return entity.Tabular{Rows: sortedRows(byDate)}, nil
}

// fastInfo はチャートのメタ情報と直近1年の日足から軽量な指標を計算します。
// 発行済株式数と時価総額は v7 quote から補い、取得できなければ省略します。
func (y *YahooMarket) fastInfo(ctx context.Context, symbol string) (entity.Snapshot, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("range", "1y")
	r, err := y.chart(ctx, symbol, q)
	if err != nil {
		return nil, err
	}
	item := fastInfoItem(r)

	quote, err := y.quote(ctx, symbol)
	if err != nil {
		slog.Warn("fast_info: quote unavailable", "symbol", symbol, "error", err)
	}
	if v, ok := quote["sharesOutstanding"]; ok && v != nil {
		item["shares"] = v
	}
	if v, ok := quote["marketCap"]; ok && v != nil {
		item["marketCap"] = v
	} else if shares, ok := quote["sharesOutstanding"].(float64); ok {
		if price, ok := item["lastPrice"].(float64); ok {
			item["marketCap"] = shares * price
		}
	}
	return entity.Single(item), nil
}

func fastInfoItem(r *dto.ChartResult) entity.Item {
	m := r.Meta
	item := entity.Item{
		"currency":   m.Currency,
		"exchange":   m.ExchangeName,
		"quoteType":  m.InstrumentType,
		"timezone":   m.ExchangeTimezoneName,
		"lastPrice":  deref(m.RegularMarketPrice),
		"dayHigh":    deref(m.RegularMarketDayHigh),
		"dayLow":     deref(m.RegularMarketDayLow),
		"lastVolume": deref(m.RegularMarketVolume),
	}
	item["regularMarketPreviousClose"] = deref(firstNonNil(m.RegularMarketPreviousClose, m.PreviousClose))

	var closes, volumes, highs, lows []float64
	var lastOpen *float64
	if len(r.Indicators.Quote) > 0 {
		q := r.Indicators.Quote[0]
		for i := range r.Timestamp {
			if c := at(q.Close, i); c != nil {
				closes = append(closes, *c)
			}
			if v := at(q.Volume, i); v != nil {
				volumes = append(volumes, *v)
			}
			if h := at(q.High, i); h != nil {
				highs = append(highs, *h)
			}
			if l := at(q.Low, i); l != nil {
				lows = append(lows, *l)
			}
			if o := at(q.Open, i); o != nil {
				lastOpen = o
			}
		}
	}
	item["open"] = deref(lastOpen)
	if n := len(closes); n >= 2 {
		item["previousClose"] = closes[n-2]
		if closes[0] != 0 {
			item["yearChange"] = closes[n-1]/closes[0] - 1
		}
	}
	if len(highs) > 0 {
		item["yearHigh"] = maxOf(highs)
	}
	if len(lows) > 0 {
		item["yearLow"] = minOf(lows)
	}
	item["tenDayAverageVolume"] = tailMean(volumes, 10)
	item["threeMonthAverageVolume"] = tailMean(volumes, 63)
	item["fiftyDayAverage"] = tailMean(closes, 50)
	item["twoHundredDayAverage"] = tailMean(closes, 200)
	return item
}

// exchangeLocation は取引所のタイムゾーンを返します。名前が解決できない場合は GMT オフセットを使います。
func exchangeLocation(m dto.ChartMeta) *time.Location {
	if m.ExchangeTimezoneName != "" {
		if loc, err := time.LoadLocation(m.ExchangeTimezoneName); err == nil {
			return loc
		}
	}
	return time.FixedZone("exchange", m.GmtOffset)
}

func stamp(t time.Time) string {
	s := t.Format(stampLayout)
	if len(s) > stampLen {
		s = s[:stampLen]
	}
	return s
}

func sortedRows(byIndex map[string]entity.Item) []entity.Row {
	keys := make([]string, 0, len(byIndex))
	for k := range byIndex {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([]entity.Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, entity.Row{Index: k, Item: byIndex[k]})
	}
	return rows
}

func at(s []*float64, i int) *float64 {
	if i < len(s) {
		return s[i]
	}
	return nil
}

// deref は nil を欠損値としてそのまま返します。
func deref(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func firstNonNil(ps ...*float64) *float64 {
	for _, p := range ps {
		if p != nil {
			return p
		}
	}
	return nil
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// tailMean は末尾 n 件の平均です。データが無い場合は nil を返します。
func tailMean(xs []float64, n int) any {
	if len(xs) == 0 {
		return nil
	}
	if len(xs) > n {
		xs = xs[len(xs)-n:]
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
