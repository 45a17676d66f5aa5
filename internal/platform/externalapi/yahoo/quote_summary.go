package yahoo

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/platform/externalapi/yahoo/dto"
)

// infoModules は info を構成する quoteSummary モジュールです。
var infoModules = []string{
	"assetProfile",
	"summaryProfile",
	"summaryDetail",
	"quoteType",
	"defaultKeyStatistics",
	"financialData",
	"price",
}

// quoteSummary は指定モジュールを取得し、{raw, fmt} を展開した結果を返します。
func (y *YahooMarket) quoteSummary(ctx context.Context, symbol string, modules ...string) (map[string]any, error) {
	q := url.Values{}
	q.Set("modules", strings.Join(modules, ","))
	q.Set("formatted", "false")
	q.Set("corsDomain", "finance.yahoo.com")

	var res dto.QuoteSummaryResponse
	if err := y.getJSON(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(symbol), q, &res); err != nil {
		return nil, err
	}
	if res.QuoteSummary.Error != nil {
		return nil, bodyError("/v10/finance/quoteSummary", res.QuoteSummary.Error)
	}
	if len(res.QuoteSummary.Result) == 0 || res.QuoteSummary.Result[0] == nil {
		return nil, ErrNoData
	}
	m, _ := unwrap(res.QuoteSummary.Result[0]).(map[string]any)
	if m == nil {
		return nil, ErrNoData
	}
	return m, nil
}

// quote は v7/finance/quote の1銘柄分を返します。
func (y *YahooMarket) quote(ctx context.Context, symbol string) (map[string]any, error) {
	q := url.Values{}
	q.Set("symbols", symbol)
	q.Set("formatted", "false")

	var res dto.QuoteResponse
	if err := y.getJSON(ctx, "/v7/finance/quote", q, &res); err != nil {
		return nil, err
	}
	if res.QuoteResponse.Error != nil {
		return nil, bodyError("/v7/finance/quote", res.QuoteResponse.Error)
	}
	if len(res.QuoteResponse.Result) == 0 {
		return nil, ErrNoData
	}
	return res.QuoteResponse.Result[0], nil
}

// unwrap は {"raw": x, "fmt": "..."} を x に置き換え、空のオブジェクトを nil にします。
func unwrap(v any) any {
	switch node := v.(type) {
	case map[string]any:
		if len(node) == 0 {
			return nil
		}
		if raw, ok := node["raw"]; ok {
			return raw
		}
		for k, child := range node {
			node[k] = unwrap(child)
		}
		return node
	case []any:
		for i, child := range node {
			node[i] = unwrap(child)
		}
		return node
	default:
		return v
	}
}

func module(summary map[string]any, name string) map[string]any {
	m, _ := summary[name].(map[string]any)
	return m
}

func list(m map[string]any, name string) []map[string]any {
	raw, _ := m[name].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, v := range raw {
		if e, ok := v.(map[string]any); ok {
			out = append(out, e)
		}
	}
	return out
}

// info は各モジュールのフィールドを1つの辞書に平坦化し、v7 quote の値で不足分を補います。
func (y *YahooMarket) info(ctx context.Context, symbol string) (entity.Snapshot, error) {
	summary, err := y.quoteSummary(ctx, symbol, infoModules...)
	if err != nil {
		return nil, err
	}
	item := entity.Item{}
	for _, name := range infoModules {
		for k, v := range module(summary, name) {
			if k == "maxAge" || v == nil {
				continue
			}
			if _, ok := item[k]; !ok {
				item[k] = v
			}
		}
	}

	quote, err := y.quote(ctx, symbol)
	if err != nil && !isNoData(err) {
		return nil, err
	}
	for k, v := range quote {
		if _, ok := item[k]; !ok && v != nil {
			item[k] = v
		}
	}
	item["symbol"] = symbol
	return entity.Single(item), nil
}

func (y *YahooMarket) calendar(ctx context.Context, symbol string) (entity.Snapshot, error) {
	summary, err := y.quoteSummary(ctx, symbol, "calendarEvents")
	if err != nil {
		return nil, err
	}
	ev := module(summary, "calendarEvents")
	if ev == nil {
		return entity.Empty{}, nil
	}
	item := entity.Item{}
	if earnings, ok := ev["earnings"].(map[string]any); ok {
		if dates, ok := earnings["earningsDate"].([]any); ok && len(dates) > 0 {
			ds := make([]any, 0, len(dates))
			for _, d := range dates {
				if s, ok := unixDate(d); ok {
					ds = append(ds, s)
				}
			}
			item["Earnings Date"] = ds
		}
		item["Earnings High"] = earnings["earningsHigh"]
		item["Earnings Low"] = earnings["earningsLow"]
		item["Earnings Average"] = earnings["earningsAverage"]
		item["Revenue High"] = earnings["revenueHigh"]
		item["Revenue Low"] = earnings["revenueLow"]
		item["Revenue Average"] = earnings["revenueAverage"]
	}
	if s, ok := unixDate(ev["exDividendDate"]); ok {
		item["Ex-Dividend Date"] = s
	}
	if s, ok := unixDate(ev["dividendDate"]); ok {
		item["Dividend Date"] = s
	}
	return entity.Single(compact(item)), nil
}

// trend は earningsTrend の各期間から指定のサブ辞書（earningsEstimate など）を取り出します。
func (y *YahooMarket) trend(ctx context.Context, symbol, field string) (entity.Snapshot, error) {
	summary, err := y.quoteSummary(ctx, symbol, "earningsTrend")
	if err != nil {
		return nil, err
	}
	entries := map[string]entity.Item{}
	for _, tr := range list(module(summary, "earningsTrend"), "trend") {
		period, _ := tr["period"].(string)
		sub, ok := tr[field].(map[string]any)
		if period == "" || !ok {
			continue
		}
		entries[period] = entity.Item(sub)
	}
	if len(entries) == 0 {
		return entity.Empty{}, nil
	}
	return entity.Keyed{Entries: entries}, nil
}

// growthEstimates は銘柄の成長率（earningsTrend）と指数の成長率（indexTrend）を期間ごとに並べます。
func (y *YahooMarket) growthEstimates(ctx context.Context, symbol string) (entity.Snapshot, error) {
	summary, err := y.quoteSummary(ctx, symbol, "earningsTrend", "indexTrend")
	if err != nil {
		return nil, err
	}
	entries := map[string]entity.Item{}
	entry := func(period string) entity.Item {
		it, ok := entries[period]
		if !ok {
			it = entity.Item{}
			entries[period] = it
		}
		return it
	}
	for _, tr := range list(module(summary, "earningsTrend"), "trend") {
		if period, _ := tr["period"].(string); period != "" {
			entry(period)["stockTrend"] = tr["growth"]
		}
	}
	for _, est := range list(module(summary, "indexTrend"), "estimates") {
		if period, _ := est["period"].(string); period != "" {
			entry(period)["indexTrend"] = est["growth"]
		}
	}
	if len(entries) == 0 {
		return entity.Empty{}, nil
	}
	return entity.Keyed{Entries: entries}, nil
}

func (y *YahooMarket) earningsHistory(ctx context.Context, symbol string) (entity.Snapshot, error) {
	summary, err := y.quoteSummary(ctx, symbol, "earningsHistory")
	if err != nil {
		return nil, err
	}
	var rows []entity.Row
	for _, h := range list(module(summary, "earningsHistory"), "history") {
		d, ok := unixDate(h["quarter"])
		if !ok {
			continue
		}
		rows = append(rows, entity.Row{Index: d, Item: entity.Item(h)})
	}
	return entity.Tabular{Rows: rows}, nil
}

func (y *YahooMarket) recommendations(ctx context.Context, symbol string) (entity.Snapshot, error) {
	summary, err := y.quoteSummary(ctx, symbol, "recommendationTrend")
	if err != nil {
		return nil, err
	}
	var rows []entity.Row
	for _, tr := range list(module(summary, "recommendationTrend"), "trend") {
		period, _ := tr["period"].(string)
		rows = append(rows, entity.Row{Index: period, Item: entity.Item(tr)})
	}
	return entity.Tabular{Rows: rows}, nil
}

// holders は institutionOwnership / fundOwnership の保有者一覧を表示名の列に揃えます。
func (y *YahooMarket) holders(ctx context.Context, symbol, moduleName string) (entity.Snapshot, error) {
	summary, err := y.quoteSummary(ctx, symbol, moduleName)
	if err != nil {
		return nil, err
	}
	var rows []entity.Row
	for _, o := range list(module(summary, moduleName), "ownershipList") {
		holder, _ := o["organization"].(string)
		item := entity.Item{
			"Holder":    holder,
			"pctHeld":   o["pctHeld"],
			"Shares":    o["position"],
			"Value":     o["value"],
			"pctChange": o["pctChange"],
		}
		if d, ok := unixDate(o["reportDate"]); ok {
			item["Date Reported"] = d
		}
		rows = append(rows, entity.Row{Index: holder, Item: item})
	}
	return entity.Tabular{Rows: rows}, nil
}

func (y *YahooMarket) singleModule(ctx context.Context, symbol, moduleName string) (entity.Snapshot, error) {
	summary, err := y.quoteSummary(ctx, symbol, moduleName)
	if err != nil {
		return nil, err
	}
	m := module(summary, moduleName)
	delete(m, "maxAge")
	return entity.Single(entity.Item(m)), nil
}

// insiderRows は netSharePurchaseActivity の行ラベルと (株数, 件数) のキーです。
var insiderRows = []struct {
	label, shares, trans string
}{
	{"Purchases", "buyInfoShares", "buyInfoCount"},
	{"Sales", "sellInfoShares", "sellInfoCount"},
	{"Net Shares Purchased (Sold)", "netInfoShares", "netInfoCount"},
	{"Total Insider Shares Held", "totalInsiderShares", ""},
	{"% Net Shares Purchased (Sold)", "netPercentInsiderShares", ""},
	{"% Buy Shares", "buyPercentInsiderShares", ""},
	{"% Sell Shares", "sellPercentInsiderShares", ""},
}

func (y *YahooMarket) insiderPurchases(ctx context.Context, symbol string) (entity.Snapshot, error) {
	summary, err := y.quoteSummary(ctx, symbol, "netSharePurchaseActivity")
	if err != nil {
		return nil, err
	}
	act := module(summary, "netSharePurchaseActivity")
	if act == nil {
		return entity.Empty{}, nil
	}
	rows := make([]entity.Row, 0, len(insiderRows))
	for _, r := range insiderRows {
		item := entity.Item{
			"Insider Purchases Last 6m": r.label,
			"Shares":                    act[r.shares],
		}
		if r.trans != "" {
			item["Trans"] = act[r.trans]
		}
		rows = append(rows, entity.Row{Index: r.label, Item: item})
	}
	return entity.Tabular{Rows: rows}, nil
}

// unixDate は UNIX 秒を UTC の日付文字列に変換します。
func unixDate(v any) (string, bool) {
	f, ok := v.(float64)
	if !ok || f == 0 {
		return "", false
	}
	return time.Unix(int64(f), 0).UTC().Format(dateLayout), true
}

func compact(item entity.Item) entity.Item {
	for k, v := range item {
		if v == nil {
			delete(item, k)
		}
	}
	return item
}
