package adapters

import (
	"fmt"
	"time"

	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
)

// tableFor はデータセットに対応する保存ルールを返します。
func tableFor(ds entity.Dataset) (*table, error) {
	if !ds.Valid() {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownDataset, ds)
	}
	if ds.Domain == entity.DomainHistory && ds.Variant == entity.Interval1m {
		return history1mTable, nil
	}
	t, ok := tables[ds.Domain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownDataset, ds)
	}
	return t, nil
}

var tables = map[entity.Domain]*table{
	entity.DomainInfo:                 stockInfoTable,
	entity.DomainFastInfo:             fastInfoTable,
	entity.DomainHistory:              historyTable,
	entity.DomainActions:              actionsTable,
	entity.DomainDividends:            dividendsTable,
	entity.DomainBalanceSheet:         balanceSheetTable,
	entity.DomainCashFlow:             cashFlowTable,
	entity.DomainIncomeStmt:           incomeStmtTable,
	entity.DomainFinancials:           financialsTable,
	entity.DomainCalendar:             calendarTable,
	entity.DomainEarningsDates:        earningsDatesTable,
	entity.DomainEarningsEstimate:     earningsEstimateTable,
	entity.DomainRevenueEstimate:      revenueEstimateTable,
	entity.DomainEarningsHistory:      earningsHistoryTable,
	entity.DomainEpsTrend:             epsTrendTable,
	entity.DomainEpsRevisions:         epsRevisionsTable,
	entity.DomainGrowthEstimates:      growthEstimatesTable,
	entity.DomainInstitutionalHolders: institutionalHoldersTable,
	entity.DomainMutualFundHolders:    mutualFundHoldersTable,
	entity.DomainMajorHolders:         majorHoldersTable,
	entity.DomainInsiderPurchases:     insiderPurchasesTable,
	entity.DomainNews:                 newsTable,
	entity.DomainRecommendations:      recommendationsTable,
	entity.DomainSustainability:       sustainabilityTable,
}

// 行ラベルを日付キーとして使うテーブル共通のキー定義
var (
	dateIndexKey  = []keyPart{{Column: "date", Norm: date10}}
	stampIndexKey = []keyPart{{Column: "date", Norm: ts24}}
	periodKey     = []keyPart{{Column: "period_type", Norm: trim}}
	holderKey     = []keyPart{
		{Column: "date", Source: "Date Reported", Norm: date10},
		{Column: "holder", Source: "Holder", Norm: trim},
	}
)

func absentOrZero(patch map[string]any, col string) bool {
	v, ok := patch[col]
	if !ok {
		return true
	}
	f, ok := toFloat(v)
	return !ok || f == 0
}

func stampYear(patch, _ map[string]any, now time.Time) {
	patch["year"] = int64(now.Year())
}

var ohlcv = []Field{
	num("open", "Open"),
	num("high", "High"),
	num("low", "Low"),
	num("close", "Close"),
	num("volume", "Volume"),
}

var historyTable = &table{Name: "history", Key: stampIndexKey, Fields: ohlcv}

var history1mTable = &table{Name: "history_1min", Key: stampIndexKey, Fields: ohlcv}

// actionsTable は配当も分割も無い日を保存しません。
var actionsTable = &table{
	Name: "actions",
	Key:  dateIndexKey,
	Fields: []Field{
		num("dividends", "Dividends"),
		num("stock_splits", "Stock Splits"),
	},
	Skip: func(patch map[string]any) bool {
		return absentOrZero(patch, "dividends") && absentOrZero(patch, "stock_splits")
	},
	Derive: func(patch, existing map[string]any, _ time.Time) {
		if existing != nil {
			return
		}
		for _, col := range []string{"dividends", "stock_splits"} {
			if _, ok := patch[col]; !ok {
				patch[col] = 0.0
			}
		}
	},
}

var dividendsTable = &table{
	Name:   "dividends",
	Key:    dateIndexKey,
	Fields: []Field{num("dividends", "Dividends")},
	Skip: func(patch map[string]any) bool {
		f, ok := toFloat(patch["dividends"])
		return !ok || f <= 0
	},
}

var calendarTable = &table{
	Name: "calendars",
	Fields: []Field{
		date("ex_dividend_date", "Ex-Dividend Date"),
		date("earnings_date", "Earnings Date"),
		num("earnings_high", "Earnings High"),
		num("earnings_low", "Earnings Low"),
		num("earnings_average", "Earnings Average"),
		num("revenue_high", "Revenue High"),
		num("revenue_low", "Revenue Low"),
		num("revenue_average", "Revenue Average"),
		date("dividend_payment_date", "Dividend Date"),
		date("annual_general_meeting_date", "Annual General Meeting Date"),
		date("fiscal_year_end", "Fiscal Year End"),
	},
	Derive: func(patch, _ map[string]any, now time.Time) {
		patch["data_source"] = "yfinance"
		patch["last_updated"] = nowStamp(now)
	},
}

var earningsDatesTable = &table{
	Name: "earnings_dates",
	Key:  dateIndexKey,
	Fields: []Field{
		num("eps_estimate", "EPS Estimate"),
		num("reported_eps", "Reported EPS"),
		num("surprise_percent", "Surprise(%)"),
	},
}

var earningsEstimateTable = &table{
	Name: "earnings_estimates",
	Key:  periodKey,
	Fields: []Field{
		num("avg_estimate", "avg"),
		num("low_estimate", "low"),
		num("high_estimate", "high"),
		num("year_ago_eps", "yearAgoEps"),
		integer("number_of_analysts", "numberOfAnalysts"),
		num("growth_rate", "growth"),
	},
	Derive: stampYear,
}

var revenueEstimateTable = &table{
	Name: "revenue_estimates",
	Key:  periodKey,
	Fields: []Field{
		num("avg", "avg"),
		num("low", "low"),
		num("high", "high"),
		integer("number_of_analysts", "numberOfAnalysts"),
		num("year_ago_revenue", "yearAgoRevenue"),
		num("growth", "growth"),
	},
}

var earningsHistoryTable = &table{
	Name: "earnings_history",
	Key:  dateIndexKey,
	Fields: []Field{
		num("eps_actual", "epsActual"),
		num("eps_estimate", "epsEstimate"),
		num("eps_difference", "epsDifference"),
		num("surprise_percent", "surprisePercent"),
	},
}

var epsTrendTable = &table{
	Name: "eps_trends",
	Key:  periodKey,
	Fields: []Field{
		num("current", "current"),
		num("days_ago_7", "7daysAgo"),
		num("days_ago_30", "30daysAgo"),
		num("days_ago_60", "60daysAgo"),
		num("days_ago_90", "90daysAgo"),
	},
	Derive: stampYear,
}

var epsRevisionsTable = &table{
	Name: "eps_revisions",
	Key:  periodKey,
	Fields: []Field{
		integer("up_last_7days", "upLast7days"),
		integer("up_last_30days", "upLast30days"),
		integer("down_last_7days", "downLast7Days"),
		integer("down_last_30days", "downLast30days"),
	},
	Derive: stampYear,
}

var growthEstimatesTable = &table{
	Name: "growth_estimates",
	Key:  periodKey,
	Fields: []Field{
		num("stock_trend", "stockTrend"),
		num("index_trend", "indexTrend"),
	},
	Derive: stampYear,
}

var holderFields = []Field{
	num("pct_held", "pctHeld"),
	num("shares", "Shares"),
	num("value", "Value"),
	num("pct_change", "pctChange"),
}

var institutionalHoldersTable = &table{Name: "institutional_holders", Key: holderKey, Fields: holderFields}

var mutualFundHoldersTable = &table{Name: "mutualfund_holders", Key: holderKey, Fields: holderFields}

var majorHoldersTable = &table{
	Name: "major_holders",
	Fields: []Field{
		num("insiders_percent_held", "insidersPercentHeld"),
		num("institutions_percent_held", "institutionsPercentHeld"),
		num("institutions_float_percent_held", "institutionsFloatPercentHeld"),
		num("institutions_count", "institutionsCount"),
	},
}

var insiderPurchasesTable = &table{
	Name: "insider_purchases",
	Key:  []keyPart{{Column: "insider_purchases_last_6m", Source: "Insider Purchases Last 6m", Norm: trim}},
	Fields: []Field{
		num("shares", "Shares"),
		integer("trans", "Trans"),
	},
}

var recommendationCounts = []string{"strong_buy", "buy", "hold", "sell", "strong_sell"}

// recommendationsTable は total_analysts を各カウントの合計として保存します。
var recommendationsTable = &table{
	Name: "recommendations",
	Key:  []keyPart{{Column: "period", Source: "period", Norm: trim}},
	Fields: []Field{
		integer("strong_buy", "strongBuy"),
		integer("buy", "buy"),
		integer("hold", "hold"),
		integer("sell", "sell"),
		integer("strong_sell", "strongSell"),
	},
	Derive: func(patch, existing map[string]any, _ time.Time) {
		var total int64
		for _, col := range recommendationCounts {
			v, ok := patch[col]
			if !ok {
				v = existing[col]
			}
			if f, ok := toFloat(v); ok {
				total += int64(f)
			}
		}
		if total > 0 {
			patch["total_analysts"] = total
		}
	},
}

var newsTable = &table{
	Name:      "news",
	Key:       []keyPart{{Column: "id", Source: "id", Norm: trim}},
	GlobalKey: true,
	Fields: []Field{
		text("content_type", "content.contentType"),
		text("title", "content.title"),
		text("description", "content.description"),
		text("summary", "content.summary"),
		stamp("pub_date", "content.pubDate"),
		stamp("display_time", "content.displayTime"),
		text("provider_name", "content.provider.displayName"),
		text("provider_url", "content.provider.url"),
		text("canonical_url", "content.canonicalUrl.url"),
		text("click_through_url", "content.clickThroughUrl.url"),
		text("preview_url", "content.previewUrl"),
		flag("is_hosted", "content.isHosted"),
		flag("bypass_modal", "content.bypassModal"),
		flag("editors_pick", "content.metadata.editorsPick"),
		flag("is_premium_news", "content.finance.premiumFinance.isPremiumNews"),
		flag("is_premium_free_news", "content.finance.premiumFinance.isPremiumFreeNews"),
		text("site", "content.canonicalUrl.site"),
		text("region", "content.canonicalUrl.region"),
		text("lang", "content.canonicalUrl.lang"),
	},
}
