package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDataset は未定義のデータセット名が指定された場合に返されます。
var ErrUnknownDataset = errors.New("unknown dataset")

// Domain はデータ領域（保存先テーブルの系統）を表します。
type Domain string

const (
	DomainInfo                 Domain = "info"
	DomainFastInfo             Domain = "fast_info"
	DomainHistory              Domain = "history"
	DomainActions              Domain = "actions"
	DomainDividends            Domain = "dividends"
	DomainBalanceSheet         Domain = "balancesheet"
	DomainCashFlow             Domain = "cashflow"
	DomainIncomeStmt           Domain = "income_stmt"
	DomainFinancials           Domain = "financials"
	DomainCalendar             Domain = "calendar"
	DomainEarningsDates        Domain = "earnings_dates"
	DomainEarningsEstimate     Domain = "earnings_estimate"
	DomainRevenueEstimate      Domain = "revenue_estimate"
	DomainEarningsHistory      Domain = "earnings_history"
	DomainEpsTrend             Domain = "eps_trend"
	DomainEpsRevisions         Domain = "eps_revisions"
	DomainGrowthEstimates      Domain = "growth_estimates"
	DomainInstitutionalHolders Domain = "institutional_holders"
	DomainMutualFundHolders    Domain = "mutualfund_holders"
	DomainMajorHolders         Domain = "major_holders"
	DomainInsiderPurchases     Domain = "insider_purchases"
	DomainNews                 Domain = "news"
	DomainRecommendations      Domain = "recommendations"
	DomainSustainability       Domain = "sustainability"
)

// 財務諸表の期間区分と株価履歴の足種別です。
const (
	PeriodAnnual    = "annual"
	PeriodQuarterly = "quarterly"
	Interval1d      = "1d"
	Interval1m      = "1m"
)

// Dataset は1回の取得・保存の単位です。
// Variant は株価履歴なら足種別、財務諸表なら期間区分を表し、それ以外は空です。
type Dataset struct {
	Domain  Domain
	Variant string
}

// String は "history:1d" のような表記を返します。
func (d Dataset) String() string {
	if d.Variant == "" {
		return string(d.Domain)
	}
	return string(d.Domain) + ":" + d.Variant
}

// ParseDataset は String の逆変換です。
func ParseDataset(s string) (Dataset, error) {
	domain, variant, _ := strings.Cut(s, ":")
	ds := Dataset{Domain: Domain(domain), Variant: variant}
	if !ds.Valid() {
		return Dataset{}, fmt.Errorf("%w: %q", ErrUnknownDataset, s)
	}
	return ds, nil
}

// Valid reports whether the domain/variant combination is one the pipeline knows.
func (d Dataset) Valid() bool {
	switch d.Domain {
	case DomainHistory:
		return d.Variant == Interval1d || d.Variant == Interval1m
	case DomainBalanceSheet, DomainCashFlow:
		return d.Variant == PeriodAnnual || d.Variant == PeriodQuarterly
	case DomainInfo, DomainFastInfo, DomainActions, DomainDividends, DomainIncomeStmt,
		DomainFinancials, DomainCalendar, DomainEarningsDates, DomainEarningsEstimate,
		DomainRevenueEstimate, DomainEarningsHistory, DomainEpsTrend, DomainEpsRevisions,
		DomainGrowthEstimates, DomainInstitutionalHolders, DomainMutualFundHolders,
		DomainMajorHolders, DomainInsiderPurchases, DomainNews, DomainRecommendations,
		DomainSustainability:
		return d.Variant == ""
	}
	return false
}
