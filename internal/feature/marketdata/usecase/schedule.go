package usecase

import "github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"

// 実行区分ごとのデータセット。並び順がそのまま処理順になります。
var (
	dailyDatasets = []entity.Dataset{
		{Domain: entity.DomainInfo},
		{Domain: entity.DomainHistory, Variant: entity.Interval1d},
		{Domain: entity.DomainHistory, Variant: entity.Interval1m},
	}

	weeklyDatasets = []entity.Dataset{
		{Domain: entity.DomainFastInfo},
		{Domain: entity.DomainActions},
		{Domain: entity.DomainDividends},
		{Domain: entity.DomainCalendar},
		{Domain: entity.DomainEarningsDates},
		{Domain: entity.DomainEarningsEstimate},
		{Domain: entity.DomainRevenueEstimate},
		{Domain: entity.DomainEarningsHistory},
		{Domain: entity.DomainEpsTrend},
		{Domain: entity.DomainEpsRevisions},
		{Domain: entity.DomainGrowthEstimates},
		{Domain: entity.DomainRecommendations},
		{Domain: entity.DomainInstitutionalHolders},
		{Domain: entity.DomainMutualFundHolders},
		{Domain: entity.DomainMajorHolders},
		{Domain: entity.DomainInsiderPurchases},
		{Domain: entity.DomainNews},
	}

	yearlyDatasets = []entity.Dataset{
		{Domain: entity.DomainBalanceSheet, Variant: entity.PeriodAnnual},
		{Domain: entity.DomainBalanceSheet, Variant: entity.PeriodQuarterly},
		{Domain: entity.DomainCashFlow, Variant: entity.PeriodAnnual},
		{Domain: entity.DomainCashFlow, Variant: entity.PeriodQuarterly},
		{Domain: entity.DomainIncomeStmt},
		{Domain: entity.DomainFinancials},
		{Domain: entity.DomainSustainability},
	}
)

// TierDatasets returns the datasets processed by tier, in order.
func TierDatasets(tier entity.Tier) []entity.Dataset {
	switch tier {
	case entity.TierDaily:
		return dailyDatasets
	case entity.TierWeekly:
		return weeklyDatasets
	case entity.TierYearly:
		return yearlyDatasets
	}
	return nil
}

// SelectDatasets は tier のデータセットのうち only に含まれるものを tier の順で返します。
// only が空の場合は tier の全データセットを返します。
func SelectDatasets(tier entity.Tier, only []entity.Dataset) []entity.Dataset {
	all := TierDatasets(tier)
	if len(only) == 0 {
		return all
	}
	want := make(map[entity.Dataset]struct{}, len(only))
	for _, ds := range only {
		want[ds] = struct{}{}
	}
	out := make([]entity.Dataset, 0, len(only))
	for _, ds := range all {
		if _, ok := want[ds]; ok {
			out = append(out, ds)
		}
	}
	return out
}
