package yahoo

import (
	"context"
	"fmt"

	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/usecase"
)

var _ usecase.MarketRepository = (*YahooMarket)(nil)

// Fetch は1銘柄・1データセット分のデータを取得します。
// データが存在しない場合はエラーではなく entity.Empty を返します。
func (y *YahooMarket) Fetch(ctx context.Context, symbol string, ds entity.Dataset) (entity.Snapshot, error) {
	snap, err := y.fetch(ctx, symbol, ds)
	if err != nil {
		if isNoData(err) {
			return entity.Empty{}, nil
		}
		return nil, fmt.Errorf("fetch %s %s: %w", symbol, ds, err)
	}
	if snap == nil {
		return entity.Empty{}, nil
	}
	return snap, nil
}

func (y *YahooMarket) fetch(ctx context.Context, symbol string, ds entity.Dataset) (entity.Snapshot, error) {
	switch ds.Domain {
	case entity.DomainInfo:
		return y.info(ctx, symbol)
	case entity.DomainFastInfo:
		return y.fastInfo(ctx, symbol)
	case entity.DomainHistory:
		if ds.Variant != entity.Interval1d && ds.Variant != entity.Interval1m {
			break
		}
		return y.history(ctx, symbol, ds.Variant)
	case entity.DomainActions:
		return y.actions(ctx, symbol)
	case entity.DomainDividends:
		return y.dividends(ctx, symbol)
	case entity.DomainBalanceSheet:
		return y.statement(ctx, symbol, ds.Variant, balanceSheetKeys)
	case entity.DomainCashFlow:
		return y.statement(ctx, symbol, ds.Variant, cashFlowKeys)
	case entity.DomainIncomeStmt, entity.DomainFinancials:
		return y.statement(ctx, symbol, entity.PeriodAnnual, incomeKeys)
	case entity.DomainCalendar:
		return y.calendar(ctx, symbol)
	case entity.DomainEarningsDates:
		return y.earningsDates(ctx, symbol)
	case entity.DomainEarningsEstimate:
		return y.trend(ctx, symbol, "earningsEstimate")
	case entity.DomainRevenueEstimate:
		return y.trend(ctx, symbol, "revenueEstimate")
	case entity.DomainEpsTrend:
		return y.trend(ctx, symbol, "epsTrend")
	case entity.DomainEpsRevisions:
		return y.trend(ctx, symbol, "epsRevisions")
	case entity.DomainGrowthEstimates:
		return y.growthEstimates(ctx, symbol)
	case entity.DomainEarningsHistory:
		return y.earningsHistory(ctx, symbol)
	case entity.DomainRecommendations:
		return y.recommendations(ctx, symbol)
	case entity.DomainInstitutionalHolders:
		return y.holders(ctx, symbol, "institutionOwnership")
	case entity.DomainMutualFundHolders:
		return y.holders(ctx, symbol, "fundOwnership")
	case entity.DomainMajorHolders:
		return y.singleModule(ctx, symbol, "majorHoldersBreakdown")
	case entity.DomainInsiderPurchases:
		return y.insiderPurchases(ctx, symbol)
	case entity.DomainSustainability:
		return y.singleModule(ctx, symbol, "esgScores")
	case entity.DomainNews:
		return y.news(ctx, symbol)
	}
	return nil, fmt.Errorf("%w: %s", entity.ErrUnknownDataset, ds)
}
