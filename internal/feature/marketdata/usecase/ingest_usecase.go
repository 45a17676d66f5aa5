package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/shared/ratelimiter"
)

// MarketRepository は銘柄ごとの市場データを取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	Fetch(ctx context.Context, symbol string, ds entity.Dataset) (entity.Snapshot, error)
}

// SnapshotRepository は取得したスナップショットを保存するリポジトリのインターフェイスです。
// 戻り値は挿入と更新の合計行数です。
type SnapshotRepository interface {
	Upsert(ctx context.Context, symbol string, ds entity.Dataset, snap entity.Snapshot) (int, error)
}

// IngestUsecase は外部APIからデータを取得し、データベースに永続化するユースケースを定義します。
type IngestUsecase struct {
	market      MarketRepository
	store       SnapshotRepository
	rateLimiter ratelimiter.RateLimiterInterface
	now         func() time.Time
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(market MarketRepository, store SnapshotRepository, rateLimiter ratelimiter.RateLimiterInterface) *IngestUsecase {
	return &IngestUsecase{market: market, store: store, rateLimiter: rateLimiter, now: time.Now}
}

// IngestDataset は1銘柄・1データセットを取得して保存します。
// 失敗はログに出力したうえで Result.Err として返し、呼び出し側の処理は止めません。
func (iu *IngestUsecase) IngestDataset(ctx context.Context, symbol string, ds entity.Dataset) entity.Result {
	res := entity.Result{Symbol: symbol, Dataset: ds}

	snap, err := iu.market.Fetch(ctx, symbol, ds)
	if err != nil {
		res.Err = &entity.FetchError{Symbol: symbol, Dataset: ds, Stage: entity.StageFetch, Err: err}
		slog.Error("failed to fetch data", "symbol", symbol, "dataset", ds.String(), "error", err)
		return res
	}
	if snap == nil || entity.IsEmpty(snap) {
		// データなしはエラーではない
		slog.Info("no data", "symbol", symbol, "dataset", ds.String())
		return res
	}

	n, err := iu.store.Upsert(ctx, symbol, ds, snap)
	if err != nil {
		res.Err = &entity.FetchError{Symbol: symbol, Dataset: ds, Stage: entity.StageStore, Err: err}
		slog.Error("failed to store data", "symbol", symbol, "dataset", ds.String(), "error", err)
		return res
	}
	res.Rows = n
	slog.Debug("stored", "symbol", symbol, "dataset", ds.String(), "rows", n)
	return res
}

// RunTier は指定された全銘柄について tier のデータセットを順に取得・保存します。
// 銘柄ごとに rateLimiter で待機し、1件の失敗では処理を中断しません。
// ctx がキャンセルされた場合はその時点で打ち切り、レポートに記録します。
// only を指定すると tier のデータセットをその範囲に絞り込みます。
func (iu *IngestUsecase) RunTier(ctx context.Context, tier entity.Tier, symbols []string, only ...entity.Dataset) entity.Report {
	report := entity.Report{Tier: tier, StartedAt: iu.now()}
	datasets := SelectDatasets(tier, only)

	for _, s := range symbols {
		if err := iu.rateLimiter.WaitIfNeeded(ctx); err != nil {
			report.Errors = append(report.Errors, "aborted: "+err.Error())
			slog.Warn("tier run aborted", "tier", tier, "symbol", s, "error", err)
			break
		}
		report.Securities++
		for _, ds := range datasets {
			if ctx.Err() != nil {
				break
			}
			report.Add(iu.IngestDataset(ctx, s, ds))
		}
		if err := ctx.Err(); err != nil {
			report.Errors = append(report.Errors, "aborted: "+err.Error())
			slog.Warn("tier run aborted", "tier", tier, "symbol", s, "error", err)
			break
		}
	}

	report.FinishedAt = iu.now()
	slog.Info("tier run finished",
		"tier", tier,
		"securities", report.Securities,
		"datasets", report.Datasets,
		"rows", report.Rows,
		"failures", report.Failures,
		"elapsed", report.FinishedAt.Sub(report.StartedAt),
	)
	return report
}
