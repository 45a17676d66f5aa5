// Package runner は daily / weekly / yearly バッチ共通の実行手順を提供します。
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kettleTeacues/yfinance/internal/app/di"
	runadapters "github.com/kettleTeacues/yfinance/internal/feature/ingestrun/adapters"
	runusecase "github.com/kettleTeacues/yfinance/internal/feature/ingestrun/usecase"
	mdadapters "github.com/kettleTeacues/yfinance/internal/feature/marketdata/adapters"
	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
	mdusecase "github.com/kettleTeacues/yfinance/internal/feature/marketdata/usecase"
	symboladapters "github.com/kettleTeacues/yfinance/internal/feature/symbollist/adapters"
	symbolusecase "github.com/kettleTeacues/yfinance/internal/feature/symbollist/usecase"
	"github.com/kettleTeacues/yfinance/internal/platform/db"
	"github.com/kettleTeacues/yfinance/internal/shared/envconfig"
	"github.com/kettleTeacues/yfinance/internal/shared/ratelimiter"
)

// Config はバッチ全体の設定です。RunTimeout が 0 の場合は時間制限を設けません。
// Datasets が空でなければ、ティアのデータセットをその範囲（"history:1d" 形式）に絞り込みます。
type Config struct {
	SecurityDelay time.Duration `env:"SECURITY_DELAY" envDefault:"100ms" validate:"gte=0"`
	RunTimeout    time.Duration `env:"RUN_TIMEOUT" envDefault:"0s" validate:"gte=0"`
	Datasets      []string      `env:"INGEST_DATASETS" envSeparator:","`
}

// LoadConfig loads batch configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseDatasets は "info,history:1d" 形式の指定をデータセットに変換します。空要素は無視します。
func ParseDatasets(names []string) ([]entity.Dataset, error) {
	out := make([]entity.Dataset, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		ds, err := entity.ParseDataset(n)
		if err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	return out, nil
}

// Deps はティア実行に必要な依存です。Datasets が空ならティアの全データセットを処理します。
type Deps struct {
	DB        *gorm.DB
	Market    mdusecase.MarketRepository
	Directory symbolusecase.CompanyDirectory
	Limiter   ratelimiter.RateLimiterInterface
	Datasets  []entity.Dataset
	Out       io.Writer
}

// Run は .env の読み込みからハンドルのクローズまで、1ティア分のバッチを実行します。
// 銘柄単位の失敗はエラーにせず、セットアップと銘柄一覧の取得失敗のみを返します。
func Run(ctx context.Context, tier entity.Tier) error {
	envconfig.LoadDotEnv()

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("runner config: %w", err)
	}
	only, err := ParseDatasets(cfg.Datasets)
	if err != nil {
		return fmt.Errorf("INGEST_DATASETS: %w", err)
	}
	if cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RunTimeout)
		defer cancel()
	}

	store, err := di.OpenStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(store); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	market, err := di.NewMarket()
	if err != nil {
		return err
	}

	rdb := di.NewRedis(ctx)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}
	dir, err := di.NewCompanyDirectory(rdb)
	if err != nil {
		return err
	}

	_, err = Execute(ctx, tier, Deps{
		DB:        store,
		Market:    market,
		Directory: dir,
		Limiter:   ratelimiter.NewRateLimiter(cfg.SecurityDelay),
		Datasets:  only,
		Out:       os.Stdout,
	})
	return err
}

// Execute は銘柄一覧を取得してティアを実行し、エラー一覧の出力と実行記録の保存を行います。
func Execute(ctx context.Context, tier entity.Tier, d Deps) (entity.Report, error) {
	if d.Out == nil {
		d.Out = io.Discard
	}
	if d.Limiter == nil {
		d.Limiter = ratelimiter.NewRateLimiter(ratelimiter.DefaultSecurityDelay)
	}

	symbols := symbolusecase.NewSymbolUsecase(d.Directory, symboladapters.NewStockRepository(d.DB))
	tickers, err := symbols.ListTickers(ctx)
	if err != nil {
		return entity.Report{}, fmt.Errorf("list tickers: %w", err)
	}
	slog.Info("universe loaded", "tier", tier, "tickers", len(tickers))

	if len(d.Datasets) > 0 && len(mdusecase.SelectDatasets(tier, d.Datasets)) == 0 {
		slog.Warn("dataset filter matches nothing in this tier", "tier", tier, "datasets", len(d.Datasets))
	}
	ingest := mdusecase.NewIngestUsecase(d.Market, mdadapters.NewSnapshotRepository(d.DB), d.Limiter)
	report := ingest.RunTier(ctx, tier, tickers, d.Datasets...)

	printErrors(d.Out, report)

	// 打ち切られた場合でも記録は残す
	runs := runusecase.NewRunUsecase(runadapters.NewRunRepository(d.DB))
	if _, err := runs.Record(context.WithoutCancel(ctx), report); err != nil {
		slog.Error("failed to record ingest run", "tier", tier, "error", err)
	}
	return report, nil
}

func printErrors(w io.Writer, r entity.Report) {
	fmt.Fprintf(w, "%s: %d securities, %d datasets, %d rows, %d failures\n",
		r.Tier, r.Securities, r.Datasets, r.Rows, r.Failures)
	for _, e := range r.Errors {
		fmt.Fprintln(w, e)
	}
}
