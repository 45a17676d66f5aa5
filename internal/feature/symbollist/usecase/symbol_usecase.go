// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/domain/entity"
)

// tickerSuffix は東証銘柄の Yahoo ティッカー接尾辞です。
const tickerSuffix = ".T"

// CompanyDirectory は上場銘柄一覧の取得元です。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CompanyDirectory interface {
	ListCompanies(ctx context.Context) ([]entity.Company, error)
}

// StockRepository abstracts the persistence layer for the stock master.
type StockRepository interface {
	UpsertAll(ctx context.Context, stocks []entity.Stock) (int, error)
	ListAll(ctx context.Context) ([]entity.Stock, error)
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	dir  CompanyDirectory
	repo StockRepository
}

// NewSymbolUsecase creates a new SymbolUsecase. repo may be nil when the stock master is not persisted.
func NewSymbolUsecase(dir CompanyDirectory, repo StockRepository) *SymbolUsecase {
	return &SymbolUsecase{dir: dir, repo: repo}
}

// ListTickers は上場銘柄一覧から Yahoo のティッカー（"7974.T" など）を作ります。
// 一覧の取得に失敗した場合はエラーを返します。銘柄マスタの保存失敗は警告に留めます。
func (u *SymbolUsecase) ListTickers(ctx context.Context) ([]string, error) {
	companies, err := u.dir.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	tickers, stocks := Tickers(companies)

	if u.repo != nil && len(stocks) > 0 {
		if n, err := u.repo.UpsertAll(ctx, stocks); err != nil {
			slog.Warn("failed to save stock master", "error", err)
		} else {
			slog.Info("stock master saved", "rows", n)
		}
	}
	return tickers, nil
}

// ListStocks returns the persisted stock master ordered by symbol.
func (u *SymbolUsecase) ListStocks(ctx context.Context) ([]entity.Stock, error) {
	if u.repo == nil {
		return nil, nil
	}
	return u.repo.ListAll(ctx)
}

// Tickers は銘柄コードを4桁に切り詰めて ".T" を付けます。
// 空のコードは除外し、切り詰めで重複したものは最初の1件だけを残します。
func Tickers(companies []entity.Company) ([]string, []entity.Stock) {
	seen := make(map[string]struct{}, len(companies))
	tickers := make([]string, 0, len(companies))
	stocks := make([]entity.Stock, 0, len(companies))
	for _, c := range companies {
		code := strings.TrimSpace(c.Code)
		if len(code) > 4 {
			code = code[:4]
		}
		if code == "" {
			continue
		}
		ticker := code + tickerSuffix
		if _, ok := seen[ticker]; ok {
			continue
		}
		seen[ticker] = struct{}{}
		tickers = append(tickers, ticker)
		stocks = append(stocks, entity.Stock{
			Symbol:      ticker,
			CompanyName: c.CompanyName,
			Sector:      c.Sector17CodeName,
			Industry:    c.Sector33CodeName,
			Market:      c.MarketCodeName,
		})
	}
	return tickers, stocks
}
