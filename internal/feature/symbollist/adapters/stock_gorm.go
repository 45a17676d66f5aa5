// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/usecase"
)

const upsertBatchSize = 500

// stockGorm はStockRepositoryインターフェースのgorm実装です。
type stockGorm struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockGorm)(nil)

// NewStockRepository は指定されたDB接続でstockGormリポジトリの新しいインスタンスを生成します。
func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{db: db}
}

// UpsertAll は symbol をキーに銘柄マスタを挿入または更新します。
func (r *stockGorm) UpsertAll(ctx context.Context, stocks []entity.Stock) (int, error) {
	if len(stocks) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}},
			DoUpdates: clause.AssignmentColumns([]string{"company_name", "sector", "industry", "market", "updated_at"}),
		}).
		CreateInBatches(&stocks, upsertBatchSize)
	if res.Error != nil {
		return 0, res.Error
	}
	return len(stocks), nil
}

// ListAll はsymbol順にすべての銘柄を返します。
func (r *stockGorm) ListAll(ctx context.Context) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).
		Order("symbol ASC").
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}
