package di

import (
	"fmt"

	"gorm.io/gorm"

	runadapters "github.com/kettleTeacues/yfinance/internal/feature/ingestrun/adapters"
	mdadapters "github.com/kettleTeacues/yfinance/internal/feature/marketdata/adapters"
	symbolentity "github.com/kettleTeacues/yfinance/internal/feature/symbollist/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/platform/db"
)

// Models はマイグレーション対象の全モデルを返します。
func Models() []any {
	models := mdadapters.Models()
	return append(models, &symbolentity.Stock{}, &runadapters.RunModel{})
}

// OpenStore は環境変数の設定でストレージハンドルを開き、必要ならマイグレーションします。
// 呼び出し側は db.Close でハンドルを閉じる責任を持ちます。
func OpenStore() (*gorm.DB, error) {
	cfg, err := db.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("db config: %w", err)
	}
	return db.Open(cfg, Models()...)
}
