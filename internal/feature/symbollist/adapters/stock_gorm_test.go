package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/domain/entity"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.Stock{}), "failed to migrate table")
	return db
}

// TestNewStockRepository はNewStockRepositoryコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewStockRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)

	assert.NotNil(t, repo, "repository should not be nil")
	assert.NotNil(t, repo.db, "database connection should not be nil")
}

func TestStockGorm_UpsertAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		first     []entity.Stock
		second    []entity.Stock
		wantRows  int
		wantNames map[string]string
	}{
		{
			name:     "success: inserts new stocks",
			first:    []entity.Stock{{Symbol: "7974.T", CompanyName: "任天堂"}, {Symbol: "7203.T", CompanyName: "トヨタ自動車"}},
			wantRows: 2,
			wantNames: map[string]string{
				"7974.T": "任天堂",
				"7203.T": "トヨタ自動車",
			},
		},
		{
			name:     "success: second run updates instead of duplicating",
			first:    []entity.Stock{{Symbol: "7974.T", CompanyName: "任天堂", Market: "プライム"}},
			second:   []entity.Stock{{Symbol: "7974.T", CompanyName: "Nintendo", Market: "プライム"}, {Symbol: "6758.T", CompanyName: "ソニーグループ"}},
			wantRows: 2,
			wantNames: map[string]string{
				"7974.T": "Nintendo",
				"6758.T": "ソニーグループ",
			},
		},
		{
			name:      "success: empty input is a no-op",
			wantRows:  0,
			wantNames: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewStockRepository(db)
			ctx := context.Background()

			n, err := repo.UpsertAll(ctx, tt.first)
			require.NoError(t, err)
			assert.Equal(t, len(tt.first), n)
			if tt.second != nil {
				_, err = repo.UpsertAll(ctx, tt.second)
				require.NoError(t, err)
			}

			stocks, err := repo.ListAll(ctx)
			require.NoError(t, err)
			assert.Len(t, stocks, tt.wantRows)
			for _, s := range stocks {
				assert.Equal(t, tt.wantNames[s.Symbol], s.CompanyName, s.Symbol)
			}
		})
	}
}

func TestStockGorm_ListAll_SortedBySymbol(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	_, err := repo.UpsertAll(context.Background(), []entity.Stock{
		{Symbol: "9984.T", CompanyName: "ソフトバンクグループ"},
		{Symbol: "1301.T", CompanyName: "極洋"},
		{Symbol: "7974.T", CompanyName: "任天堂"},
	})
	require.NoError(t, err)

	stocks, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stocks, 3)
	assert.Equal(t, []string{"1301.T", "7974.T", "9984.T"}, []string{stocks[0].Symbol, stocks[1].Symbol, stocks[2].Symbol})
}

func TestStockGorm_ListAll_Error(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	require.NoError(t, db.Migrator().DropTable(&entity.Stock{}))

	_, err := repo.ListAll(context.Background())
	assert.Error(t, err)
}
