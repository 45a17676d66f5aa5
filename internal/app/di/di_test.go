package di

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettleTeacues/yfinance/internal/platform/db"
)

func TestModels(t *testing.T) {
	models := Models()
	// 市場データ25テーブル + stocks + ingest_runs
	assert.Len(t, models, 27)
}

func TestOpenStore_SQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "test.db"))
	t.Setenv("RUN_MIGRATIONS", "true")

	store, err := OpenStore()
	require.NoError(t, err)
	defer func() { _ = db.Close(store) }()

	for _, table := range []string{"history", "stock_info", "stocks", "ingest_runs"} {
		assert.True(t, store.Migrator().HasTable(table), table)
	}
	assert.NoError(t, db.Ping(context.Background(), store))
}

func TestOpenStore_InvalidDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := OpenStore()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db config")
}

func TestNewMarket(t *testing.T) {
	t.Setenv("YAHOO_RPS", "5")

	m, err := NewMarket()
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestNewCompanyDirectory(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv("JQUANTS_MAIL", "")
		t.Setenv("JQUANTS_PASS", "")

		_, err := NewCompanyDirectory(nil)
		assert.Error(t, err)
	})

	t.Run("pass-through without redis", func(t *testing.T) {
		t.Setenv("JQUANTS_MAIL", "user@example.com")
		t.Setenv("JQUANTS_PASS", "secret")

		dir, err := NewCompanyDirectory(nil)
		require.NoError(t, err)
		assert.NotNil(t, dir)
	})
}

func TestNewRedis_Disabled(t *testing.T) {
	t.Setenv("REDIS_HOST", "")

	assert.Nil(t, NewRedis(context.Background()))
}
