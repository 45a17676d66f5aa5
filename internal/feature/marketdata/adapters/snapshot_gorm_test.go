package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテスト用のインメモリ SQLite を作成し、全テーブルをマイグレーションします。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: は接続ごとに別 DB になるため 1 本に固定する
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(Models()...), "failed to migrate test database")
	return db
}

// testClock returns a clock that advances one second per call.
func testClock() func() time.Time {
	cur := time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local)
	return func() time.Time {
		cur = cur.Add(time.Second)
		return cur
	}
}

func newTestRepo(t *testing.T) (*snapshotGorm, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	repo := NewSnapshotRepository(db)
	repo.now = testClock()
	return repo, db
}

func bar(day string, open, high, low, closePrice, volume float64) entity.Row {
	return entity.Row{
		Index: day + "T00:00:00.0000",
		Item: entity.Item{
			"Open": open, "High": high, "Low": low, "Close": closePrice, "Volume": volume,
		},
	}
}

var (
	dailyHistory = entity.Dataset{Domain: entity.DomainHistory, Variant: entity.Interval1d}
	annualBS     = entity.Dataset{Domain: entity.DomainBalanceSheet, Variant: entity.PeriodAnnual}
	quarterlyBS  = entity.Dataset{Domain: entity.DomainBalanceSheet, Variant: entity.PeriodQuarterly}
)

func TestSnapshotRepository_HistoryScenario(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	first := entity.Tabular{Rows: []entity.Row{
		bar("2024-01-01", 100, 105, 99, 102, 1000),
		bar("2024-01-02", 102, 106, 101, 104, 1100),
		bar("2024-01-03", 104, 107, 103, 106, 1200),
	}}
	n, err := repo.Upsert(ctx, "7974.T", dailyHistory, first)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "first run inserts 3 rows")

	second := entity.Tabular{Rows: append(append([]entity.Row{}, first.Rows...),
		bar("2024-01-04", 106, 108, 105, 107, 1300),
	)}
	var before []HistoryModel
	require.NoError(t, db.Where("symbol = ?", "7974.T").Order("date").Find(&before).Error)

	n, err = repo.Upsert(ctx, "7974.T", dailyHistory, second)
	require.NoError(t, err)
	assert.Equal(t, 4, n, "second run inserts 1 and updates 3")

	var rows []HistoryModel
	require.NoError(t, db.Where("symbol = ?", "7974.T").Order("date").Find(&rows).Error)
	require.Len(t, rows, 4)
	assert.Equal(t, "2024-01-01T00:00:00.0000", rows[0].Date)
	assert.Equal(t, 100.0, *rows[0].Open)
	assert.Equal(t, 1000.0, *rows[0].Volume)
	assert.Equal(t, "2024-01-04T00:00:00.0000", rows[3].Date)

	// 更新された行は created_at を保持し updated_at のみ進む
	assert.Equal(t, before[0].CreatedAt, rows[0].CreatedAt)
	assert.NotEqual(t, before[0].UpdatedAt, rows[0].UpdatedAt)
	assert.Len(t, rows[0].CreatedAt, 24)
}

func TestSnapshotRepository_Idempotence(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	snap := entity.Tabular{Rows: []entity.Row{
		bar("2024-01-01", 100, 105, 99, 102, 1000),
		bar("2024-01-02", 102, 106, 101, 104, 1100),
	}}
	for run := 0; run < 3; run++ {
		n, err := repo.Upsert(ctx, "7974.T", dailyHistory, snap)
		require.NoError(t, err)
		assert.Equal(t, 2, n, "run %d", run)
	}

	var rows []HistoryModel
	require.NoError(t, db.Order("date").Find(&rows).Error)
	require.Len(t, rows, 2, "no duplicates after repeated runs")
	assert.Equal(t, 104.0, *rows[1].Close)
}

func TestSnapshotRepository_NullPreservingUpdate(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, "7974.T", annualBS, entity.Tabular{Rows: []entity.Row{{
		Index: "2024-03-31",
		Item:  entity.Item{"Total Assets": 100.0, "Inventory": 10.0},
	}}})
	require.NoError(t, err)

	n, err := repo.Upsert(ctx, "7974.T", annualBS, entity.Tabular{Rows: []entity.Row{{
		Index: "2024-03-31",
		Item:  entity.Item{"Inventory": 12.0, "Retained Earnings": "not a number"},
	}}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var rows []BalanceSheetModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].TotalAssets)
	assert.Equal(t, 100.0, *rows[0].TotalAssets, "absent field keeps its stored value")
	assert.Equal(t, 12.0, *rows[0].Inventory)
	assert.Nil(t, rows[0].RetainedEarnings, "non-numeric value is treated as absent")
	assert.Equal(t, "annual", rows[0].PeriodType)
}

func TestSnapshotRepository_PeriodScope(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	snap := entity.Tabular{Rows: []entity.Row{{Index: "2024-03-31", Item: entity.Item{"Total Assets": 100.0}}}}
	_, err := repo.Upsert(ctx, "7974.T", annualBS, snap)
	require.NoError(t, err)
	n, err := repo.Upsert(ctx, "7974.T", quarterlyBS, snap)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var count int64
	require.NoError(t, db.Model(&BalanceSheetModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count, "annual and quarterly rows are keyed separately")
}

func TestSnapshotRepository_ZeroRowSkip(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	snap := entity.Tabular{Rows: []entity.Row{
		{Index: "2024-03-28", Item: entity.Item{"Dividends": 0.0, "Stock Splits": 0.0}},
		{Index: "2024-09-27", Item: entity.Item{"Dividends": 50.0, "Stock Splits": 0.0}},
		{Index: "2022-09-29", Item: entity.Item{"Stock Splits": 10.0}},
	}}
	n, err := repo.Upsert(ctx, "7974.T", entity.Dataset{Domain: entity.DomainActions}, snap)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var rows []ActionModel
	require.NoError(t, db.Order("date").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, "2022-09-29", rows[0].Date)
	assert.Equal(t, 0.0, *rows[0].Dividends, "missing value is filled with zero on insert")
	assert.Equal(t, 10.0, *rows[0].StockSplits)
	assert.Equal(t, "2024-09-27", rows[1].Date)

	n, err = repo.Upsert(ctx, "7974.T", entity.Dataset{Domain: entity.DomainDividends}, entity.Tabular{Rows: []entity.Row{
		{Index: "2024-03-28", Item: entity.Item{"Dividends": 0.0}},
		{Index: "2024-09-27", Item: entity.Item{"Dividends": 50.0}},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSnapshotRepository_FallbackPriority(t *testing.T) {
	testCases := []struct {
		name string
		item entity.Item
		want float64
	}{
		{
			name: "first candidate wins",
			item: entity.Item{"Total Revenue": 500.0, "Operating Revenue": 400.0},
			want: 500,
		},
		{
			name: "falls back when first candidate is absent",
			item: entity.Item{"Operating Revenue": 400.0},
			want: 400,
		},
		{
			name: "falls back when first candidate does not coerce",
			item: entity.Item{"Total Revenue": "n/a", "Operating Revenue": 400.0},
			want: 400,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, db := newTestRepo(t)
			_, err := repo.Upsert(context.Background(), "7974.T",
				entity.Dataset{Domain: entity.DomainFinancials},
				entity.Tabular{Rows: []entity.Row{{Index: "2024-03-31", Item: tc.item}}})
			require.NoError(t, err)

			var rows []FinancialsModel
			require.NoError(t, db.Find(&rows).Error)
			require.Len(t, rows, 1)
			assert.Equal(t, tc.want, *rows[0].TotalRevenue)
			assert.Equal(t, "annual", rows[0].PeriodType)
		})
	}
}

func TestSnapshotRepository_Holders(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	ds := entity.Dataset{Domain: entity.DomainInstitutionalHolders}

	holder := func(name string, shares float64) entity.Row {
		return entity.Row{Item: entity.Item{
			"Date Reported": "2024-03-31T00:00:00",
			"Holder":        name,
			"Shares":        shares,
			"pctHeld":       0.01,
		}}
	}
	snap := entity.Tabular{Rows: []entity.Row{
		holder("Vanguard", 1000),
		holder("BlackRock", 900),
		holder("  Vanguard ", 1100), // 同一キーは1行にまとめる
		{Item: entity.Item{"Holder": "No Date", "Shares": 1.0}},
	}}
	n, err := repo.Upsert(ctx, "7974.T", ds, snap)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var rows []InstitutionalHolderModel
	require.NoError(t, db.Order("holder").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, "BlackRock", rows[0].Holder)
	assert.Equal(t, "2024-03-31", rows[1].Date)
	assert.Equal(t, 1100.0, *rows[1].Shares)

	n, err = repo.Upsert(ctx, "7974.T", ds, entity.Tabular{Rows: []entity.Row{holder("BlackRock", 950)}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, db.Order("holder").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, 950.0, *rows[0].Shares)
}

func TestSnapshotRepository_Estimates(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	snap := entity.Keyed{Entries: map[string]entity.Item{
		"0q":  {"avg": 120.5, "low": 100.0, "high": 140.0, "numberOfAnalysts": 8.0, "growth": 0.1},
		"+1y": {"avg": 600.0, "numberOfAnalysts": "12"},
	}}
	n, err := repo.Upsert(ctx, "7974.T", entity.Dataset{Domain: entity.DomainEarningsEstimate}, snap)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var rows []EarningsEstimateModel
	require.NoError(t, db.Order("period_type").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, "+1y", rows[0].PeriodType)
	assert.Equal(t, int64(12), *rows[0].NumberOfAnalysts)
	assert.Equal(t, int64(2024), *rows[0].Year)
	assert.Equal(t, "0q", rows[1].PeriodType)
	assert.Equal(t, int64(8), *rows[1].NumberOfAnalysts)
	assert.Equal(t, 120.5, *rows[1].AvgEstimate)
}

func TestSnapshotRepository_Recommendations(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	ds := entity.Dataset{Domain: entity.DomainRecommendations}

	_, err := repo.Upsert(ctx, "7974.T", ds, entity.Tabular{Rows: []entity.Row{
		{Item: entity.Item{"period": "0m", "strongBuy": 3.0, "buy": 5.0, "hold": 4.0, "sell": 1.0, "strongSell": 0.0}},
		{Item: entity.Item{"period": "-1m", "strongBuy": 0.0, "buy": 0.0, "hold": 0.0, "sell": 0.0, "strongSell": 0.0}},
	}})
	require.NoError(t, err)

	// 部分的な更新でも合計は保存済みの値を含めて再計算する
	_, err = repo.Upsert(ctx, "7974.T", ds, entity.Tabular{Rows: []entity.Row{
		{Item: entity.Item{"period": "0m", "buy": 6.0}},
	}})
	require.NoError(t, err)

	var rows []RecommendationModel
	require.NoError(t, db.Order("period").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, "-1m", rows[0].Period)
	assert.Nil(t, rows[0].TotalAnalysts, "total is not stored when every count is zero")
	assert.Equal(t, "0m", rows[1].Period)
	assert.Equal(t, int64(6), *rows[1].Buy)
	assert.Equal(t, int64(14), *rows[1].TotalAnalysts)
}

func TestSnapshotRepository_NewsGlobalKey(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	ds := entity.Dataset{Domain: entity.DomainNews}

	article := entity.Item{
		"id": "a1b2c3",
		"content": map[string]any{
			"title":    "Nintendo earnings",
			"pubDate":  "2024-05-07T06:30:00Z",
			"isHosted": true,
			"provider": map[string]any{"displayName": "Reuters", "url": "https://reuters.com"},
			"canonicalUrl": map[string]any{
				"url": "https://finance.yahoo.com/news/a1b2c3", "site": "finance", "region": "US", "lang": "en-US",
			},
		},
	}
	n, err := repo.Upsert(ctx, "7974.T", ds, entity.Tabular{Rows: []entity.Row{{Item: article}}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = repo.Upsert(ctx, "6758.T", ds, entity.Tabular{Rows: []entity.Row{{Item: article}, {Item: entity.Item{"content": map[string]any{"title": "no id"}}}}})
	require.NoError(t, err)
	assert.Equal(t, 1, n, "article already stored for another symbol is updated")

	var rows []NewsModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "a1b2c3", rows[0].ID)
	assert.Equal(t, "7974.T", rows[0].Symbol)
	assert.Equal(t, "Reuters", *rows[0].ProviderName)
	assert.Equal(t, "true", *rows[0].IsHosted)
	assert.Equal(t, "2024-05-07T06:30:00Z", *rows[0].PubDate)
	assert.Equal(t, "en-US", *rows[0].Lang)
}

func TestSnapshotRepository_Singletons(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	ds := entity.Dataset{Domain: entity.DomainInfo}

	info := entity.Item{
		"longName":               "Nintendo Co., Ltd.",
		"fullTimeEmployees":      7317.0,
		"currentPrice":           7800.0,
		"tradeable":              false,
		"exDividendDate":         0.0,
		"regularMarketTime":      1717200000.0,
		"isEarningsDateEstimate": "True",
	}
	n, err := repo.Upsert(ctx, "7974.T", ds, entity.Single(info))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = repo.Upsert(ctx, "7974.T", ds, entity.Single(entity.Item{"currentPrice": 7900.0}))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var rows []StockInfoModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 7900.0, *rows[0].CurrentPrice)
	assert.Equal(t, "Nintendo Co., Ltd.", *rows[0].LongName)
	assert.Equal(t, int64(7317), *rows[0].FullTimeEmployees)
	assert.Equal(t, "false", *rows[0].Tradeable)
	assert.Equal(t, "true", *rows[0].IsEarningsDateEstimate)
	assert.Nil(t, rows[0].ExDividendDate, "zero epoch is treated as absent")
	assert.Equal(t, time.Unix(1717200000, 0).Local().Format("2006-01-02T15:04:05"), *rows[0].RegularMarketTime)
}

func TestSnapshotRepository_Sustainability(t *testing.T) {
	repo, db := newTestRepo(t)

	esg := entity.Item{
		"totalEsg":                22.5,
		"ratingYear":              2024.0,
		"peerCount":               "41",
		"peerEsgScorePerformance": map[string]any{"min": 10.1, "avg": 20.2, "max": 30.3},
		"relatedControversy":      []any{"Product & Service Incidents"},
		"gambling":                false,
	}
	_, err := repo.Upsert(context.Background(), "7974.T", entity.Dataset{Domain: entity.DomainSustainability}, entity.Single(esg))
	require.NoError(t, err)

	var rows []SustainabilityModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 22.5, *rows[0].TotalESG)
	assert.Equal(t, int64(2024), *rows[0].RatingYear)
	assert.Equal(t, int64(41), *rows[0].PeerCount)
	assert.Equal(t, 20.2, *rows[0].PeerESGAvg)
	assert.Equal(t, "false", *rows[0].Gambling)
	assert.JSONEq(t, `["Product & Service Incidents"]`, string(rows[0].RelatedControversy))
}

func TestSnapshotRepository_Calendar(t *testing.T) {
	repo, db := newTestRepo(t)

	cal := entity.Item{
		"Earnings Date":    []any{"2024-08-01", "2024-08-05"},
		"Ex-Dividend Date": "2024-09-27",
		"Earnings Average": 60.5,
	}
	_, err := repo.Upsert(context.Background(), "7974.T", entity.Dataset{Domain: entity.DomainCalendar}, entity.Single(cal))
	require.NoError(t, err)

	var rows []CalendarModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-08-01", *rows[0].EarningsDate)
	assert.Equal(t, "2024-09-27", *rows[0].ExDividendDate)
	assert.Equal(t, "yfinance", *rows[0].DataSource)
	assert.Len(t, *rows[0].LastUpdated, 24)
}

func TestSnapshotRepository_RollbackOnInsertFailure(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, "7974.T", dailyHistory, entity.Tabular{Rows: []entity.Row{
		bar("2024-01-01", 100, 105, 99, 102, 1000),
	}})
	require.NoError(t, err)

	// 存在しないカラムを含むルールで挿入を失敗させる
	broken := &table{
		Name:   "history",
		Key:    stampIndexKey,
		Fields: append(append([]Field{}, ohlcv...), num("no_such_column", "Bogus")),
	}
	rows := []entity.Row{
		{Index: "2024-01-01T00:00:00.0000", Item: entity.Item{"Open": 999.0}},
		{Index: "2024-01-02T00:00:00.0000", Item: entity.Item{"Open": 101.0, "Bogus": 1.0}},
	}
	n, err := repo.apply(ctx, broken, "7974.T", "", rows)
	require.Error(t, err)
	assert.Equal(t, 0, n)

	var stored []HistoryModel
	require.NoError(t, db.Order("date").Find(&stored).Error)
	require.Len(t, stored, 1, "failed insert leaves no new rows")
	assert.Equal(t, 100.0, *stored[0].Open, "update in the same call is rolled back")
}

func TestSnapshotRepository_UnknownDataset(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.Upsert(context.Background(), "7974.T", entity.Dataset{Domain: "quotes"}, entity.Empty{})
	assert.ErrorIs(t, err, entity.ErrUnknownDataset)
}

func TestSnapshotRepository_EmptySnapshot(t *testing.T) {
	repo, db := newTestRepo(t)
	n, err := repo.Upsert(context.Background(), "7974.T", dailyHistory, entity.Empty{})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	var count int64
	require.NoError(t, db.Model(&HistoryModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSnapshotRepository_LargeBatch(t *testing.T) {
	repo, db := newTestRepo(t)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := make([]entity.Row, 0, insertBatchSize+5)
	for i := 0; i < insertBatchSize+5; i++ {
		d := start.Add(time.Duration(i) * time.Minute)
		rows = append(rows, entity.Row{
			Index: d.Format(stampLayout)[:stampLen],
			Item:  entity.Item{"Close": float64(i)},
		})
	}
	n, err := repo.Upsert(context.Background(), "7974.T",
		entity.Dataset{Domain: entity.DomainHistory, Variant: entity.Interval1m}, entity.Tabular{Rows: rows})
	require.NoError(t, err)
	assert.Equal(t, insertBatchSize+5, n)

	var count int64
	require.NoError(t, db.Model(&History1mModel{}).Count(&count).Error)
	assert.Equal(t, int64(insertBatchSize+5), count)
}

// TestSnapshotRepository_HistoryKeyRepresentations は同じ足が異なる日時表現で届いても1行にまとまることを検証します。
func TestSnapshotRepository_HistoryKeyRepresentations(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	testCases := []struct {
		name  string
		index string
		close float64
	}{
		{name: "offset timestamp", index: "2024-01-01T00:00:00+09:00", close: 102},
		{name: "plain date", index: "2024-01-01", close: 103},
		{name: "stored form", index: "2024-01-01T00:00:00.0000", close: 104},
		{name: "yahoo stamp", index: "2024-01-01T00:00:00.000000Z", close: 105},
	}

	for i, tc := range testCases {
		snap := entity.Tabular{Rows: []entity.Row{{
			Index: tc.index,
			Item:  entity.Item{"Open": 100.0, "Close": tc.close},
		}}}
		n, err := repo.Upsert(ctx, "7974.T", dailyHistory, snap)
		require.NoError(t, err, tc.name)
		assert.Equal(t, 1, n, tc.name)

		var rows []HistoryModel
		require.NoError(t, db.Where("symbol = ?", "7974.T").Find(&rows).Error)
		require.Len(t, rows, 1, "%s: run %d must not add a row", tc.name, i+1)
		assert.Equal(t, "2024-01-01T00:00:00.0000", rows[0].Date)
		assert.Equal(t, tc.close, *rows[0].Close)
	}
}

// TestSnapshotRepository_RepeatedExistingKey は既存キーがスナップショット内で重複しても1回の更新として数えることを検証します。
func TestSnapshotRepository_RepeatedExistingKey(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, "7974.T", dailyHistory, entity.Tabular{Rows: []entity.Row{
		bar("2024-01-01", 100, 105, 99, 102, 1000),
	}})
	require.NoError(t, err)

	n, err := repo.Upsert(ctx, "7974.T", dailyHistory, entity.Tabular{Rows: []entity.Row{
		{Index: "2024-01-01T00:00:00.0000", Item: entity.Item{"Close": 110.0}},
		{Index: "2024-01-01", Item: entity.Item{"Volume": 2000.0}},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, n, "one persisted key is touched once")

	var rows []HistoryModel
	require.NoError(t, db.Where("symbol = ?", "7974.T").Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 110.0, *rows[0].Close)
	assert.Equal(t, 2000.0, *rows[0].Volume)
	assert.Equal(t, 100.0, *rows[0].Open)
}
