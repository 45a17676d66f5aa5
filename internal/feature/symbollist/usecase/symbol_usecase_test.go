package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/usecase"
)

// mockCompanyDirectory はCompanyDirectoryインターフェースのモック実装です。
type mockCompanyDirectory struct {
	ListCompaniesFunc  func(ctx context.Context) ([]entity.Company, error)
	ListCompaniesCalls int
}

func (m *mockCompanyDirectory) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	m.ListCompaniesCalls++
	if m.ListCompaniesFunc != nil {
		return m.ListCompaniesFunc(ctx)
	}
	return nil, nil
}

// mockStockRepository はStockRepositoryインターフェースのモック実装です。
type mockStockRepository struct {
	UpsertAllFunc  func(ctx context.Context, stocks []entity.Stock) (int, error)
	UpsertAllCalls int
	ListAllFunc    func(ctx context.Context) ([]entity.Stock, error)
}

func (m *mockStockRepository) UpsertAll(ctx context.Context, stocks []entity.Stock) (int, error) {
	m.UpsertAllCalls++
	if m.UpsertAllFunc != nil {
		return m.UpsertAllFunc(ctx, stocks)
	}
	return len(stocks), nil
}

func (m *mockStockRepository) ListAll(ctx context.Context) ([]entity.Stock, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

// TestNewSymbolUsecase はNewSymbolUsecaseコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewSymbolUsecase(t *testing.T) {
	t.Parallel()

	uc := usecase.NewSymbolUsecase(&mockCompanyDirectory{}, nil)
	assert.NotNil(t, uc, "usecase should not be nil")
}

// TestTickers はコードの切り詰め・重複排除・空コード除外をテーブル駆動テストで検証します。
func TestTickers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		companies []entity.Company
		want      []string
	}{
		{
			name:      "five digit code is truncated and suffixed",
			companies: []entity.Company{{Code: "79740", CompanyName: "任天堂"}},
			want:      []string{"7974.T"},
		},
		{
			name: "duplicates after truncation keep first-seen order",
			companies: []entity.Company{
				{Code: "72030"}, {Code: "13010"}, {Code: "72035"}, {Code: "13010"},
			},
			want: []string{"7203.T", "1301.T"},
		},
		{
			name:      "empty codes are dropped",
			companies: []entity.Company{{Code: ""}, {Code: "  "}, {Code: "6758"}},
			want:      []string{"6758.T"},
		},
		{
			name:      "alphanumeric code",
			companies: []entity.Company{{Code: "130A0"}},
			want:      []string{"130A.T"},
		},
		{
			name: "no companies",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tickers, stocks := usecase.Tickers(tt.companies)
			assert.Equal(t, tt.want, tickers)
			require.Len(t, stocks, len(tt.want))
			for i, s := range stocks {
				assert.Equal(t, tt.want[i], s.Symbol)
			}
		})
	}
}

// TestSymbolUsecase_ListTickers はListTickersメソッドの各種シナリオを検証します。
func TestSymbolUsecase_ListTickers(t *testing.T) {
	t.Parallel()

	companies := []entity.Company{
		{Code: "79740", CompanyName: "任天堂", Sector17CodeName: "情報通信・サービスその他", MarketCodeName: "プライム"},
		{Code: "67580", CompanyName: "ソニーグループ"},
	}

	tests := []struct {
		name        string
		dir         *mockCompanyDirectory
		repo        *mockStockRepository
		want        []string
		wantErr     bool
		wantUpserts int
	}{
		{
			name: "success: tickers returned and stock master saved",
			dir: &mockCompanyDirectory{ListCompaniesFunc: func(ctx context.Context) ([]entity.Company, error) {
				return companies, nil
			}},
			repo:        &mockStockRepository{},
			want:        []string{"7974.T", "6758.T"},
			wantUpserts: 1,
		},
		{
			name: "success: save failure does not fail the listing",
			dir: &mockCompanyDirectory{ListCompaniesFunc: func(ctx context.Context) ([]entity.Company, error) {
				return companies, nil
			}},
			repo: &mockStockRepository{UpsertAllFunc: func(ctx context.Context, stocks []entity.Stock) (int, error) {
				return 0, errors.New("disk full")
			}},
			want:        []string{"7974.T", "6758.T"},
			wantUpserts: 1,
		},
		{
			name: "success: empty listing skips save",
			dir: &mockCompanyDirectory{ListCompaniesFunc: func(ctx context.Context) ([]entity.Company, error) {
				return nil, nil
			}},
			repo:        &mockStockRepository{},
			want:        []string{},
			wantUpserts: 0,
		},
		{
			name: "failure: directory returns error",
			dir: &mockCompanyDirectory{ListCompaniesFunc: func(ctx context.Context) ([]entity.Company, error) {
				return nil, errors.New("jquants unavailable")
			}},
			repo:    &mockStockRepository{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewSymbolUsecase(tt.dir, tt.repo)
			got, err := uc.ListTickers(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantUpserts, tt.repo.UpsertAllCalls)
		})
	}
}

func TestSymbolUsecase_ListTickers_NilRepository(t *testing.T) {
	t.Parallel()

	dir := &mockCompanyDirectory{ListCompaniesFunc: func(ctx context.Context) ([]entity.Company, error) {
		return []entity.Company{{Code: "79740"}}, nil
	}}
	uc := usecase.NewSymbolUsecase(dir, nil)

	got, err := uc.ListTickers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"7974.T"}, got)

	stocks, err := uc.ListStocks(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stocks)
}
