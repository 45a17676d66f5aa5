package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettleTeacues/yfinance/internal/feature/ingestrun/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/feature/ingestrun/usecase"
	mdentity "github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
)

// mockRunRepository はRunRepositoryインターフェースのモック実装です。
type mockRunRepository struct {
	CreateFunc      func(ctx context.Context, run entity.Run) error
	CreateCalls     int
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (entity.Run, error)
	FindByIDCalls   int
	ListRecentFunc  func(ctx context.Context, limit int) ([]entity.Run, error)
	ListRecentLimit int
}

func (m *mockRunRepository) Create(ctx context.Context, run entity.Run) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, run)
	}
	return nil
}

func (m *mockRunRepository) FindByID(ctx context.Context, id uuid.UUID) (entity.Run, error) {
	m.FindByIDCalls++
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return entity.Run{ID: id}, nil
}

func (m *mockRunRepository) ListRecent(ctx context.Context, limit int) ([]entity.Run, error) {
	m.ListRecentLimit = limit
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

func TestRunUsecase_Record(t *testing.T) {
	t.Parallel()

	started := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)
	report := mdentity.Report{
		Tier:       mdentity.TierDaily,
		StartedAt:  started,
		FinishedAt: started.Add(time.Minute),
		Securities: 2,
		Datasets:   8,
		Rows:       100,
		Failures:   1,
		Errors:     []string{"boom"},
	}

	t.Run("success", func(t *testing.T) {
		var saved entity.Run
		repo := &mockRunRepository{CreateFunc: func(ctx context.Context, run entity.Run) error {
			saved = run
			return nil
		}}
		run, err := usecase.NewRunUsecase(repo).Record(context.Background(), report)

		require.NoError(t, err)
		assert.Equal(t, 1, repo.CreateCalls)
		assert.NotEqual(t, uuid.Nil, run.ID)
		assert.Equal(t, saved, run)
		assert.Equal(t, "daily", run.Tier)
		assert.Equal(t, 100, run.Rows)
		assert.Equal(t, []string{"boom"}, run.Errors)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &mockRunRepository{CreateFunc: func(ctx context.Context, run entity.Run) error {
			return errors.New("disk full")
		}}
		_, err := usecase.NewRunUsecase(repo).Record(context.Background(), report)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestRunUsecase_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default when zero", limit: 0, wantLimit: usecase.DefaultLimit},
		{name: "default when negative", limit: -3, wantLimit: usecase.DefaultLimit},
		{name: "default when above max", limit: usecase.MaxLimit + 1, wantLimit: usecase.DefaultLimit},
		{name: "max accepted", limit: usecase.MaxLimit, wantLimit: usecase.MaxLimit},
		{name: "explicit", limit: 5, wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRunRepository{}
			_, err := usecase.NewRunUsecase(repo).List(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, repo.ListRecentLimit)
		})
	}
}

func TestRunUsecase_Get(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	tests := []struct {
		name      string
		id        string
		findErr   error
		wantErr   error
		wantCalls int
	}{
		{name: "success", id: id.String(), wantCalls: 1},
		{name: "invalid id", id: "not-a-uuid", wantErr: entity.ErrInvalidRunID, wantCalls: 0},
		{name: "not found", id: id.String(), findErr: entity.ErrRunNotFound, wantErr: entity.ErrRunNotFound, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRunRepository{FindByIDFunc: func(ctx context.Context, got uuid.UUID) (entity.Run, error) {
				if tt.findErr != nil {
					return entity.Run{}, tt.findErr
				}
				return entity.Run{ID: got, Tier: "weekly"}, nil
			}}
			run, err := usecase.NewRunUsecase(repo).Get(context.Background(), tt.id)

			assert.Equal(t, tt.wantCalls, repo.FindByIDCalls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, run.ID)
		})
	}
}
