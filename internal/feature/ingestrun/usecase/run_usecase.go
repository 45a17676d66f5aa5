// Package usecase はバッチ実行記録のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kettleTeacues/yfinance/internal/feature/ingestrun/domain/entity"
	mdentity "github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
)

const (
	// DefaultLimit は一覧取得のデフォルト件数です。
	DefaultLimit = 20
	// MaxLimit は一覧取得の最大件数です。
	MaxLimit = 200
)

// RunRepository は実行記録の永続化レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type RunRepository interface {
	Create(ctx context.Context, run entity.Run) error
	FindByID(ctx context.Context, id uuid.UUID) (entity.Run, error)
	ListRecent(ctx context.Context, limit int) ([]entity.Run, error)
}

// RunUsecase は実行記録の保存と参照を提供します。
type RunUsecase struct {
	repo  RunRepository
	newID func() uuid.UUID
}

// NewRunUsecase はRunUsecaseの新しいインスタンスを生成します。
func NewRunUsecase(repo RunRepository) *RunUsecase {
	return &RunUsecase{repo: repo, newID: uuid.New}
}

// Record はバッチの集計結果を実行記録として保存します。
func (u *RunUsecase) Record(ctx context.Context, report mdentity.Report) (entity.Run, error) {
	run := entity.Run{
		ID:         u.newID(),
		Tier:       string(report.Tier),
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Securities: report.Securities,
		Datasets:   report.Datasets,
		Rows:       report.Rows,
		Failures:   report.Failures,
		Errors:     report.Errors,
	}
	if err := u.repo.Create(ctx, run); err != nil {
		return entity.Run{}, fmt.Errorf("record run: %w", err)
	}
	slog.Info("ingest run recorded", "id", run.ID, "tier", run.Tier, "failures", run.Failures)
	return run, nil
}

// List は新しい順に実行記録を返します。limit が範囲外の場合はデフォルト値を使います。
func (u *RunUsecase) List(ctx context.Context, limit int) ([]entity.Run, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return u.repo.ListRecent(ctx, limit)
}

// Get は ID 文字列で実行記録を取得します。
func (u *RunUsecase) Get(ctx context.Context, id string) (entity.Run, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return entity.Run{}, fmt.Errorf("%w: %q", entity.ErrInvalidRunID, id)
	}
	return u.repo.FindByID(ctx, parsed)
}
