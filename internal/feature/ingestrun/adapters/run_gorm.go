// Package adapters はingestrunフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/kettleTeacues/yfinance/internal/feature/ingestrun/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/feature/ingestrun/usecase"
)

type runGorm struct {
	db *gorm.DB
}

var _ usecase.RunRepository = (*runGorm)(nil)

func NewRunRepository(db *gorm.DB) *runGorm {
	return &runGorm{db: db}
}

// RunModel は ingest_runs テーブルの1行です。
type RunModel struct {
	ID         string         `gorm:"primaryKey;size:36"`
	Tier       string         `gorm:"size:16;not null;index"`
	StartedAt  time.Time      `gorm:"not null;index"`
	FinishedAt time.Time      `gorm:"not null"`
	Securities int            `gorm:"not null;default:0"`
	Datasets   int            `gorm:"not null;default:0"`
	Rows       int            `gorm:"column:row_count;not null;default:0"`
	Failures   int            `gorm:"not null;default:0"`
	Errors     datatypes.JSON `gorm:"type:json"`
}

func (RunModel) TableName() string {
	return "ingest_runs"
}

func toModel(e entity.Run) (RunModel, error) {
	errs := e.Errors
	if errs == nil {
		errs = []string{}
	}
	b, err := json.Marshal(errs)
	if err != nil {
		return RunModel{}, err
	}
	return RunModel{
		ID:         e.ID.String(),
		Tier:       e.Tier,
		StartedAt:  e.StartedAt,
		FinishedAt: e.FinishedAt,
		Securities: e.Securities,
		Datasets:   e.Datasets,
		Rows:       e.Rows,
		Failures:   e.Failures,
		Errors:     datatypes.JSON(b),
	}, nil
}

func toEntity(m RunModel) (entity.Run, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return entity.Run{}, fmt.Errorf("run %q: %w", m.ID, err)
	}
	var errs []string
	if len(m.Errors) > 0 {
		if err := json.Unmarshal(m.Errors, &errs); err != nil {
			return entity.Run{}, fmt.Errorf("run %s errors: %w", m.ID, err)
		}
	}
	return entity.Run{
		ID:         id,
		Tier:       m.Tier,
		StartedAt:  m.StartedAt,
		FinishedAt: m.FinishedAt,
		Securities: m.Securities,
		Datasets:   m.Datasets,
		Rows:       m.Rows,
		Failures:   m.Failures,
		Errors:     errs,
	}, nil
}

func (r *runGorm) Create(ctx context.Context, run entity.Run) error {
	m, err := toModel(run)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *runGorm) FindByID(ctx context.Context, id uuid.UUID) (entity.Run, error) {
	var m RunModel
	err := r.db.WithContext(ctx).Where("id = ?", id.String()).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Run{}, entity.ErrRunNotFound
	}
	if err != nil {
		return entity.Run{}, err
	}
	return toEntity(m)
}

// ListRecent は開始時刻の新しい順に最大 limit 件を返します。
func (r *runGorm) ListRecent(ctx context.Context, limit int) ([]entity.Run, error) {
	var rows []RunModel
	q := r.db.WithContext(ctx).Order("started_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Run, 0, len(rows))
	for _, m := range rows {
		e, err := toEntity(m)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
