// Package handler はingestrunフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kettleTeacues/yfinance/internal/feature/ingestrun/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/feature/ingestrun/transport/http/dto"
)

// RunUsecase は実行記録参照のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type RunUsecase interface {
	List(ctx context.Context, limit int) ([]entity.Run, error)
	Get(ctx context.Context, id string) (entity.Run, error)
}

// RunHandler は実行記録のHTTPリクエストを処理します。
type RunHandler struct {
	uc RunUsecase
}

// NewRunHandler は指定されたusecaseでRunHandlerの新しいインスタンスを生成します。
func NewRunHandler(uc RunUsecase) *RunHandler {
	return &RunHandler{uc: uc}
}

// List は実行記録を新しい順に返します。
//
// エンドポイント例:
// GET /runs?limit=20
func (h *RunHandler) List(c *gin.Context) {
	// 数値以外はデフォルト件数として扱う
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	runs, err := h.uc.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.RunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, toResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

// Get は1件の実行記録を返します。
//
// エンドポイント例:
// GET /runs/6f1c...
func (h *RunHandler) Get(c *gin.Context) {
	run, err := h.uc.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, entity.ErrInvalidRunID):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, entity.ErrRunNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(run))
}

func toResponse(r entity.Run) dto.RunResponse {
	errs := r.Errors
	if errs == nil {
		errs = []string{}
	}
	return dto.RunResponse{
		ID:              r.ID.String(),
		Tier:            r.Tier,
		StartedAt:       r.StartedAt.Format(time.RFC3339),
		FinishedAt:      r.FinishedAt.Format(time.RFC3339),
		DurationSeconds: r.Duration().Seconds(),
		Securities:      r.Securities,
		Datasets:        r.Datasets,
		Rows:            r.Rows,
		Failures:        r.Failures,
		Errors:          errs,
	}
}
