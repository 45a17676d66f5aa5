// Package entity defines the domain models for the ingestrun feature.
package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrRunNotFound は指定IDの実行記録が存在しない場合に返されます。
	ErrRunNotFound = errors.New("ingest run not found")
	// ErrInvalidRunID は実行IDが UUID として解釈できない場合に返されます。
	ErrInvalidRunID = errors.New("invalid ingest run id")
)

// Run is the persisted summary of one tier execution.
type Run struct {
	ID         uuid.UUID
	Tier       string
	StartedAt  time.Time
	FinishedAt time.Time
	Securities int
	Datasets   int
	Rows       int
	Failures   int
	Errors     []string
}

// Duration は実行にかかった時間です。
func (r Run) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
