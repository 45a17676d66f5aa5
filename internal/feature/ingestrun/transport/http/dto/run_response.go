// Package dto defines data transfer objects for the ingestrun HTTP API.
package dto

// RunResponse は実行記録のレスポンスDTOです。
type RunResponse struct {
	ID              string   `json:"id"`
	Tier            string   `json:"tier"`
	StartedAt       string   `json:"started_at"`  // RFC3339
	FinishedAt      string   `json:"finished_at"` // RFC3339
	DurationSeconds float64  `json:"duration_seconds"`
	Securities      int      `json:"securities"`
	Datasets        int      `json:"datasets"`
	Rows            int      `json:"rows"`
	Failures        int      `json:"failures"`
	Errors          []string `json:"errors"`
}

// ErrorResponse はエラー時のレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}
