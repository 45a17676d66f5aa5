package entity

import (
	"fmt"
	"time"
)

// Stage はエラーが発生した処理段階です。
type Stage string

const (
	StageFetch Stage = "fetch"
	StageStore Stage = "store"
)

// FetchError は1銘柄・1データセットの処理失敗を表します。
// Err は原因のエラーで、errors.Is / errors.As で辿れます。
type FetchError struct {
	Symbol  string
	Dataset Dataset
	Stage   Stage
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s %s: %v", e.Symbol, e.Dataset, e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Result は1データセット分の処理結果です。Err が nil のとき Rows は書き込んだ行数です。
type Result struct {
	Symbol  string
	Dataset Dataset
	Rows    int
	Err     *FetchError
}

// OK reports whether the dataset was processed without error.
func (r Result) OK() bool { return r.Err == nil }

// Tier はバッチの実行区分（daily / weekly / yearly）です。
type Tier string

const (
	TierDaily  Tier = "daily"
	TierWeekly Tier = "weekly"
	TierYearly Tier = "yearly"
)

// Report aggregates the results of one tier run.
type Report struct {
	Tier       Tier
	StartedAt  time.Time
	FinishedAt time.Time
	Securities int
	Datasets   int
	Rows       int
	Failures   int
	Errors     []string
}

// Add folds a single dataset result into the report.
func (r *Report) Add(res Result) {
	r.Datasets++
	if res.Err != nil {
		r.Failures++
		r.Errors = append(r.Errors, res.Err.Error())
		return
	}
	r.Rows += res.Rows
}
