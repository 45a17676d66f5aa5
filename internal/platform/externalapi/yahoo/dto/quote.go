package dto

// QuoteSummaryResponse は v10/finance/quoteSummary のレスポンスです。
// モジュールごとに構造が異なるため、結果は汎用の map として受け取ります。
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []map[string]any `json:"result"`
		Error  *ErrorBody       `json:"error"`
	} `json:"quoteSummary"`
}

// QuoteResponse は v7/finance/quote のレスポンスです。
type QuoteResponse struct {
	QuoteResponse struct {
		Result []map[string]any `json:"result"`
		Error  *ErrorBody       `json:"error"`
	} `json:"quoteResponse"`
}

// TimeseriesResponse は fundamentals-timeseries のレスポンスです。
// 各要素は "meta" と "timestamp" に加え、型名（annualTotalAssets など）をキーとする配列を持ちます。
type TimeseriesResponse struct {
	Timeseries struct {
		Result []map[string]any `json:"result"`
		Error  *ErrorBody       `json:"error"`
	} `json:"timeseries"`
}

// VisualizationResponse は v1/finance/visualization のレスポンスです。
type VisualizationResponse struct {
	Finance struct {
		Result []struct {
			Documents []struct {
				Columns []struct {
					ID string `json:"id"`
				} `json:"columns"`
				Rows [][]any `json:"rows"`
			} `json:"documents"`
		} `json:"result"`
		Error *ErrorBody `json:"error"`
	} `json:"finance"`
}

// NewsResponse は xhr/ncp のレスポンスです。
type NewsResponse struct {
	Data struct {
		TickerStream struct {
			Stream []NewsItem `json:"stream"`
		} `json:"tickerStream"`
	} `json:"data"`
}

type NewsItem struct {
	ID      string         `json:"id"`
	Content map[string]any `json:"content"`
}
