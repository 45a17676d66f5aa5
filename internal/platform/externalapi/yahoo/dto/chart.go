// Package dto は Yahoo Finance API のレスポンス構造を定義します。
package dto

// ChartResponse は v8/finance/chart のレスポンスです。
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *ErrorBody    `json:"error"`
	} `json:"chart"`
}

// ErrorBody は Yahoo の共通エラー形式です。
type ErrorBody struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type ChartResult struct {
	Meta       ChartMeta    `json:"meta"`
	Timestamp  []int64      `json:"timestamp"`
	Events     *ChartEvents `json:"events"`
	Indicators struct {
		Quote []ChartQuote `json:"quote"`
	} `json:"indicators"`
}

type ChartMeta struct {
	Currency                   string   `json:"currency"`
	Symbol                     string   `json:"symbol"`
	ExchangeName               string   `json:"exchangeName"`
	InstrumentType             string   `json:"instrumentType"`
	ExchangeTimezoneName       string   `json:"exchangeTimezoneName"`
	GmtOffset                  int      `json:"gmtoffset"`
	RegularMarketTime          int64    `json:"regularMarketTime"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	RegularMarketDayHigh       *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow        *float64 `json:"regularMarketDayLow"`
	RegularMarketVolume        *float64 `json:"regularMarketVolume"`
	ChartPreviousClose         *float64 `json:"chartPreviousClose"`
	PreviousClose              *float64 `json:"previousClose"`
	RegularMarketPreviousClose *float64 `json:"regularMarketPreviousClose"`
	FiftyTwoWeekHigh           *float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow            *float64 `json:"fiftyTwoWeekLow"`
}

// ChartQuote の各配列は Timestamp と同じ長さで、欠損は null です。
type ChartQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}

type ChartEvents struct {
	Dividends map[string]Dividend `json:"dividends"`
	Splits    map[string]Split    `json:"splits"`
}

type Dividend struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

type Split struct {
	Date        int64   `json:"date"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	SplitRatio  string  `json:"splitRatio"`
}
