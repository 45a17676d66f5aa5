// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Company は J-Quants の上場銘柄一覧の1件です。
type Company struct {
	Code               string `json:"code"`
	CompanyName        string `json:"company_name"`
	CompanyNameEnglish string `json:"company_name_english"`
	Sector17CodeName   string `json:"sector17_code_name"`
	Sector33CodeName   string `json:"sector33_code_name"`
	MarketCodeName     string `json:"market_code_name"`
}

// Stock represents a security in the ingest universe.
// Symbol is the Yahoo ticker (e.g. "7974.T").
type Stock struct {
	ID          uint      `gorm:"primaryKey"`
	Symbol      string    `gorm:"size:10;not null;uniqueIndex"`
	CompanyName string    `gorm:"size:255;not null"`
	Sector      string    `gorm:"size:100"`
	Industry    string    `gorm:"size:100"`
	Market      string    `gorm:"size:100"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName は Stock のテーブル名を返します。
func (Stock) TableName() string { return "stocks" }
