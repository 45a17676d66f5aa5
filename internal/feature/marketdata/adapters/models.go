package adapters

import "gorm.io/datatypes"

type StockInfoModel struct {
	ID                                uint     `gorm:"column:id;primaryKey"`
	Symbol                            string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_stock_info_key,priority:1"`
	LongName                          *string  `gorm:"column:long_name;size:512"`
	ShortName                         *string  `gorm:"column:short_name;size:64"`
	Address1                          *string  `gorm:"column:address1;size:512"`
	Address2                          *string  `gorm:"column:address2;size:512"`
	City                              *string  `gorm:"column:city;size:64"`
	ZipCode                           *string  `gorm:"column:zip_code;size:64"`
	Country                           *string  `gorm:"column:country;size:64"`
	Phone                             *string  `gorm:"column:phone;size:64"`
	Website                           *string  `gorm:"column:website;size:512"`
	IRWebsite                         *string  `gorm:"column:ir_website;size:512"`
	Industry                          *string  `gorm:"column:industry;size:64"`
	IndustryKey                       *string  `gorm:"column:industry_key;size:64"`
	IndustryDisp                      *string  `gorm:"column:industry_disp;size:64"`
	Sector                            *string  `gorm:"column:sector;size:64"`
	SectorKey                         *string  `gorm:"column:sector_key;size:64"`
	SectorDisp                        *string  `gorm:"column:sector_disp;size:64"`
	LongBusinessSummary               *string  `gorm:"column:long_business_summary;type:text"`
	FullTimeEmployees                 *int64   `gorm:"column:full_time_employees"`
	Currency                          *string  `gorm:"column:currency;size:64"`
	CurrentPrice                      *float64 `gorm:"column:current_price"`
	PreviousClose                     *float64 `gorm:"column:previous_close"`
	OpenPrice                         *float64 `gorm:"column:open_price"`
	DayLow                            *float64 `gorm:"column:day_low"`
	DayHigh                           *float64 `gorm:"column:day_high"`
	RegularMarketPreviousClose        *float64 `gorm:"column:regular_market_previous_close"`
	RegularMarketOpen                 *float64 `gorm:"column:regular_market_open"`
	RegularMarketDayLow               *float64 `gorm:"column:regular_market_day_low"`
	RegularMarketDayHigh              *float64 `gorm:"column:regular_market_day_high"`
	RegularMarketPrice                *float64 `gorm:"column:regular_market_price"`
	RegularMarketChange               *float64 `gorm:"column:regular_market_change"`
	RegularMarketChangePercent        *float64 `gorm:"column:regular_market_change_percent"`
	FiftyTwoWeekLow                   *float64 `gorm:"column:fifty_two_week_low"`
	FiftyTwoWeekHigh                  *float64 `gorm:"column:fifty_two_week_high"`
	FiftyTwoWeekChange                *float64 `gorm:"column:fifty_two_week_change"`
	FiftyTwoWeekChangePercent         *float64 `gorm:"column:fifty_two_week_change_percent"`
	AllTimeHigh                       *float64 `gorm:"column:all_time_high"`
	AllTimeLow                        *float64 `gorm:"column:all_time_low"`
	FiftyDayAverage                   *float64 `gorm:"column:fifty_day_average"`
	FiftyDayAverageChange             *float64 `gorm:"column:fifty_day_average_change"`
	FiftyDayAverageChangePercent      *float64 `gorm:"column:fifty_day_average_change_percent"`
	TwoHundredDayAverage              *float64 `gorm:"column:two_hundred_day_average"`
	TwoHundredDayAverageChange        *float64 `gorm:"column:two_hundred_day_average_change"`
	TwoHundredDayAverageChangePercent *float64 `gorm:"column:two_hundred_day_average_change_percent"`
	Volume                            *float64 `gorm:"column:volume"`
	RegularMarketVolume               *float64 `gorm:"column:regular_market_volume"`
	AverageVolume                     *float64 `gorm:"column:average_volume"`
	AverageVolume10days               *float64 `gorm:"column:average_volume_10days"`
	AverageDailyVolume10day           *float64 `gorm:"column:average_daily_volume_10day"`
	AverageDailyVolume3month          *float64 `gorm:"column:average_daily_volume_3month"`
	Bid                               *float64 `gorm:"column:bid"`
	Ask                               *float64 `gorm:"column:ask"`
	BidSize                           *float64 `gorm:"column:bid_size"`
	AskSize                           *float64 `gorm:"column:ask_size"`
	DividendRate                      *float64 `gorm:"column:dividend_rate"`
	DividendYield                     *float64 `gorm:"column:dividend_yield"`
	ExDividendDate                    *string  `gorm:"column:ex_dividend_date;size:64"`
	PayoutRatio                       *float64 `gorm:"column:payout_ratio"`
	FiveYearAvgDividendYield          *float64 `gorm:"column:five_year_avg_dividend_yield"`
	TrailingAnnualDividendRate        *float64 `gorm:"column:trailing_annual_dividend_rate"`
	TrailingAnnualDividendYield       *float64 `gorm:"column:trailing_annual_dividend_yield"`
	LastDividendValue                 *float64 `gorm:"column:last_dividend_value"`
	LastDividendDate                  *string  `gorm:"column:last_dividend_date;size:64"`
	LastSplitFactor                   *string  `gorm:"column:last_split_factor;size:64"`
	LastSplitDate                     *string  `gorm:"column:last_split_date;size:64"`
	MarketCap                         *float64 `gorm:"column:market_cap"`
	EnterpriseValue                   *float64 `gorm:"column:enterprise_value"`
	SharesOutstanding                 *float64 `gorm:"column:shares_outstanding"`
	FloatShares                       *float64 `gorm:"column:float_shares"`
	ImpliedSharesOutstanding          *float64 `gorm:"column:implied_shares_outstanding"`
	HeldPercentInsiders               *float64 `gorm:"column:held_percent_insiders"`
	HeldPercentInstitutions           *float64 `gorm:"column:held_percent_institutions"`
	Beta                              *float64 `gorm:"column:beta"`
	TrailingPE                        *float64 `gorm:"column:trailing_pe"`
	ForwardPE                         *float64 `gorm:"column:forward_pe"`
	PriceToBook                       *float64 `gorm:"column:price_to_book"`
	PriceToSalesTrailing12months      *float64 `gorm:"column:price_to_sales_trailing_12months"`
	EnterpriseToRevenue               *float64 `gorm:"column:enterprise_to_revenue"`
	EnterpriseToEBITDA                *float64 `gorm:"column:enterprise_to_ebitda"`
	TrailingPEGRatio                  *float64 `gorm:"column:trailing_peg_ratio"`
	TotalCash                         *float64 `gorm:"column:total_cash"`
	TotalCashPerShare                 *float64 `gorm:"column:total_cash_per_share"`
	TotalDebt                         *float64 `gorm:"column:total_debt"`
	TotalRevenue                      *float64 `gorm:"column:total_revenue"`
	RevenuePerShare                   *float64 `gorm:"column:revenue_per_share"`
	EBITDA                            *float64 `gorm:"column:ebitda"`
	GrossProfits                      *float64 `gorm:"column:gross_profits"`
	NetIncomeToCommon                 *float64 `gorm:"column:net_income_to_common"`
	BookValue                         *float64 `gorm:"column:book_value"`
	QuickRatio                        *float64 `gorm:"column:quick_ratio"`
	CurrentRatio                      *float64 `gorm:"column:current_ratio"`
	ReturnOnAssets                    *float64 `gorm:"column:return_on_assets"`
	ReturnOnEquity                    *float64 `gorm:"column:return_on_equity"`
	ProfitMargins                     *float64 `gorm:"column:profit_margins"`
	GrossMargins                      *float64 `gorm:"column:gross_margins"`
	EBITDAMargins                     *float64 `gorm:"column:ebitda_margins"`
	OperatingMargins                  *float64 `gorm:"column:operating_margins"`
	EarningsGrowth                    *float64 `gorm:"column:earnings_growth"`
	RevenueGrowth                     *float64 `gorm:"column:revenue_growth"`
	EarningsQuarterlyGrowth           *float64 `gorm:"column:earnings_quarterly_growth"`
	TrailingEPS                       *float64 `gorm:"column:trailing_eps"`
	ForwardEPS                        *float64 `gorm:"column:forward_eps"`
	EPSTrailingTwelveMonths           *float64 `gorm:"column:eps_trailing_twelve_months"`
	EPSForward                        *float64 `gorm:"column:eps_forward"`
	TargetHighPrice                   *float64 `gorm:"column:target_high_price"`
	TargetLowPrice                    *float64 `gorm:"column:target_low_price"`
	TargetMeanPrice                   *float64 `gorm:"column:target_mean_price"`
	TargetMedianPrice                 *float64 `gorm:"column:target_median_price"`
	RecommendationMean                *float64 `gorm:"column:recommendation_mean"`
	RecommendationKey                 *string  `gorm:"column:recommendation_key;size:64"`
	NumberOfAnalystOpinions           *int64   `gorm:"column:number_of_analyst_opinions"`
	AverageAnalystRating              *string  `gorm:"column:average_analyst_rating;size:64"`
	Exchange                          *string  `gorm:"column:exchange;size:64"`
	FullExchangeName                  *string  `gorm:"column:full_exchange_name;size:64"`
	Market                            *string  `gorm:"column:market;size:64"`
	MarketState                       *string  `gorm:"column:market_state;size:64"`
	QuoteType                         *string  `gorm:"column:quote_type;size:64"`
	Tradeable                         *string  `gorm:"column:tradeable;size:64"`
	ExchangeTimezoneName              *string  `gorm:"column:exchange_timezone_name;size:64"`
	ExchangeTimezoneShortName         *string  `gorm:"column:exchange_timezone_short_name;size:64"`
	GMTOffSetMilliseconds             *float64 `gorm:"column:gmt_off_set_milliseconds"`
	RegularMarketTime                 *string  `gorm:"column:regular_market_time;size:64"`
	AuditRisk                         *int64   `gorm:"column:audit_risk"`
	BoardRisk                         *int64   `gorm:"column:board_risk"`
	CompensationRisk                  *int64   `gorm:"column:compensation_risk"`
	ShareholderRightsRisk             *int64   `gorm:"column:shareholder_rights_risk"`
	OverallRisk                       *int64   `gorm:"column:overall_risk"`
	LastFiscalYearEnd                 *string  `gorm:"column:last_fiscal_year_end;size:64"`
	NextFiscalYearEnd                 *string  `gorm:"column:next_fiscal_year_end;size:64"`
	MostRecentQuarter                 *string  `gorm:"column:most_recent_quarter;size:64"`
	EarningsTimestamp                 *string  `gorm:"column:earnings_timestamp;size:64"`
	EarningsTimestampStart            *string  `gorm:"column:earnings_timestamp_start;size:64"`
	EarningsTimestampEnd              *string  `gorm:"column:earnings_timestamp_end;size:64"`
	IsEarningsDateEstimate            *string  `gorm:"column:is_earnings_date_estimate;size:64"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (StockInfoModel) TableName() string { return "stock_info" }

type ActionModel struct {
	ID          uint     `gorm:"column:id;primaryKey"`
	Symbol      string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_actions_key,priority:1"`
	Date        string   `gorm:"column:date;size:32;not null;uniqueIndex:uq_actions_key,priority:2"`
	Dividends   *float64 `gorm:"column:dividends"`
	StockSplits *float64 `gorm:"column:stock_splits"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (ActionModel) TableName() string { return "actions" }

type BalanceSheetModel struct {
	ID                                                  uint     `gorm:"column:id;primaryKey"`
	Symbol                                              string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_balancesheets_key,priority:1"`
	Date                                                string   `gorm:"column:date;size:32;not null;uniqueIndex:uq_balancesheets_key,priority:2"`
	PeriodType                                          string   `gorm:"column:period_type;size:16;not null;uniqueIndex:uq_balancesheets_key,priority:3"`
	TotalAssets                                         *float64 `gorm:"column:total_assets"`
	CurrentAssets                                       *float64 `gorm:"column:current_assets"`
	NonCurrentAssets                                    *float64 `gorm:"column:non_current_assets"`
	CashAndCashEquivalents                              *float64 `gorm:"column:cash_and_cash_equivalents"`
	OtherShortTermInvestments                           *float64 `gorm:"column:other_short_term_investments"`
	CashCashEquivalentsAndShortTermInvestments          *float64 `gorm:"column:cash_cash_equivalents_and_short_term_investments"`
	AccountsReceivable                                  *float64 `gorm:"column:accounts_receivable"`
	GrossAccountsReceivable                             *float64 `gorm:"column:gross_accounts_receivable"`
	Inventory                                           *float64 `gorm:"column:inventory"`
	OtherCurrentAssets                                  *float64 `gorm:"column:other_current_assets"`
	NetPPE                                              *float64 `gorm:"column:net_ppe"`
	GrossPPE                                            *float64 `gorm:"column:gross_ppe"`
	LandAndImprovements                                 *float64 `gorm:"column:land_and_improvements"`
	BuildingsAndImprovements                            *float64 `gorm:"column:buildings_and_improvements"`
	MachineryFurnitureEquipment                         *float64 `gorm:"column:machinery_furniture_equipment"`
	ConstructionInProgress                              *float64 `gorm:"column:construction_in_progress"`
	Properties                                          *float64 `gorm:"column:properties"`
	GoodwillAndOtherIntangibleAssets                    *float64 `gorm:"column:goodwill_and_other_intangible_assets"`
	OtherIntangibleAssets                               *float64 `gorm:"column:other_intangible_assets"`
	InvestmentInFinancialAssets                         *float64 `gorm:"column:investment_in_financial_assets"`
	AvailableForSaleSecurities                          *float64 `gorm:"column:available_for_sale_securities"`
	NonCurrentDeferredTaxesAssets                       *float64 `gorm:"column:non_current_deferred_taxes_assets"`
	DefinedPensionBenefit                               *float64 `gorm:"column:defined_pension_benefit"`
	OtherNonCurrentAssets                               *float64 `gorm:"column:other_non_current_assets"`
	TotalLiabilitiesNetMinorityInterest                 *float64 `gorm:"column:total_liabilities_net_minority_interest"`
	CurrentLiabilities                                  *float64 `gorm:"column:current_liabilities"`
	TotalNonCurrentLiabilitiesNetMinorityInterest       *float64 `gorm:"column:total_non_current_liabilities_net_minority_interest"`
	AccountsPayable                                     *float64 `gorm:"column:accounts_payable"`
	TotalTaxPayable                                     *float64 `gorm:"column:total_tax_payable"`
	Payables                                            *float64 `gorm:"column:payables"`
	PensionAndOtherPostRetirementBenefitPlansCurrent    *float64 `gorm:"column:pension_and_other_post_retirement_benefit_plans_current"`
	OtherCurrentLiabilities                             *float64 `gorm:"column:other_current_liabilities"`
	LongTermProvisions                                  *float64 `gorm:"column:long_term_provisions"`
	NonCurrentPensionAndOtherPostretirementBenefitPlans *float64 `gorm:"column:non_current_pension_and_other_postretirement_benefit_plans"`
	OtherNonCurrentLiabilities                          *float64 `gorm:"column:other_non_current_liabilities"`
	StockholdersEquity                                  *float64 `gorm:"column:stockholders_equity"`
	MinorityInterest                                    *float64 `gorm:"column:minority_interest"`
	TotalEquityGrossMinorityInterest                    *float64 `gorm:"column:total_equity_gross_minority_interest"`
	TotalCapitalization                                 *float64 `gorm:"column:total_capitalization"`
	CommonStockEquity                                   *float64 `gorm:"column:common_stock_equity"`
	NetTangibleAssets                                   *float64 `gorm:"column:net_tangible_assets"`
	WorkingCapital                                      *float64 `gorm:"column:working_capital"`
	InvestedCapital                                     *float64 `gorm:"column:invested_capital"`
	TangibleBookValue                                   *float64 `gorm:"column:tangible_book_value"`
	ShareIssued                                         *float64 `gorm:"column:share_issued"`
	OrdinarySharesNumber                                *float64 `gorm:"column:ordinary_shares_number"`
	TreasurySharesNumber                                *float64 `gorm:"column:treasury_shares_number"`
	CommonStock                                         *float64 `gorm:"column:common_stock"`
	CapitalStock                                        *float64 `gorm:"column:capital_stock"`
	AdditionalPaidInCapital                             *float64 `gorm:"column:additional_paid_in_capital"`
	RetainedEarnings                                    *float64 `gorm:"column:retained_earnings"`
	TreasuryStock                                       *float64 `gorm:"column:treasury_stock"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (BalanceSheetModel) TableName() string { return "balancesheets" }

type CalendarModel struct {
	ID                       uint     `gorm:"column:id;primaryKey"`
	Symbol                   string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_calendars_key,priority:1"`
	ExDividendDate           *string  `gorm:"column:ex_dividend_date;size:64"`
	EarningsDate             *string  `gorm:"column:earnings_date;size:64"`
	EarningsHigh             *float64 `gorm:"column:earnings_high"`
	EarningsLow              *float64 `gorm:"column:earnings_low"`
	EarningsAverage          *float64 `gorm:"column:earnings_average"`
	RevenueHigh              *float64 `gorm:"column:revenue_high"`
	RevenueLow               *float64 `gorm:"column:revenue_low"`
	RevenueAverage           *float64 `gorm:"column:revenue_average"`
	DividendPaymentDate      *string  `gorm:"column:dividend_payment_date;size:64"`
	AnnualGeneralMeetingDate *string  `gorm:"column:annual_general_meeting_date;size:64"`
	FiscalYearEnd            *string  `gorm:"column:fiscal_year_end;size:64"`
	DataSource               *string  `gorm:"column:data_source;size:64"`
	LastUpdated              *string  `gorm:"column:last_updated;size:64"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (CalendarModel) TableName() string { return "calendars" }

type CashFlowModel struct {
	ID                                     uint     `gorm:"column:id;primaryKey"`
	Symbol                                 string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_cash_flows_key,priority:1"`
	Date                                   string   `gorm:"column:date;size:32;not null;uniqueIndex:uq_cash_flows_key,priority:2"`
	PeriodType                             string   `gorm:"column:period_type;size:16;not null;uniqueIndex:uq_cash_flows_key,priority:3"`
	OperatingCashFlow                      *float64 `gorm:"column:operating_cash_flow"`
	InvestingCashFlow                      *float64 `gorm:"column:investing_cash_flow"`
	FinancingCashFlow                      *float64 `gorm:"column:financing_cash_flow"`
	FreeCashFlow                           *float64 `gorm:"column:free_cash_flow"`
	BeginningCashPosition                  *float64 `gorm:"column:beginning_cash_position"`
	EndCashPosition                        *float64 `gorm:"column:end_cash_position"`
	ChangesInCash                          *float64 `gorm:"column:changes_in_cash"`
	NetIncomeFromContinuingOperations      *float64 `gorm:"column:net_income_from_continuing_operations"`
	DepreciationAndAmortization            *float64 `gorm:"column:depreciation_and_amortization"`
	Depreciation                           *float64 `gorm:"column:depreciation"`
	NetForeignCurrencyExchangeGainLoss     *float64 `gorm:"column:net_foreign_currency_exchange_gain_loss"`
	GainLossOnInvestmentSecurities         *float64 `gorm:"column:gain_loss_on_investment_securities"`
	OtherNonCashItems                      *float64 `gorm:"column:other_non_cash_items"`
	ChangeInWorkingCapital                 *float64 `gorm:"column:change_in_working_capital"`
	ChangeInReceivables                    *float64 `gorm:"column:change_in_receivables"`
	ChangeInInventory                      *float64 `gorm:"column:change_in_inventory"`
	ChangeInPayable                        *float64 `gorm:"column:change_in_payable"`
	ChangeInOtherCurrentAssets             *float64 `gorm:"column:change_in_other_current_assets"`
	ChangeInOtherCurrentLiabilities        *float64 `gorm:"column:change_in_other_current_liabilities"`
	InterestPaidCFO                        *float64 `gorm:"column:interest_paid_cfo"`
	InterestReceivedCFO                    *float64 `gorm:"column:interest_received_cfo"`
	TaxesRefundPaid                        *float64 `gorm:"column:taxes_refund_paid"`
	CapitalExpenditure                     *float64 `gorm:"column:capital_expenditure"`
	PurchaseOfPPE                          *float64 `gorm:"column:purchase_of_ppe"`
	SaleOfPPE                              *float64 `gorm:"column:sale_of_ppe"`
	NetPPEPurchaseAndSale                  *float64 `gorm:"column:net_ppe_purchase_and_sale"`
	CapitalExpenditureReported             *float64 `gorm:"column:capital_expenditure_reported"`
	PurchaseOfInvestment                   *float64 `gorm:"column:purchase_of_investment"`
	SaleOfInvestment                       *float64 `gorm:"column:sale_of_investment"`
	NetInvestmentPurchaseAndSale           *float64 `gorm:"column:net_investment_purchase_and_sale"`
	NetOtherInvestingChanges               *float64 `gorm:"column:net_other_investing_changes"`
	CashDividendsPaid                      *float64 `gorm:"column:cash_dividends_paid"`
	CommonStockDividendPaid                *float64 `gorm:"column:common_stock_dividend_paid"`
	NetCommonStockIssuance                 *float64 `gorm:"column:net_common_stock_issuance"`
	CommonStockPayments                    *float64 `gorm:"column:common_stock_payments"`
	RepurchaseOfCapitalStock               *float64 `gorm:"column:repurchase_of_capital_stock"`
	NetOtherFinancingCharges               *float64 `gorm:"column:net_other_financing_charges"`
	EffectOfExchangeRateChanges            *float64 `gorm:"column:effect_of_exchange_rate_changes"`
	OtherCashAdjustmentOutsideChangeInCash *float64 `gorm:"column:other_cash_adjustment_outside_change_in_cash"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (CashFlowModel) TableName() string { return "cash_flows" }

type DividendModel struct {
	ID        uint     `gorm:"column:id;primaryKey"`
	Symbol    string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_dividends_key,priority:1"`
	Date      string   `gorm:"column:date;size:32;not null;uniqueIndex:uq_dividends_key,priority:2"`
	Dividends *float64 `gorm:"column:dividends"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (DividendModel) TableName() string { return "dividends" }

type EarningsDateModel struct {
	ID              uint     `gorm:"column:id;primaryKey"`
	Symbol          string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_earnings_dates_key,priority:1"`
	Date            string   `gorm:"column:date;size:32;not null;uniqueIndex:uq_earnings_dates_key,priority:2"`
	EPSEstimate     *float64 `gorm:"column:eps_estimate"`
	ReportedEPS     *float64 `gorm:"column:reported_eps"`
	SurprisePercent *float64 `gorm:"column:surprise_percent"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (EarningsDateModel) TableName() string { return "earnings_dates" }

type EarningsEstimateModel struct {
	ID               uint     `gorm:"column:id;primaryKey"`
	Symbol           string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_earnings_estimates_key,priority:1"`
	Year             *int64   `gorm:"column:year"`
	PeriodType       string   `gorm:"column:period_type;size:16;not null;uniqueIndex:uq_earnings_estimates_key,priority:2"`
	AvgEstimate      *float64 `gorm:"column:avg_estimate"`
	LowEstimate      *float64 `gorm:"column:low_estimate"`
	HighEstimate     *float64 `gorm:"column:high_estimate"`
	YearAgoEPS       *float64 `gorm:"column:year_ago_eps"`
	NumberOfAnalysts *int64   `gorm:"column:number_of_analysts"`
	GrowthRate       *float64 `gorm:"column:growth_rate"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (EarningsEstimateModel) TableName() string { return "earnings_estimates" }

type EarningsHistoryModel struct {
	ID              uint     `gorm:"column:id;primaryKey"`
	Symbol          string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_earnings_history_key,priority:1"`
	Date            string   `gorm:"column:date;size:32;not null;uniqueIndex:uq_earnings_history_key,priority:2"`
	EPSActual       *float64 `gorm:"column:eps_actual"`
	EPSEstimate     *float64 `gorm:"column:eps_estimate"`
	EPSDifference   *float64 `gorm:"column:eps_difference"`
	SurprisePercent *float64 `gorm:"column:surprise_percent"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (EarningsHistoryModel) TableName() string { return "earnings_history" }

type EpsRevisionModel struct {
	ID             uint   `gorm:"column:id;primaryKey"`
	Symbol         string `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_eps_revisions_key,priority:1"`
	Year           *int64 `gorm:"column:year"`
	PeriodType     string `gorm:"column:period_type;size:16;not null;uniqueIndex:uq_eps_revisions_key,priority:2"`
	UpLast7days    *int64 `gorm:"column:up_last_7days"`
	UpLast30days   *int64 `gorm:"column:up_last_30days"`
	DownLast7days  *int64 `gorm:"column:down_last_7days"`
	DownLast30days *int64 `gorm:"column:down_last_30days"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (EpsRevisionModel) TableName() string { return "eps_revisions" }

type EpsTrendModel struct {
	ID         uint     `gorm:"column:id;primaryKey"`
	Symbol     string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_eps_trends_key,priority:1"`
	Year       *int64   `gorm:"column:year"`
	PeriodType string   `gorm:"column:period_type;size:16;not null;uniqueIndex:uq_eps_trends_key,priority:2"`
	Current    *float64 `gorm:"column:current"`
	DaysAgo7   *float64 `gorm:"column:days_ago_7"`
	DaysAgo30  *float64 `gorm:"column:days_ago_30"`
	DaysAgo60  *float64 `gorm:"column:days_ago_60"`
	DaysAgo90  *float64 `gorm:"column:days_ago_90"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (EpsTrendModel) TableName() string { return "eps_trends" }

type FastInfoModel struct {
	ID                         uint     `gorm:"column:id;primaryKey"`
	Symbol                     string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_fast_info_key,priority:1"`
	Currency                   *string  `gorm:"column:currency;size:64"`
	Exchange                   *string  `gorm:"column:exchange;size:64"`
	QuoteType                  *string  `gorm:"column:quote_type;size:64"`
	Timezone                   *string  `gorm:"column:timezone;size:64"`
	LastPrice                  *float64 `gorm:"column:last_price"`
	OpenPrice                  *float64 `gorm:"column:open_price"`
	PreviousClose              *float64 `gorm:"column:previous_close"`
	RegularMarketPreviousClose *float64 `gorm:"column:regular_market_previous_close"`
	DayHigh                    *float64 `gorm:"column:day_high"`
	DayLow                     *float64 `gorm:"column:day_low"`
	YearHigh                   *float64 `gorm:"column:year_high"`
	YearLow                    *float64 `gorm:"column:year_low"`
	YearChange                 *float64 `gorm:"column:year_change"`
	LastVolume                 *float64 `gorm:"column:last_volume"`
	TenDayAverageVolume        *float64 `gorm:"column:ten_day_average_volume"`
	ThreeMonthAverageVolume    *float64 `gorm:"column:three_month_average_volume"`
	FiftyDayAverage            *float64 `gorm:"column:fifty_day_average"`
	TwoHundredDayAverage       *float64 `gorm:"column:two_hundred_day_average"`
	MarketCap                  *float64 `gorm:"column:market_cap"`
	Shares                     *float64 `gorm:"column:shares"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (FastInfoModel) TableName() string { return "fast_info" }

type FinancialsModel struct {
	ID                                        uint     `gorm:"column:id;primaryKey"`
	Symbol                                    string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_financials_key,priority:1"`
	Date                                      string   `gorm:"column:date;size:32;not null;uniqueIndex:uq_financials_key,priority:2"`
	PeriodType                                string   `gorm:"column:period_type;size:16;not null;uniqueIndex:uq_financials_key,priority:3"`
	TotalRevenue                              *float64 `gorm:"column:total_revenue"`
	OperatingRevenue                          *float64 `gorm:"column:operating_revenue"`
	CostOfRevenue                             *float64 `gorm:"column:cost_of_revenue"`
	GrossProfit                               *float64 `gorm:"column:gross_profit"`
	OperatingExpense                          *float64 `gorm:"column:operating_expense"`
	OperatingIncome                           *float64 `gorm:"column:operating_income"`
	TotalExpenses                             *float64 `gorm:"column:total_expenses"`
	EBIT                                      *float64 `gorm:"column:ebit"`
	EBITDA                                    *float64 `gorm:"column:ebitda"`
	NormalizedEBITDA                          *float64 `gorm:"column:normalized_ebitda"`
	PretaxIncome                              *float64 `gorm:"column:pretax_income"`
	TaxProvision                              *float64 `gorm:"column:tax_provision"`
	NetIncome                                 *float64 `gorm:"column:net_income"`
	NetIncomeCommonStockholders               *float64 `gorm:"column:net_income_common_stockholders"`
	NetIncomeContinuousOperations             *float64 `gorm:"column:net_income_continuous_operations"`
	NormalizedIncome                          *float64 `gorm:"column:normalized_income"`
	InterestIncome                            *float64 `gorm:"column:interest_income"`
	InterestExpense                           *float64 `gorm:"column:interest_expense"`
	NetInterestIncome                         *float64 `gorm:"column:net_interest_income"`
	InterestIncomeNonOperating                *float64 `gorm:"column:interest_income_non_operating"`
	InterestExpenseNonOperating               *float64 `gorm:"column:interest_expense_non_operating"`
	NetNonOperatingInterestIncomeExpense      *float64 `gorm:"column:net_non_operating_interest_income_expense"`
	OtherNonOperatingIncomeExpenses           *float64 `gorm:"column:other_non_operating_income_expenses"`
	SpecialIncomeCharges                      *float64 `gorm:"column:special_income_charges"`
	OtherSpecialCharges                       *float64 `gorm:"column:other_special_charges"`
	TotalUnusualItems                         *float64 `gorm:"column:total_unusual_items"`
	TotalUnusualItemsExcludingGoodwill        *float64 `gorm:"column:total_unusual_items_excluding_goodwill"`
	TaxEffectOfUnusualItems                   *float64 `gorm:"column:tax_effect_of_unusual_items"`
	TaxRateForCalcs                           *float64 `gorm:"column:tax_rate_for_calcs"`
	BasicAverageShares                        *float64 `gorm:"column:basic_average_shares"`
	DilutedAverageShares                      *float64 `gorm:"column:diluted_average_shares"`
	BasicEPS                                  *float64 `gorm:"column:basic_eps"`
	DilutedEPS                                *float64 `gorm:"column:diluted_eps"`
	DilutedNIAvailtoComStockholders           *float64 `gorm:"column:diluted_ni_availto_com_stockholders"`
	MinorityInterests                         *float64 `gorm:"column:minority_interests"`
	NetIncomeIncludingNoncontrollingInterests *float64 `gorm:"column:net_income_including_noncontrolling_interests"`
	OtherunderPreferredStockDividend          *float64 `gorm:"column:otherunder_preferred_stock_dividend"`
	ReconciledDepreciation                    *float64 `gorm:"column:reconciled_depreciation"`
	ReconciledCostOfRevenue                   *float64 `gorm:"column:reconciled_cost_of_revenue"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (FinancialsModel) TableName() string { return "financials" }

type GrowthEstimateModel struct {
	ID         uint     `gorm:"column:id;primaryKey"`
	Symbol     string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_growth_estimates_key,priority:1"`
	Year       *int64   `gorm:"column:year"`
	PeriodType string   `gorm:"column:period_type;size:16;not null;uniqueIndex:uq_growth_estimates_key,priority:2"`
	StockTrend *float64 `gorm:"column:stock_trend"`
	IndexTrend *float64 `gorm:"column:index_trend"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (GrowthEstimateModel) TableName() string { return "growth_estimates" }

type HistoryModel struct {
	ID     uint     `gorm:"column:id;primaryKey"`
	Symbol string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_history_key,priority:1"`
	Date   string   `gorm:"column:date;size:32;not null;uniqueIndex:uq_history_key,priority:2"`
	Open   *float64 `gorm:"column:open"`
	High   *float64 `gorm:"column:high"`
	Low    *float64 `gorm:"column:low"`
	Close  *float64 `gorm:"column:close"`
	Volume *float64 `gorm:"column:volume"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (HistoryModel) TableName() string { return "history" }

type History1mModel struct {
	ID     uint     `gorm:"column:id;primaryKey"`
	Symbol string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_history_1min_key,priority:1"`
	Date   string   `gorm:"column:date;size:32;not null;uniqueIndex:uq_history_1min_key,priority:2"`
	Open   *float64 `gorm:"column:open"`
	High   *float64 `gorm:"column:high"`
	Low    *float64 `gorm:"column:low"`
	Close  *float64 `gorm:"column:close"`
	Volume *float64 `gorm:"column:volume"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (History1mModel) TableName() string { return "history_1min" }

type IncomeStatementModel struct {
	ID                                                  uint     `gorm:"column:id;primaryKey"`
	Symbol                                              string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_income_statements_key,priority:1"`
	Date                                                string   `gorm:"column:date;size:32;not null;uniqueIndex:uq_income_statements_key,priority:2"`
	TotalRevenue                                        *float64 `gorm:"column:total_revenue"`
	OperatingRevenue                                    *float64 `gorm:"column:operating_revenue"`
	CostOfRevenue                                       *float64 `gorm:"column:cost_of_revenue"`
	ReconciledCostOfRevenue                             *float64 `gorm:"column:reconciled_cost_of_revenue"`
	GrossProfit                                         *float64 `gorm:"column:gross_profit"`
	OperatingExpense                                    *float64 `gorm:"column:operating_expense"`
	OperatingIncome                                     *float64 `gorm:"column:operating_income"`
	TotalOperatingIncomeAsReported                      *float64 `gorm:"column:total_operating_income_as_reported"`
	TotalExpenses                                       *float64 `gorm:"column:total_expenses"`
	EBIT                                                *float64 `gorm:"column:ebit"`
	EBITDA                                              *float64 `gorm:"column:ebitda"`
	NormalizedEBITDA                                    *float64 `gorm:"column:normalized_ebitda"`
	InterestIncome                                      *float64 `gorm:"column:interest_income"`
	InterestExpense                                     *float64 `gorm:"column:interest_expense"`
	NetInterestIncome                                   *float64 `gorm:"column:net_interest_income"`
	InterestIncomeNonOperating                          *float64 `gorm:"column:interest_income_non_operating"`
	InterestExpenseNonOperating                         *float64 `gorm:"column:interest_expense_non_operating"`
	NetNonOperatingInterestIncomeExpense                *float64 `gorm:"column:net_non_operating_interest_income_expense"`
	OtherNonOperatingIncomeExpenses                     *float64 `gorm:"column:other_non_operating_income_expenses"`
	SpecialIncomeCharges                                *float64 `gorm:"column:special_income_charges"`
	OtherSpecialCharges                                 *float64 `gorm:"column:other_special_charges"`
	PretaxIncome                                        *float64 `gorm:"column:pretax_income"`
	TaxProvision                                        *float64 `gorm:"column:tax_provision"`
	NetIncome                                           *float64 `gorm:"column:net_income"`
	NetIncomeCommonStockholders                         *float64 `gorm:"column:net_income_common_stockholders"`
	NetIncomeContinuousOperations                       *float64 `gorm:"column:net_income_continuous_operations"`
	NetIncomeFromContinuingOperationNetMinorityInterest *float64 `gorm:"column:net_income_from_continuing_operation_net_minority_interest"`
	NetIncomeFromContinuingAndDiscontinuedOperation     *float64 `gorm:"column:net_income_from_continuing_and_discontinued_operation"`
	NetIncomeIncludingNoncontrollingInterests           *float64 `gorm:"column:net_income_including_noncontrolling_interests"`
	NormalizedIncome                                    *float64 `gorm:"column:normalized_income"`
	TotalUnusualItems                                   *float64 `gorm:"column:total_unusual_items"`
	TotalUnusualItemsExcludingGoodwill                  *float64 `gorm:"column:total_unusual_items_excluding_goodwill"`
	TaxEffectOfUnusualItems                             *float64 `gorm:"column:tax_effect_of_unusual_items"`
	TaxRateForCalcs                                     *float64 `gorm:"column:tax_rate_for_calcs"`
	ReconciledDepreciation                              *float64 `gorm:"column:reconciled_depreciation"`
	BasicAverageShares                                  *float64 `gorm:"column:basic_average_shares"`
	DilutedAverageShares                                *float64 `gorm:"column:diluted_average_shares"`
	BasicEPS                                            *float64 `gorm:"column:basic_eps"`
	DilutedEPS                                          *float64 `gorm:"column:diluted_eps"`
	DilutedNIAvailtoComStockholders                     *float64 `gorm:"column:diluted_ni_availto_com_stockholders"`
	MinorityInterests                                   *float64 `gorm:"column:minority_interests"`
	OtherunderPreferredStockDividend                    *float64 `gorm:"column:otherunder_preferred_stock_dividend"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (IncomeStatementModel) TableName() string { return "income_statements" }

type InsiderPurchaseModel struct {
	ID                     uint     `gorm:"column:id;primaryKey"`
	Symbol                 string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_insider_purchases_key,priority:1"`
	InsiderPurchasesLast6m string   `gorm:"column:insider_purchases_last_6m;size:64;not null;uniqueIndex:uq_insider_purchases_key,priority:2"`
	Shares                 *float64 `gorm:"column:shares"`
	Trans                  *int64   `gorm:"column:trans"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (InsiderPurchaseModel) TableName() string { return "insider_purchases" }

type InstitutionalHolderModel struct {
	ID        uint     `gorm:"column:id;primaryKey"`
	Symbol    string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_institutional_holders_key,priority:1"`
	Date      string   `gorm:"column:date;size:32;not null;uniqueIndex:uq_institutional_holders_key,priority:2"`
	Holder    string   `gorm:"column:holder;size:255;not null;uniqueIndex:uq_institutional_holders_key,priority:3"`
	PctHeld   *float64 `gorm:"column:pct_held"`
	Shares    *float64 `gorm:"column:shares"`
	Value     *float64 `gorm:"column:value"`
	PctChange *float64 `gorm:"column:pct_change"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (InstitutionalHolderModel) TableName() string { return "institutional_holders" }

type MajorHoldersModel struct {
	ID                           uint     `gorm:"column:id;primaryKey"`
	Symbol                       string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_major_holders_key,priority:1"`
	InsidersPercentHeld          *float64 `gorm:"column:insiders_percent_held"`
	InstitutionsPercentHeld      *float64 `gorm:"column:institutions_percent_held"`
	InstitutionsFloatPercentHeld *float64 `gorm:"column:institutions_float_percent_held"`
	InstitutionsCount            *float64 `gorm:"column:institutions_count"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (MajorHoldersModel) TableName() string { return "major_holders" }

type MutualFundHolderModel struct {
	ID        uint     `gorm:"column:id;primaryKey"`
	Symbol    string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_mutualfund_holders_key,priority:1"`
	Date      string   `gorm:"column:date;size:32;not null;uniqueIndex:uq_mutualfund_holders_key,priority:2"`
	Holder    string   `gorm:"column:holder;size:255;not null;uniqueIndex:uq_mutualfund_holders_key,priority:3"`
	PctHeld   *float64 `gorm:"column:pct_held"`
	Shares    *float64 `gorm:"column:shares"`
	Value     *float64 `gorm:"column:value"`
	PctChange *float64 `gorm:"column:pct_change"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (MutualFundHolderModel) TableName() string { return "mutualfund_holders" }

type NewsModel struct {
	ID                string  `gorm:"column:id;primaryKey;size:50"`
	Symbol            string  `gorm:"column:symbol;size:32;not null;index"`
	ContentType       *string `gorm:"column:content_type;size:64"`
	Title             *string `gorm:"column:title;size:512"`
	Description       *string `gorm:"column:description;type:text"`
	Summary           *string `gorm:"column:summary;type:text"`
	PubDate           *string `gorm:"column:pub_date;size:64"`
	DisplayTime       *string `gorm:"column:display_time;size:64"`
	ProviderName      *string `gorm:"column:provider_name;size:64"`
	ProviderURL       *string `gorm:"column:provider_url;size:512"`
	CanonicalURL      *string `gorm:"column:canonical_url;size:512"`
	ClickThroughURL   *string `gorm:"column:click_through_url;size:512"`
	PreviewURL        *string `gorm:"column:preview_url;size:512"`
	IsHosted          *string `gorm:"column:is_hosted;size:64"`
	BypassModal       *string `gorm:"column:bypass_modal;size:64"`
	EditorsPick       *string `gorm:"column:editors_pick;size:64"`
	IsPremiumNews     *string `gorm:"column:is_premium_news;size:64"`
	IsPremiumFreeNews *string `gorm:"column:is_premium_free_news;size:64"`
	Site              *string `gorm:"column:site;size:64"`
	Region            *string `gorm:"column:region;size:64"`
	Lang              *string `gorm:"column:lang;size:64"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (NewsModel) TableName() string { return "news" }

type RecommendationModel struct {
	ID            uint   `gorm:"column:id;primaryKey"`
	Symbol        string `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_recommendations_key,priority:1"`
	Period        string `gorm:"column:period;size:16;not null;uniqueIndex:uq_recommendations_key,priority:2"`
	StrongBuy     *int64 `gorm:"column:strong_buy"`
	Buy           *int64 `gorm:"column:buy"`
	Hold          *int64 `gorm:"column:hold"`
	Sell          *int64 `gorm:"column:sell"`
	StrongSell    *int64 `gorm:"column:strong_sell"`
	TotalAnalysts *int64 `gorm:"column:total_analysts"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (RecommendationModel) TableName() string { return "recommendations" }

type RevenueEstimateModel struct {
	ID               uint     `gorm:"column:id;primaryKey"`
	Symbol           string   `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_revenue_estimates_key,priority:1"`
	PeriodType       string   `gorm:"column:period_type;size:16;not null;uniqueIndex:uq_revenue_estimates_key,priority:2"`
	Avg              *float64 `gorm:"column:avg"`
	Low              *float64 `gorm:"column:low"`
	High             *float64 `gorm:"column:high"`
	NumberOfAnalysts *int64   `gorm:"column:number_of_analysts"`
	YearAgoRevenue   *float64 `gorm:"column:year_ago_revenue"`
	Growth           *float64 `gorm:"column:growth"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (RevenueEstimateModel) TableName() string { return "revenue_estimates" }

type SustainabilityModel struct {
	ID                    uint           `gorm:"column:id;primaryKey"`
	Symbol                string         `gorm:"column:symbol;size:32;not null;uniqueIndex:uq_sustainability_key,priority:1"`
	MaxAge                *int64         `gorm:"column:max_age"`
	RatingYear            *int64         `gorm:"column:rating_year"`
	RatingMonth           *int64         `gorm:"column:rating_month"`
	TotalESG              *float64       `gorm:"column:total_esg"`
	EnvironmentScore      *float64       `gorm:"column:environment_score"`
	SocialScore           *float64       `gorm:"column:social_score"`
	GovernanceScore       *float64       `gorm:"column:governance_score"`
	HighestControversy    *float64       `gorm:"column:highest_controversy"`
	ESGPerformance        *string        `gorm:"column:esg_performance;size:64"`
	PeerCount             *int64         `gorm:"column:peer_count"`
	PeerGroup             *string        `gorm:"column:peer_group;size:64"`
	PeerESGMin            *float64       `gorm:"column:peer_esg_min"`
	PeerESGAvg            *float64       `gorm:"column:peer_esg_avg"`
	PeerESGMax            *float64       `gorm:"column:peer_esg_max"`
	PeerGovernanceMin     *float64       `gorm:"column:peer_governance_min"`
	PeerGovernanceAvg     *float64       `gorm:"column:peer_governance_avg"`
	PeerGovernanceMax     *float64       `gorm:"column:peer_governance_max"`
	PeerSocialMin         *float64       `gorm:"column:peer_social_min"`
	PeerSocialAvg         *float64       `gorm:"column:peer_social_avg"`
	PeerSocialMax         *float64       `gorm:"column:peer_social_max"`
	PeerEnvironmentMin    *float64       `gorm:"column:peer_environment_min"`
	PeerEnvironmentAvg    *float64       `gorm:"column:peer_environment_avg"`
	PeerEnvironmentMax    *float64       `gorm:"column:peer_environment_max"`
	PeerControversyMin    *float64       `gorm:"column:peer_controversy_min"`
	PeerControversyAvg    *float64       `gorm:"column:peer_controversy_avg"`
	PeerControversyMax    *float64       `gorm:"column:peer_controversy_max"`
	Percentile            *float64       `gorm:"column:percentile"`
	EnvironmentPercentile *float64       `gorm:"column:environment_percentile"`
	SocialPercentile      *float64       `gorm:"column:social_percentile"`
	GovernancePercentile  *float64       `gorm:"column:governance_percentile"`
	RelatedControversy    datatypes.JSON `gorm:"column:related_controversy"`
	Adult                 *string        `gorm:"column:adult;size:64"`
	Alcoholic             *string        `gorm:"column:alcoholic;size:64"`
	AnimalTesting         *string        `gorm:"column:animal_testing;size:64"`
	Catholic              *string        `gorm:"column:catholic;size:64"`
	ControversialWeapons  *string        `gorm:"column:controversial_weapons;size:64"`
	SmallArms             *string        `gorm:"column:small_arms;size:64"`
	FurLeather            *string        `gorm:"column:fur_leather;size:64"`
	Gambling              *string        `gorm:"column:gambling;size:64"`
	GMO                   *string        `gorm:"column:gmo;size:64"`
	MilitaryContract      *string        `gorm:"column:military_contract;size:64"`
	Nuclear               *string        `gorm:"column:nuclear;size:64"`
	Pesticides            *string        `gorm:"column:pesticides;size:64"`
	PalmOil               *string        `gorm:"column:palm_oil;size:64"`
	Coal                  *string        `gorm:"column:coal;size:64"`
	Tobacco               *string        `gorm:"column:tobacco;size:64"`

	CreatedAt string `gorm:"column:created_at;size:24;not null"`
	UpdatedAt string `gorm:"column:updated_at;size:24;not null"`
}

func (SustainabilityModel) TableName() string { return "sustainability" }

// Models returns every table model for AutoMigrate.
func Models() []any {
	return []any{
		&StockInfoModel{},
		&ActionModel{},
		&BalanceSheetModel{},
		&CalendarModel{},
		&CashFlowModel{},
		&DividendModel{},
		&EarningsDateModel{},
		&EarningsEstimateModel{},
		&EarningsHistoryModel{},
		&EpsRevisionModel{},
		&EpsTrendModel{},
		&FastInfoModel{},
		&FinancialsModel{},
		&GrowthEstimateModel{},
		&HistoryModel{},
		&History1mModel{},
		&IncomeStatementModel{},
		&InsiderPurchaseModel{},
		&InstitutionalHolderModel{},
		&MajorHoldersModel{},
		&MutualFundHolderModel{},
		&NewsModel{},
		&RecommendationModel{},
		&RevenueEstimateModel{},
		&SustainabilityModel{},
	}
}
