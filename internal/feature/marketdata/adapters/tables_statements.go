package adapters

// 財務諸表の行ラベル（Yahoo の表示名）→ カラムの対応表です。

var balanceSheetTable = &table{
	Name:         "balancesheets",
	Key:          dateIndexKey,
	PeriodScoped: true,
	Fields: []Field{
		num("total_assets", "Total Assets"),
		num("current_assets", "Current Assets"),
		num("non_current_assets", "Total Non Current Assets"),
		num("cash_and_cash_equivalents", "Cash And Cash Equivalents"),
		num("other_short_term_investments", "Other Short Term Investments"),
		num("cash_cash_equivalents_and_short_term_investments", "Cash Cash Equivalents And Short Term Investments"),
		num("accounts_receivable", "Accounts Receivable"),
		num("gross_accounts_receivable", "Gross Accounts Receivable"),
		num("inventory", "Inventory"),
		num("other_current_assets", "Other Current Assets"),
		num("net_ppe", "Net PPE"),
		num("gross_ppe", "Gross PPE"),
		num("land_and_improvements", "Land And Improvements"),
		num("buildings_and_improvements", "Buildings And Improvements"),
		num("machinery_furniture_equipment", "Machinery Furniture Equipment"),
		num("construction_in_progress", "Construction In Progress"),
		num("properties", "Properties"),
		num("goodwill_and_other_intangible_assets", "Goodwill And Other Intangible Assets"),
		num("other_intangible_assets", "Other Intangible Assets"),
		num("investment_in_financial_assets", "Investmentin Financial Assets"),
		num("available_for_sale_securities", "Available For Sale Securities"),
		num("non_current_deferred_taxes_assets", "Non Current Deferred Taxes Assets"),
		num("defined_pension_benefit", "Defined Pension Benefit"),
		num("other_non_current_assets", "Other Non Current Assets"),
		num("total_liabilities_net_minority_interest", "Total Liabilities Net Minority Interest"),
		num("current_liabilities", "Current Liabilities"),
		num("total_non_current_liabilities_net_minority_interest", "Total Non Current Liabilities Net Minority Interest"),
		num("accounts_payable", "Accounts Payable"),
		num("total_tax_payable", "Total Tax Payable"),
		num("payables", "Payables"),
		num("pension_and_other_post_retirement_benefit_plans_current", "Pensionand Other Post Retirement Benefit Plans Current"),
		num("other_current_liabilities", "Other Current Liabilities"),
		num("long_term_provisions", "Long Term Provisions"),
		num("non_current_pension_and_other_postretirement_benefit_plans", "Non Current Pension And Other Postretirement Benefit Plans"),
		num("other_non_current_liabilities", "Other Non Current Liabilities"),
		num("stockholders_equity", "Stockholders Equity"),
		num("minority_interest", "Minority Interest"),
		num("total_equity_gross_minority_interest", "Total Equity Gross Minority Interest"),
		num("total_capitalization", "Total Capitalization"),
		num("common_stock_equity", "Common Stock Equity"),
		num("net_tangible_assets", "Net Tangible Assets"),
		num("working_capital", "Working Capital"),
		num("invested_capital", "Invested Capital"),
		num("tangible_book_value", "Tangible Book Value"),
		num("share_issued", "Share Issued"),
		num("ordinary_shares_number", "Ordinary Shares Number"),
		num("treasury_shares_number", "Treasury Shares Number"),
		num("common_stock", "Common Stock"),
		num("capital_stock", "Capital Stock"),
		num("additional_paid_in_capital", "Additional Paid In Capital"),
		num("retained_earnings", "Retained Earnings"),
		num("treasury_stock", "Treasury Stock"),
	},
}

var cashFlowTable = &table{
	Name:         "cash_flows",
	Key:          dateIndexKey,
	PeriodScoped: true,
	Fields: []Field{
		num("operating_cash_flow", "Operating Cash Flow"),
		num("investing_cash_flow", "Investing Cash Flow"),
		num("financing_cash_flow", "Financing Cash Flow"),
		num("free_cash_flow", "Free Cash Flow"),
		num("beginning_cash_position", "Beginning Cash Position"),
		num("end_cash_position", "End Cash Position"),
		num("changes_in_cash", "Changes In Cash"),
		num("net_income_from_continuing_operations", "Net Income From Continuing Operations"),
		num("depreciation_and_amortization", "Depreciation And Amortization"),
		num("depreciation", "Depreciation"),
		num("net_foreign_currency_exchange_gain_loss", "Net Foreign Currency Exchange Gain Loss"),
		num("gain_loss_on_investment_securities", "Gain Loss On Investment Securities"),
		num("other_non_cash_items", "Other Non Cash Items"),
		num("change_in_working_capital", "Change In Working Capital"),
		num("change_in_receivables", "Change In Receivables"),
		num("change_in_inventory", "Change In Inventory"),
		num("change_in_payable", "Change In Payable"),
		num("change_in_other_current_assets", "Change In Other Current Assets"),
		num("change_in_other_current_liabilities", "Change In Other Current Liabilities"),
		num("interest_paid_cfo", "Interest Paid Cfo"),
		num("interest_received_cfo", "Interest Received Cfo"),
		num("taxes_refund_paid", "Taxes Refund Paid"),
		num("capital_expenditure", "Capital Expenditure"),
		num("purchase_of_ppe", "Purchase Of Ppe"),
		num("sale_of_ppe", "Sale Of Ppe"),
		num("net_ppe_purchase_and_sale", "Net Ppe Purchase And Sale"),
		num("capital_expenditure_reported", "Capital Expenditure Reported"),
		num("purchase_of_investment", "Purchase Of Investment"),
		num("sale_of_investment", "Sale Of Investment"),
		num("net_investment_purchase_and_sale", "Net Investment Purchase And Sale"),
		num("net_other_investing_changes", "Net Other Investing Changes"),
		num("cash_dividends_paid", "Cash Dividends Paid"),
		num("common_stock_dividend_paid", "Common Stock Dividend Paid"),
		num("net_common_stock_issuance", "Net Common Stock Issuance"),
		num("common_stock_payments", "Common Stock Payments"),
		num("repurchase_of_capital_stock", "Repurchase Of Capital Stock"),
		num("net_other_financing_charges", "Net Other Financing Charges"),
		num("effect_of_exchange_rate_changes", "Effect Of Exchange Rate Changes"),
		num("other_cash_adjustment_outside_change_in_cash", "Other Cash Adjustment Outside Changein Cash"),
	},
}

// 損益計算書と financials で共通の項目
var incomeFields = []Field{
	num("total_revenue", "Total Revenue", "Operating Revenue"),
	num("operating_revenue", "Operating Revenue", "Total Revenue"),
	num("gross_profit", "Gross Profit"),
	num("operating_expense", "Operating Expense"),
	num("total_expenses", "Total Expenses"),
	num("ebit", "EBIT"),
	num("ebitda", "EBITDA"),
	num("normalized_ebitda", "Normalized EBITDA"),
	num("interest_income", "Interest Income"),
	num("interest_expense", "Interest Expense"),
	num("net_interest_income", "Net Interest Income"),
	num("interest_income_non_operating", "Interest Income Non Operating"),
	num("interest_expense_non_operating", "Interest Expense Non Operating"),
	num("net_non_operating_interest_income_expense", "Net Non Operating Interest Income Expense"),
	num("other_non_operating_income_expenses", "Other Non Operating Income Expenses"),
	num("special_income_charges", "Special Income Charges"),
	num("other_special_charges", "Other Special Charges"),
	num("pretax_income", "Pretax Income"),
	num("tax_provision", "Tax Provision"),
	num("net_income", "Net Income"),
	num("net_income_common_stockholders", "Net Income Common Stockholders"),
	num("net_income_continuous_operations", "Net Income Continuous Operations"),
	num("net_income_including_noncontrolling_interests", "Net Income Including Noncontrolling Interests"),
	num("normalized_income", "Normalized Income"),
	num("total_unusual_items", "Total Unusual Items"),
	num("total_unusual_items_excluding_goodwill", "Total Unusual Items Excluding Goodwill"),
	num("tax_effect_of_unusual_items", "Tax Effect Of Unusual Items"),
	num("tax_rate_for_calcs", "Tax Rate For Calcs"),
	num("reconciled_depreciation", "Reconciled Depreciation"),
	num("reconciled_cost_of_revenue", "Reconciled Cost Of Revenue"),
	num("basic_average_shares", "Basic Average Shares"),
	num("diluted_average_shares", "Diluted Average Shares"),
	num("basic_eps", "Basic EPS"),
	num("diluted_eps", "Diluted EPS"),
	num("diluted_ni_availto_com_stockholders", "Diluted NI Availto Com Stockholders"),
	num("minority_interests", "Minority Interests"),
	num("otherunder_preferred_stock_dividend", "Otherunder Preferred Stock Dividend"),
}

var incomeStmtTable = &table{
	Name: "income_statements",
	Key:  dateIndexKey,
	Fields: withFields(incomeFields,
		num("cost_of_revenue", "Cost Of Revenue"),
		num("operating_income", "Operating Income"),
		num("total_operating_income_as_reported", "Total Operating Income As Reported"),
		num("net_income_from_continuing_operation_net_minority_interest", "Net Income From Continuing Operation Net Minority Interest"),
		num("net_income_from_continuing_and_discontinued_operation", "Net Income From Continuing And Discontinued Operation"),
	),
}

// financials は年次のみ取得するため period_type を固定します。
var financialsTable = &table{
	Name:         "financials",
	Key:          dateIndexKey,
	PeriodScoped: true,
	FixedPeriod:  "annual",
	Fields: withFields(incomeFields,
		num("cost_of_revenue", "Cost Of Revenue", "Reconciled Cost Of Revenue"),
		num("operating_income", "Operating Income", "Total Operating Income As Reported"),
	),
}

func withFields(base []Field, extra ...Field) []Field {
	out := make([]Field, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
