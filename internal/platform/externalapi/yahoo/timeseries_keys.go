package yahoo

// fundamentals-timeseries で要求する型名（接頭辞 annual/quarterly を除いた部分）です。
// 応答のキーは camelToTitle で表示名に変換されます。

var balanceSheetKeys = []string{
	"TotalAssets",
	"CurrentAssets",
	"TotalNonCurrentAssets",
	"CashAndCashEquivalents",
	"OtherShortTermInvestments",
	"CashCashEquivalentsAndShortTermInvestments",
	"AccountsReceivable",
	"GrossAccountsReceivable",
	"Inventory",
	"OtherCurrentAssets",
	"NetPPE",
	"GrossPPE",
	"LandAndImprovements",
	"BuildingsAndImprovements",
	"MachineryFurnitureEquipment",
	"ConstructionInProgress",
	"Properties",
	"GoodwillAndOtherIntangibleAssets",
	"OtherIntangibleAssets",
	"InvestmentinFinancialAssets",
	"AvailableForSaleSecurities",
	"NonCurrentDeferredTaxesAssets",
	"DefinedPensionBenefit",
	"OtherNonCurrentAssets",
	"TotalLiabilitiesNetMinorityInterest",
	"CurrentLiabilities",
	"TotalNonCurrentLiabilitiesNetMinorityInterest",
	"AccountsPayable",
	"TotalTaxPayable",
	"Payables",
	"PensionandOtherPostRetirementBenefitPlansCurrent",
	"OtherCurrentLiabilities",
	"LongTermProvisions",
	"NonCurrentPensionAndOtherPostretirementBenefitPlans",
	"OtherNonCurrentLiabilities",
	"StockholdersEquity",
	"MinorityInterest",
	"TotalEquityGrossMinorityInterest",
	"TotalCapitalization",
	"CommonStockEquity",
	"NetTangibleAssets",
	"WorkingCapital",
	"InvestedCapital",
	"TangibleBookValue",
	"ShareIssued",
	"OrdinarySharesNumber",
	"TreasurySharesNumber",
	"CommonStock",
	"CapitalStock",
	"AdditionalPaidInCapital",
	"RetainedEarnings",
	"TreasuryStock",
}

var cashFlowKeys = []string{
	"OperatingCashFlow",
	"InvestingCashFlow",
	"FinancingCashFlow",
	"FreeCashFlow",
	"BeginningCashPosition",
	"EndCashPosition",
	"ChangesInCash",
	"NetIncomeFromContinuingOperations",
	"DepreciationAndAmortization",
	"Depreciation",
	"NetForeignCurrencyExchangeGainLoss",
	"GainLossOnInvestmentSecurities",
	"OtherNonCashItems",
	"ChangeInWorkingCapital",
	"ChangeInReceivables",
	"ChangeInInventory",
	"ChangeInPayable",
	"ChangeInOtherCurrentAssets",
	"ChangeInOtherCurrentLiabilities",
	"InterestPaidCfo",
	"InterestReceivedCfo",
	"TaxesRefundPaid",
	"CapitalExpenditure",
	"PurchaseOfPpe",
	"SaleOfPpe",
	"NetPpePurchaseAndSale",
	"CapitalExpenditureReported",
	"PurchaseOfInvestment",
	"SaleOfInvestment",
	"NetInvestmentPurchaseAndSale",
	"NetOtherInvestingChanges",
	"CashDividendsPaid",
	"CommonStockDividendPaid",
	"NetCommonStockIssuance",
	"CommonStockPayments",
	"RepurchaseOfCapitalStock",
	"NetOtherFinancingCharges",
	"EffectOfExchangeRateChanges",
	"OtherCashAdjustmentOutsideChangeinCash",
}

var incomeKeys = []string{
	"TotalRevenue",
	"OperatingRevenue",
	"GrossProfit",
	"OperatingExpense",
	"TotalExpenses",
	"EBIT",
	"EBITDA",
	"NormalizedEBITDA",
	"InterestIncome",
	"InterestExpense",
	"NetInterestIncome",
	"InterestIncomeNonOperating",
	"InterestExpenseNonOperating",
	"NetNonOperatingInterestIncomeExpense",
	"OtherNonOperatingIncomeExpenses",
	"SpecialIncomeCharges",
	"OtherSpecialCharges",
	"PretaxIncome",
	"TaxProvision",
	"NetIncome",
	"NetIncomeCommonStockholders",
	"NetIncomeContinuousOperations",
	"NetIncomeIncludingNoncontrollingInterests",
	"NormalizedIncome",
	"TotalUnusualItems",
	"TotalUnusualItemsExcludingGoodwill",
	"TaxEffectOfUnusualItems",
	"TaxRateForCalcs",
	"ReconciledDepreciation",
	"ReconciledCostOfRevenue",
	"BasicAverageShares",
	"DilutedAverageShares",
	"BasicEPS",
	"DilutedEPS",
	"DilutedNIAvailtoComStockholders",
	"MinorityInterests",
	"OtherunderPreferredStockDividend",
	"CostOfRevenue",
	"OperatingIncome",
	"TotalOperatingIncomeAsReported",
	"NetIncomeFromContinuingOperationNetMinorityInterest",
	"NetIncomeFromContinuingAndDiscontinuedOperation",
}
