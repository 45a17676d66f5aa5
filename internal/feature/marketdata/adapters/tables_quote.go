package adapters

var stockInfoTable = &table{
	Name: "stock_info",
	Fields: []Field{
		text("long_name", "longName"),
		text("short_name", "shortName"),
		text("address1", "address1"),
		text("address2", "address2"),
		text("city", "city"),
		text("zip_code", "zip"),
		text("country", "country"),
		text("phone", "phone"),
		text("website", "website"),
		text("ir_website", "irWebsite"),
		text("industry", "industry"),
		text("industry_key", "industryKey"),
		text("industry_disp", "industryDisp"),
		text("sector", "sector"),
		text("sector_key", "sectorKey"),
		text("sector_disp", "sectorDisp"),
		text("long_business_summary", "longBusinessSummary"),
		integer("full_time_employees", "fullTimeEmployees"),

		text("currency", "currency"),
		num("current_price", "currentPrice"),
		num("previous_close", "previousClose"),
		num("open_price", "open"),
		num("day_low", "dayLow"),
		num("day_high", "dayHigh"),
		num("regular_market_previous_close", "regularMarketPreviousClose"),
		num("regular_market_open", "regularMarketOpen"),
		num("regular_market_day_low", "regularMarketDayLow"),
		num("regular_market_day_high", "regularMarketDayHigh"),
		num("regular_market_price", "regularMarketPrice"),
		num("regular_market_change", "regularMarketChange"),
		num("regular_market_change_percent", "regularMarketChangePercent"),
		num("fifty_two_week_low", "fiftyTwoWeekLow"),
		num("fifty_two_week_high", "fiftyTwoWeekHigh"),
		num("fifty_two_week_change", "52WeekChange"),
		num("fifty_two_week_change_percent", "fiftyTwoWeekChangePercent"),
		num("all_time_high", "allTimeHigh"),
		num("all_time_low", "allTimeLow"),
		num("fifty_day_average", "fiftyDayAverage"),
		num("fifty_day_average_change", "fiftyDayAverageChange"),
		num("fifty_day_average_change_percent", "fiftyDayAverageChangePercent"),
		num("two_hundred_day_average", "twoHundredDayAverage"),
		num("two_hundred_day_average_change", "twoHundredDayAverageChange"),
		num("two_hundred_day_average_change_percent", "twoHundredDayAverageChangePercent"),

		num("volume", "volume"),
		num("regular_market_volume", "regularMarketVolume"),
		num("average_volume", "averageVolume"),
		num("average_volume_10days", "averageVolume10days"),
		num("average_daily_volume_10day", "averageDailyVolume10Day"),
		num("average_daily_volume_3month", "averageDailyVolume3Month"),
		num("bid", "bid"),
		num("ask", "ask"),
		num("bid_size", "bidSize"),
		num("ask_size", "askSize"),

		num("dividend_rate", "dividendRate"),
		num("dividend_yield", "dividendYield"),
		unixTime("ex_dividend_date", "exDividendDate"),
		num("payout_ratio", "payoutRatio"),
		num("five_year_avg_dividend_yield", "fiveYearAvgDividendYield"),
		num("trailing_annual_dividend_rate", "trailingAnnualDividendRate"),
		num("trailing_annual_dividend_yield", "trailingAnnualDividendYield"),
		num("last_dividend_value", "lastDividendValue"),
		unixTime("last_dividend_date", "lastDividendDate"),
		text("last_split_factor", "lastSplitFactor"),
		unixTime("last_split_date", "lastSplitDate"),

		num("market_cap", "marketCap"),
		num("enterprise_value", "enterpriseValue"),
		num("shares_outstanding", "sharesOutstanding"),
		num("float_shares", "floatShares"),
		num("implied_shares_outstanding", "impliedSharesOutstanding"),
		num("held_percent_insiders", "heldPercentInsiders"),
		num("held_percent_institutions", "heldPercentInstitutions"),
		num("beta", "beta"),
		num("trailing_pe", "trailingPE"),
		num("forward_pe", "forwardPE"),
		num("price_to_book", "priceToBook"),
		num("price_to_sales_trailing_12months", "priceToSalesTrailing12Months"),
		num("enterprise_to_revenue", "enterpriseToRevenue"),
		num("enterprise_to_ebitda", "enterpriseToEbitda"),
		num("trailing_peg_ratio", "trailingPegRatio"),

		num("total_cash", "totalCash"),
		num("total_cash_per_share", "totalCashPerShare"),
		num("total_debt", "totalDebt"),
		num("total_revenue", "totalRevenue"),
		num("revenue_per_share", "revenuePerShare"),
		num("ebitda", "ebitda"),
		num("gross_profits", "grossProfits"),
		num("net_income_to_common", "netIncomeToCommon"),
		num("book_value", "bookValue"),
		num("quick_ratio", "quickRatio"),
		num("current_ratio", "currentRatio"),
		num("return_on_assets", "returnOnAssets"),
		num("return_on_equity", "returnOnEquity"),
		num("profit_margins", "profitMargins"),
		num("gross_margins", "grossMargins"),
		num("ebitda_margins", "ebitdaMargins"),
		num("operating_margins", "operatingMargins"),
		num("earnings_growth", "earningsGrowth"),
		num("revenue_growth", "revenueGrowth"),
		num("earnings_quarterly_growth", "earningsQuarterlyGrowth"),
		num("trailing_eps", "trailingEps"),
		num("forward_eps", "forwardEps"),
		num("eps_trailing_twelve_months", "epsTrailingTwelveMonths"),
		num("eps_forward", "epsForward"),

		num("target_high_price", "targetHighPrice"),
		num("target_low_price", "targetLowPrice"),
		num("target_mean_price", "targetMeanPrice"),
		num("target_median_price", "targetMedianPrice"),
		num("recommendation_mean", "recommendationMean"),
		text("recommendation_key", "recommendationKey"),
		integer("number_of_analyst_opinions", "numberOfAnalystOpinions"),
		text("average_analyst_rating", "averageAnalystRating"),

		text("exchange", "exchange"),
		text("full_exchange_name", "fullExchangeName"),
		text("market", "market"),
		text("market_state", "marketState"),
		text("quote_type", "quoteType"),
		flag("tradeable", "tradeable"),
		text("exchange_timezone_name", "exchangeTimezoneName"),
		text("exchange_timezone_short_name", "exchangeTimezoneShortName"),
		num("gmt_off_set_milliseconds", "gmtOffSetMilliseconds"),
		unixTime("regular_market_time", "regularMarketTime"),

		integer("audit_risk", "auditRisk"),
		integer("board_risk", "boardRisk"),
		integer("compensation_risk", "compensationRisk"),
		integer("shareholder_rights_risk", "shareHolderRightsRisk"),
		integer("overall_risk", "overallRisk"),

		unixTime("last_fiscal_year_end", "lastFiscalYearEnd"),
		unixTime("next_fiscal_year_end", "nextFiscalYearEnd"),
		unixTime("most_recent_quarter", "mostRecentQuarter"),
		unixTime("earnings_timestamp", "earningsTimestamp"),
		unixTime("earnings_timestamp_start", "earningsTimestampStart"),
		unixTime("earnings_timestamp_end", "earningsTimestampEnd"),
		flag("is_earnings_date_estimate", "isEarningsDateEstimate"),
	},
}

var fastInfoTable = &table{
	Name: "fast_info",
	Fields: []Field{
		text("currency", "currency"),
		text("exchange", "exchange"),
		text("quote_type", "quoteType"),
		text("timezone", "timezone"),
		num("last_price", "lastPrice"),
		num("open_price", "open"),
		num("previous_close", "previousClose"),
		num("regular_market_previous_close", "regularMarketPreviousClose"),
		num("day_high", "dayHigh"),
		num("day_low", "dayLow"),
		num("year_high", "yearHigh"),
		num("year_low", "yearLow"),
		num("year_change", "yearChange"),
		num("last_volume", "lastVolume"),
		num("ten_day_average_volume", "tenDayAverageVolume"),
		num("three_month_average_volume", "threeMonthAverageVolume"),
		num("fifty_day_average", "fiftyDayAverage"),
		num("two_hundred_day_average", "twoHundredDayAverage"),
		num("market_cap", "marketCap"),
		num("shares", "shares"),
	},
}

// sustainabilityTable は quoteSummary の esgScores をそのまま受け取ります。
var sustainabilityTable = &table{
	Name: "sustainability",
	Fields: []Field{
		integer("max_age", "maxAge"),
		integer("rating_year", "ratingYear"),
		integer("rating_month", "ratingMonth"),
		num("total_esg", "totalEsg"),
		num("environment_score", "environmentScore"),
		num("social_score", "socialScore"),
		num("governance_score", "governanceScore"),
		num("highest_controversy", "highestControversy"),
		text("esg_performance", "esgPerformance"),
		integer("peer_count", "peerCount"),
		text("peer_group", "peerGroup"),

		num("peer_esg_min", "peerEsgScorePerformance.min"),
		num("peer_esg_avg", "peerEsgScorePerformance.avg"),
		num("peer_esg_max", "peerEsgScorePerformance.max"),
		num("peer_governance_min", "peerGovernancePerformance.min"),
		num("peer_governance_avg", "peerGovernancePerformance.avg"),
		num("peer_governance_max", "peerGovernancePerformance.max"),
		num("peer_social_min", "peerSocialPerformance.min"),
		num("peer_social_avg", "peerSocialPerformance.avg"),
		num("peer_social_max", "peerSocialPerformance.max"),
		num("peer_environment_min", "peerEnvironmentPerformance.min"),
		num("peer_environment_avg", "peerEnvironmentPerformance.avg"),
		num("peer_environment_max", "peerEnvironmentPerformance.max"),
		num("peer_controversy_min", "peerHighestControversyPerformance.min"),
		num("peer_controversy_avg", "peerHighestControversyPerformance.avg"),
		num("peer_controversy_max", "peerHighestControversyPerformance.max"),

		num("percentile", "percentile"),
		num("environment_percentile", "environmentPercentile"),
		num("social_percentile", "socialPercentile"),
		num("governance_percentile", "governancePercentile"),
		jsonb("related_controversy", "relatedControversy"),

		flag("adult", "adult"),
		flag("alcoholic", "alcoholic"),
		flag("animal_testing", "animalTesting"),
		flag("catholic", "catholic"),
		flag("controversial_weapons", "controversialWeapons"),
		flag("small_arms", "smallArms"),
		flag("fur_leather", "furLeather"),
		flag("gambling", "gambling"),
		flag("gmo", "gmo"),
		flag("military_contract", "militaryContract"),
		flag("nuclear", "nuclear"),
		flag("pesticides", "pesticides"),
		flag("palm_oil", "palmOil"),
		flag("coal", "coal"),
		flag("tobacco", "tobacco"),
	},
}
