package entity

type PeriodData struct {
	BaseData     `bson:",inline"`
	BalanceSheet *BalanceSheet `json:"balance_sheet,omitempty" bson:"balance_sheet,omitempty"`
}

type PeriodEntity = Document[PeriodData]

type BalanceSheet struct {
	CalledUpShareCapitalNotPaid *int64                    `json:"called_up_share_capital_not_paid,omitempty" bson:"called_up_share_capital_not_paid,omitempty"`
	FixedAssets                 *FixedAssets              `json:"fixed_assets,omitempty" bson:"fixed_assets,omitempty"`
	CurrentAssets               *CurrentAssets            `json:"current_assets,omitempty" bson:"current_assets,omitempty"`
	PrepaymentsAndAccruedIncome *int64                    `json:"prepayments_and_accrued_income,omitempty" bson:"prepayments_and_accrued_income,omitempty"`
	OtherLiabilitiesOrAssets    *OtherLiabilitiesOrAssets `json:"other_liabilities_or_assets,omitempty" bson:"other_liabilities_or_assets,omitempty"`
	CapitalAndReserves          *CapitalAndReserves       `json:"capital_and_reserves,omitempty" bson:"capital_and_reserves,omitempty"`
}

type FixedAssets struct {
	Tangible    *int64 `json:"tangible,omitempty" bson:"tangible,omitempty"`
	Intangible  *int64 `json:"intangible,omitempty" bson:"intangible,omitempty"`
	Investments *int64 `json:"investments,omitempty" bson:"investments,omitempty"`
	Total       *int64 `json:"total,omitempty" bson:"total,omitempty"`
}

type CurrentAssets struct {
	Stocks              *int64 `json:"stocks,omitempty" bson:"stocks,omitempty"`
	Debtors             *int64 `json:"debtors,omitempty" bson:"debtors,omitempty"`
	CashAtBankAndInHand *int64 `json:"cash_at_bank_and_in_hand,omitempty" bson:"cash_at_bank_and_in_hand,omitempty"`
	Investments         *int64 `json:"investments,omitempty" bson:"investments,omitempty"`
	Total               *int64 `json:"total,omitempty" bson:"total,omitempty"`
}

type OtherLiabilitiesOrAssets struct {
	CreditorsDueWithinOneYear         *int64 `json:"creditors_due_within_one_year,omitempty" bson:"creditors_due_within_one_year,omitempty"`
	NetCurrentAssets                  *int64 `json:"net_current_assets,omitempty" bson:"net_current_assets,omitempty"`
	TotalAssetsLessCurrentLiabilities *int64 `json:"total_assets_less_current_liabilities,omitempty" bson:"total_assets_less_current_liabilities,omitempty"`
	CreditorsDueAfterOneYear          *int64 `json:"creditors_due_after_one_year,omitempty" bson:"creditors_due_after_one_year,omitempty"`
	ProvisionForLiabilities           *int64 `json:"provision_for_liabilities,omitempty" bson:"provision_for_liabilities,omitempty"`
	AccrualsAndDeferredIncome         *int64 `json:"accruals_and_deferred_income,omitempty" bson:"accruals_and_deferred_income,omitempty"`
	TotalNetAssets                    *int64 `json:"total_net_assets,omitempty" bson:"total_net_assets,omitempty"`
}

type CapitalAndReserves struct {
	CalledUpShareCapital   *int64 `json:"called_up_share_capital,omitempty" bson:"called_up_share_capital,omitempty"`
	SharePremiumAccount    *int64 `json:"share_premium_account,omitempty" bson:"share_premium_account,omitempty"`
	OtherReserves          *int64 `json:"other_reserves,omitempty" bson:"other_reserves,omitempty"`
	ProfitAndLoss          *int64 `json:"profit_and_loss,omitempty" bson:"profit_and_loss,omitempty"`
	TotalShareholdersFunds *int64 `json:"total_shareholders_funds,omitempty" bson:"total_shareholders_funds,omitempty"`
}
