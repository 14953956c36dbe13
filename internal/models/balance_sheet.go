package models

import "strings"

// PeriodType distinguishes the current and previous accounting periods
type PeriodType string

const (
	PeriodCurrent  PeriodType = "current_period"
	PeriodPrevious PeriodType = "previous_period"
)

// LinkName is the key under which the period appears in the small full links
func (p PeriodType) LinkName() string { return string(p) }

// URISegment is the path of the period relative to the small full resource
func (p PeriodType) URISegment() string { return strings.ReplaceAll(string(p), "_", "-") }

// Kind is the resource kind reported on the period
func (p PeriodType) Kind() string { return "small-full-accounts#" + p.URISegment() }

// Collection is the document store collection holding periods of this type
func (p PeriodType) Collection() string { return "small_full_" + string(p) }

// JSONPath is the root JSON path used when reporting validation errors
func (p PeriodType) JSONPath() string { return "$." + string(p) }

// Period is a balance sheet for one accounting period
type Period struct {
	RestObject
	BalanceSheet *BalanceSheet `json:"balance_sheet" binding:"required"`
}

// BalanceSheet is a small full balance sheet
type BalanceSheet struct {
	CalledUpShareCapitalNotPaid *int64                    `json:"called_up_share_capital_not_paid,omitempty" binding:"omitempty,accounts_value"`
	FixedAssets                 *FixedAssets              `json:"fixed_assets,omitempty"`
	CurrentAssets               *CurrentAssets            `json:"current_assets,omitempty"`
	PrepaymentsAndAccruedIncome *int64                    `json:"prepayments_and_accrued_income,omitempty" binding:"omitempty,accounts_value"`
	OtherLiabilitiesOrAssets    *OtherLiabilitiesOrAssets `json:"other_liabilities_or_assets,omitempty"`
	CapitalAndReserves          *CapitalAndReserves       `json:"capital_and_reserves,omitempty"`
}

type FixedAssets struct {
	Tangible    *int64 `json:"tangible,omitempty" binding:"omitempty,accounts_value"`
	Intangible  *int64 `json:"intangible,omitempty" binding:"omitempty,accounts_value"`
	Investments *int64 `json:"investments,omitempty" binding:"omitempty,accounts_value"`
	Total       *int64 `json:"total,omitempty" binding:"omitempty,accounts_value"`
}

type CurrentAssets struct {
	Stocks              *int64 `json:"stocks,omitempty" binding:"omitempty,accounts_value"`
	Debtors             *int64 `json:"debtors,omitempty" binding:"omitempty,accounts_value"`
	CashAtBankAndInHand *int64 `json:"cash_at_bank_and_in_hand,omitempty" binding:"omitempty,accounts_value"`
	Investments         *int64 `json:"investments,omitempty" binding:"omitempty,accounts_value"`
	Total               *int64 `json:"total,omitempty" binding:"omitempty,accounts_value"`
}

type OtherLiabilitiesOrAssets struct {
	CreditorsDueWithinOneYear         *int64 `json:"creditors_due_within_one_year,omitempty" binding:"omitempty,accounts_value"`
	NetCurrentAssets                  *int64 `json:"net_current_assets,omitempty" binding:"omitempty,accounts_signed_value"`
	TotalAssetsLessCurrentLiabilities *int64 `json:"total_assets_less_current_liabilities,omitempty" binding:"omitempty,accounts_signed_value"`
	CreditorsDueAfterOneYear          *int64 `json:"creditors_due_after_one_year,omitempty" binding:"omitempty,accounts_value"`
	ProvisionForLiabilities           *int64 `json:"provision_for_liabilities,omitempty" binding:"omitempty,accounts_value"`
	AccrualsAndDeferredIncome         *int64 `json:"accruals_and_deferred_income,omitempty" binding:"omitempty,accounts_value"`
	TotalNetAssets                    *int64 `json:"total_net_assets,omitempty" binding:"omitempty,accounts_signed_value"`
}

type CapitalAndReserves struct {
	CalledUpShareCapital   *int64 `json:"called_up_share_capital,omitempty" binding:"omitempty,accounts_value"`
	SharePremiumAccount    *int64 `json:"share_premium_account,omitempty" binding:"omitempty,accounts_value"`
	OtherReserves          *int64 `json:"other_reserves,omitempty" binding:"omitempty,accounts_signed_value"`
	ProfitAndLoss          *int64 `json:"profit_and_loss,omitempty" binding:"omitempty,accounts_signed_value"`
	TotalShareholdersFunds *int64 `json:"total_shareholders_funds,omitempty" binding:"omitempty,accounts_signed_value"`
}
