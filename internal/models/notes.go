package models

// Debtors note
type Debtors struct {
	RestObject
	CurrentPeriod  *DebtorsPeriod `json:"current_period,omitempty"`
	PreviousPeriod *DebtorsPeriod `json:"previous_period,omitempty"`
}

type DebtorsPeriod struct {
	TradeDebtors                *int64 `json:"trade_debtors,omitempty" binding:"omitempty,accounts_value"`
	PrepaymentsAndAccruedIncome *int64 `json:"prepayments_and_accrued_income,omitempty" binding:"omitempty,accounts_value"`
	OtherDebtors                *int64 `json:"other_debtors,omitempty" binding:"omitempty,accounts_value"`
	GreaterThanOneYear          *int64 `json:"greater_than_one_year,omitempty" binding:"omitempty,accounts_value"`
	Total                       *int64 `json:"total,omitempty" binding:"omitempty,accounts_value"`
	Details                     string `json:"details,omitempty" binding:"omitempty,max=20000"`
}

func (p *DebtorsPeriod) IsEmpty() bool {
	return p == nil || (p.TradeDebtors == nil && p.PrepaymentsAndAccruedIncome == nil &&
		p.OtherDebtors == nil && p.GreaterThanOneYear == nil && p.Total == nil && p.Details == "")
}

// Stocks note
type Stocks struct {
	RestObject
	CurrentPeriod  *StocksPeriod `json:"current_period,omitempty"`
	PreviousPeriod *StocksPeriod `json:"previous_period,omitempty"`
}

type StocksPeriod struct {
	Stocks            *int64 `json:"stocks,omitempty" binding:"omitempty,accounts_value"`
	PaymentsOnAccount *int64 `json:"payments_on_account,omitempty" binding:"omitempty,accounts_value"`
	Total             *int64 `json:"total,omitempty" binding:"omitempty,accounts_value"`
}

func (p *StocksPeriod) IsEmpty() bool {
	return p == nil || (p.Stocks == nil && p.PaymentsOnAccount == nil && p.Total == nil)
}

// Employees note
type Employees struct {
	RestObject
	CurrentPeriod  *EmployeesPeriod `json:"current_period,omitempty"`
	PreviousPeriod *EmployeesPeriod `json:"previous_period,omitempty"`
}

type EmployeesPeriod struct {
	AverageNumberOfEmployees *int64 `json:"average_number_of_employees,omitempty" binding:"omitempty,employee_count"`
	Details                  string `json:"details,omitempty" binding:"omitempty,max=20000"`
}

func (p *EmployeesPeriod) IsEmpty() bool {
	return p == nil || (p.AverageNumberOfEmployees == nil && p.Details == "")
}

// CreditorsWithinOneYear note
type CreditorsWithinOneYear struct {
	RestObject
	CurrentPeriod  *CreditorsWithinOneYearPeriod `json:"current_period,omitempty"`
	PreviousPeriod *CreditorsWithinOneYearPeriod `json:"previous_period,omitempty"`
}

type CreditorsWithinOneYearPeriod struct {
	BankLoansAndOverdrafts                *int64 `json:"bank_loans_and_overdrafts,omitempty" binding:"omitempty,accounts_value"`
	FinanceLeasesAndHirePurchaseContracts *int64 `json:"finance_leases_and_hire_purchase_contracts,omitempty" binding:"omitempty,accounts_value"`
	TradeCreditors                        *int64 `json:"trade_creditors,omitempty" binding:"omitempty,accounts_value"`
	TaxationAndSocialSecurity             *int64 `json:"taxation_and_social_security,omitempty" binding:"omitempty,accounts_value"`
	AccrualsAndDeferredIncome             *int64 `json:"accruals_and_deferred_income,omitempty" binding:"omitempty,accounts_value"`
	OtherCreditors                        *int64 `json:"other_creditors,omitempty" binding:"omitempty,accounts_value"`
	Total                                 *int64 `json:"total,omitempty" binding:"omitempty,accounts_value"`
	Details                               string `json:"details,omitempty" binding:"omitempty,max=20000"`
}

func (p *CreditorsWithinOneYearPeriod) IsEmpty() bool {
	return p == nil || (p.BankLoansAndOverdrafts == nil && p.FinanceLeasesAndHirePurchaseContracts == nil &&
		p.TradeCreditors == nil && p.TaxationAndSocialSecurity == nil && p.AccrualsAndDeferredIncome == nil &&
		p.OtherCreditors == nil && p.Total == nil && p.Details == "")
}

// CreditorsAfterOneYear note
type CreditorsAfterOneYear struct {
	RestObject
	CurrentPeriod  *CreditorsAfterOneYearPeriod `json:"current_period,omitempty"`
	PreviousPeriod *CreditorsAfterOneYearPeriod `json:"previous_period,omitempty"`
}

type CreditorsAfterOneYearPeriod struct {
	BankLoansAndOverdrafts                *int64 `json:"bank_loans_and_overdrafts,omitempty" binding:"omitempty,accounts_value"`
	FinanceLeasesAndHirePurchaseContracts *int64 `json:"finance_leases_and_hire_purchase_contracts,omitempty" binding:"omitempty,accounts_value"`
	OtherCreditors                        *int64 `json:"other_creditors,omitempty" binding:"omitempty,accounts_value"`
	Total                                 *int64 `json:"total,omitempty" binding:"omitempty,accounts_value"`
	Details                               string `json:"details,omitempty" binding:"omitempty,max=20000"`
}

func (p *CreditorsAfterOneYearPeriod) IsEmpty() bool {
	return p == nil || (p.BankLoansAndOverdrafts == nil && p.FinanceLeasesAndHirePurchaseContracts == nil &&
		p.OtherCreditors == nil && p.Total == nil && p.Details == "")
}

// AssetCost is the cost movement of a class of fixed assets
type AssetCost struct {
	AtPeriodStart *int64 `json:"at_period_start,omitempty" binding:"omitempty,accounts_value"`
	Additions     *int64 `json:"additions,omitempty" binding:"omitempty,accounts_value"`
	Disposals     *int64 `json:"disposals,omitempty" binding:"omitempty,accounts_value"`
	Revaluations  *int64 `json:"revaluations,omitempty" binding:"omitempty,accounts_signed_value"`
	Transfers     *int64 `json:"transfers,omitempty" binding:"omitempty,accounts_signed_value"`
	AtPeriodEnd   *int64 `json:"at_period_end,omitempty" binding:"omitempty,accounts_value"`
}

// AssetWriteDown is the depreciation or amortisation movement of a class of
// fixed assets
type AssetWriteDown struct {
	AtPeriodStart    *int64 `json:"at_period_start,omitempty" binding:"omitempty,accounts_value"`
	ChargeForYear    *int64 `json:"charge_for_year,omitempty" binding:"omitempty,accounts_value"`
	OnDisposals      *int64 `json:"on_disposals,omitempty" binding:"omitempty,accounts_value"`
	OtherAdjustments *int64 `json:"other_adjustments,omitempty" binding:"omitempty,accounts_signed_value"`
	AtPeriodEnd      *int64 `json:"at_period_end,omitempty" binding:"omitempty,accounts_value"`
}

// TangibleAssets note
type TangibleAssets struct {
	RestObject
	AdditionalInformation string                  `json:"additional_information,omitempty" binding:"omitempty,max=20000"`
	LandAndBuildings      *TangibleAssetsResource `json:"land_and_buildings,omitempty"`
	PlantAndMachinery     *TangibleAssetsResource `json:"plant_and_machinery,omitempty"`
	FixturesAndFittings   *TangibleAssetsResource `json:"fixtures_and_fittings,omitempty"`
	OfficeEquipment       *TangibleAssetsResource `json:"office_equipment,omitempty"`
	MotorVehicles         *TangibleAssetsResource `json:"motor_vehicles,omitempty"`
	Total                 *TangibleAssetsResource `json:"total,omitempty"`
}

type TangibleAssetsResource struct {
	Cost                              *AssetCost      `json:"cost,omitempty"`
	Depreciation                      *AssetWriteDown `json:"depreciation,omitempty"`
	NetBookValueAtEndOfCurrentPeriod  *int64          `json:"net_book_value_at_end_of_current_period,omitempty" binding:"omitempty,accounts_value"`
	NetBookValueAtEndOfPreviousPeriod *int64          `json:"net_book_value_at_end_of_previous_period,omitempty" binding:"omitempty,accounts_value"`
}

// IntangibleAssets note
type IntangibleAssets struct {
	RestObject
	AdditionalInformation string                    `json:"additional_information,omitempty" binding:"omitempty,max=20000"`
	Goodwill              *IntangibleAssetsResource `json:"goodwill,omitempty"`
	OtherIntangibleAssets *IntangibleAssetsResource `json:"other_intangible_assets,omitempty"`
	Total                 *IntangibleAssetsResource `json:"total,omitempty"`
}

type IntangibleAssetsResource struct {
	Cost                              *AssetCost      `json:"cost,omitempty"`
	Amortisation                      *AssetWriteDown `json:"amortisation,omitempty"`
	NetBookValueAtEndOfCurrentPeriod  *int64          `json:"net_book_value_at_end_of_current_period,omitempty" binding:"omitempty,accounts_value"`
	NetBookValueAtEndOfPreviousPeriod *int64          `json:"net_book_value_at_end_of_previous_period,omitempty" binding:"omitempty,accounts_value"`
}

// BalanceBreakdown is the movement on a director's loan or a related party
// balance during the period
type BalanceBreakdown struct {
	BalanceAtPeriodStart  *int64 `json:"balance_at_period_start,omitempty" binding:"omitempty,accounts_value"`
	AdvancesCreditsMade   *int64 `json:"advances_credits_made,omitempty" binding:"omitempty,accounts_value"`
	AdvancesCreditsRepaid *int64 `json:"advances_credits_repaid,omitempty" binding:"omitempty,accounts_value"`
	BalanceAtPeriodEnd    *int64 `json:"balance_at_period_end,omitempty" binding:"omitempty,accounts_value"`
}

// LoansToDirectors note
type LoansToDirectors struct {
	RestObject
	Loans                 []Loan `json:"loans,omitempty" binding:"omitempty,dive"`
	AdditionalInformation string `json:"additional_information,omitempty" binding:"omitempty,max=20000"`
}

type Loan struct {
	DirectorName string            `json:"director_name" binding:"required,max=100"`
	Description  string            `json:"description" binding:"required,max=250"`
	Breakdown    *BalanceBreakdown `json:"breakdown,omitempty"`
}

// RelatedPartyTransactions note
type RelatedPartyTransactions struct {
	RestObject
	Transactions          []RelatedPartyTransaction `json:"transactions,omitempty" binding:"omitempty,dive"`
	AdditionalInformation string                    `json:"additional_information,omitempty" binding:"omitempty,max=20000"`
}

type RelatedPartyTransaction struct {
	NameOfRelatedParty       string            `json:"name_of_related_party" binding:"required,max=160"`
	Relationship             string            `json:"relationship" binding:"required,max=160"`
	DescriptionOfTransaction string            `json:"description_of_transaction" binding:"required,max=250"`
	Breakdown                *BalanceBreakdown `json:"breakdown,omitempty"`
}
