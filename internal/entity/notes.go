package entity

type DebtorsData struct {
	BaseData       `bson:",inline"`
	CurrentPeriod  *DebtorsPeriod `json:"current_period,omitempty" bson:"current_period,omitempty"`
	PreviousPeriod *DebtorsPeriod `json:"previous_period,omitempty" bson:"previous_period,omitempty"`
}

type DebtorsPeriod struct {
	TradeDebtors                *int64 `json:"trade_debtors,omitempty" bson:"trade_debtors,omitempty"`
	PrepaymentsAndAccruedIncome *int64 `json:"prepayments_and_accrued_income,omitempty" bson:"prepayments_and_accrued_income,omitempty"`
	OtherDebtors                *int64 `json:"other_debtors,omitempty" bson:"other_debtors,omitempty"`
	GreaterThanOneYear          *int64 `json:"greater_than_one_year,omitempty" bson:"greater_than_one_year,omitempty"`
	Total                       *int64 `json:"total,omitempty" bson:"total,omitempty"`
	Details                     string `json:"details,omitempty" bson:"details,omitempty"`
}

type DebtorsEntity = Document[DebtorsData]

type StocksData struct {
	BaseData       `bson:",inline"`
	CurrentPeriod  *StocksPeriod `json:"current_period,omitempty" bson:"current_period,omitempty"`
	PreviousPeriod *StocksPeriod `json:"previous_period,omitempty" bson:"previous_period,omitempty"`
}

type StocksPeriod struct {
	Stocks            *int64 `json:"stocks,omitempty" bson:"stocks,omitempty"`
	PaymentsOnAccount *int64 `json:"payments_on_account,omitempty" bson:"payments_on_account,omitempty"`
	Total             *int64 `json:"total,omitempty" bson:"total,omitempty"`
}

type StocksEntity = Document[StocksData]

type EmployeesData struct {
	BaseData       `bson:",inline"`
	CurrentPeriod  *EmployeesPeriod `json:"current_period,omitempty" bson:"current_period,omitempty"`
	PreviousPeriod *EmployeesPeriod `json:"previous_period,omitempty" bson:"previous_period,omitempty"`
}

type EmployeesPeriod struct {
	AverageNumberOfEmployees *int64 `json:"average_number_of_employees,omitempty" bson:"average_number_of_employees,omitempty"`
	Details                  string `json:"details,omitempty" bson:"details,omitempty"`
}

type EmployeesEntity = Document[EmployeesData]

type CreditorsWithinOneYearData struct {
	BaseData       `bson:",inline"`
	CurrentPeriod  *CreditorsWithinOneYearPeriod `json:"current_period,omitempty" bson:"current_period,omitempty"`
	PreviousPeriod *CreditorsWithinOneYearPeriod `json:"previous_period,omitempty" bson:"previous_period,omitempty"`
}

type CreditorsWithinOneYearPeriod struct {
	BankLoansAndOverdrafts                *int64 `json:"bank_loans_and_overdrafts,omitempty" bson:"bank_loans_and_overdrafts,omitempty"`
	FinanceLeasesAndHirePurchaseContracts *int64 `json:"finance_leases_and_hire_purchase_contracts,omitempty" bson:"finance_leases_and_hire_purchase_contracts,omitempty"`
	TradeCreditors                        *int64 `json:"trade_creditors,omitempty" bson:"trade_creditors,omitempty"`
	TaxationAndSocialSecurity             *int64 `json:"taxation_and_social_security,omitempty" bson:"taxation_and_social_security,omitempty"`
	AccrualsAndDeferredIncome             *int64 `json:"accruals_and_deferred_income,omitempty" bson:"accruals_and_deferred_income,omitempty"`
	OtherCreditors                        *int64 `json:"other_creditors,omitempty" bson:"other_creditors,omitempty"`
	Total                                 *int64 `json:"total,omitempty" bson:"total,omitempty"`
	Details                               string `json:"details,omitempty" bson:"details,omitempty"`
}

type CreditorsWithinOneYearEntity = Document[CreditorsWithinOneYearData]

type CreditorsAfterOneYearData struct {
	BaseData       `bson:",inline"`
	CurrentPeriod  *CreditorsAfterOneYearPeriod `json:"current_period,omitempty" bson:"current_period,omitempty"`
	PreviousPeriod *CreditorsAfterOneYearPeriod `json:"previous_period,omitempty" bson:"previous_period,omitempty"`
}

type CreditorsAfterOneYearPeriod struct {
	BankLoansAndOverdrafts                *int64 `json:"bank_loans_and_overdrafts,omitempty" bson:"bank_loans_and_overdrafts,omitempty"`
	FinanceLeasesAndHirePurchaseContracts *int64 `json:"finance_leases_and_hire_purchase_contracts,omitempty" bson:"finance_leases_and_hire_purchase_contracts,omitempty"`
	OtherCreditors                        *int64 `json:"other_creditors,omitempty" bson:"other_creditors,omitempty"`
	Total                                 *int64 `json:"total,omitempty" bson:"total,omitempty"`
	Details                               string `json:"details,omitempty" bson:"details,omitempty"`
}

type CreditorsAfterOneYearEntity = Document[CreditorsAfterOneYearData]

type AssetCost struct {
	AtPeriodStart *int64 `json:"at_period_start,omitempty" bson:"at_period_start,omitempty"`
	Additions     *int64 `json:"additions,omitempty" bson:"additions,omitempty"`
	Disposals     *int64 `json:"disposals,omitempty" bson:"disposals,omitempty"`
	Revaluations  *int64 `json:"revaluations,omitempty" bson:"revaluations,omitempty"`
	Transfers     *int64 `json:"transfers,omitempty" bson:"transfers,omitempty"`
	AtPeriodEnd   *int64 `json:"at_period_end,omitempty" bson:"at_period_end,omitempty"`
}

type AssetWriteDown struct {
	AtPeriodStart    *int64 `json:"at_period_start,omitempty" bson:"at_period_start,omitempty"`
	ChargeForYear    *int64 `json:"charge_for_year,omitempty" bson:"charge_for_year,omitempty"`
	OnDisposals      *int64 `json:"on_disposals,omitempty" bson:"on_disposals,omitempty"`
	OtherAdjustments *int64 `json:"other_adjustments,omitempty" bson:"other_adjustments,omitempty"`
	AtPeriodEnd      *int64 `json:"at_period_end,omitempty" bson:"at_period_end,omitempty"`
}

type TangibleAssetsData struct {
	BaseData              `bson:",inline"`
	AdditionalInformation string                  `json:"additional_information,omitempty" bson:"additional_information,omitempty"`
	LandAndBuildings      *TangibleAssetsResource `json:"land_and_buildings,omitempty" bson:"land_and_buildings,omitempty"`
	PlantAndMachinery     *TangibleAssetsResource `json:"plant_and_machinery,omitempty" bson:"plant_and_machinery,omitempty"`
	FixturesAndFittings   *TangibleAssetsResource `json:"fixtures_and_fittings,omitempty" bson:"fixtures_and_fittings,omitempty"`
	OfficeEquipment       *TangibleAssetsResource `json:"office_equipment,omitempty" bson:"office_equipment,omitempty"`
	MotorVehicles         *TangibleAssetsResource `json:"motor_vehicles,omitempty" bson:"motor_vehicles,omitempty"`
	Total                 *TangibleAssetsResource `json:"total,omitempty" bson:"total,omitempty"`
}

type TangibleAssetsResource struct {
	Cost                              *AssetCost      `json:"cost,omitempty" bson:"cost,omitempty"`
	Depreciation                      *AssetWriteDown `json:"depreciation,omitempty" bson:"depreciation,omitempty"`
	NetBookValueAtEndOfCurrentPeriod  *int64          `json:"net_book_value_at_end_of_current_period,omitempty" bson:"net_book_value_at_end_of_current_period,omitempty"`
	NetBookValueAtEndOfPreviousPeriod *int64          `json:"net_book_value_at_end_of_previous_period,omitempty" bson:"net_book_value_at_end_of_previous_period,omitempty"`
}

type TangibleAssetsEntity = Document[TangibleAssetsData]

type IntangibleAssetsData struct {
	BaseData              `bson:",inline"`
	AdditionalInformation string                    `json:"additional_information,omitempty" bson:"additional_information,omitempty"`
	Goodwill              *IntangibleAssetsResource `json:"goodwill,omitempty" bson:"goodwill,omitempty"`
	OtherIntangibleAssets *IntangibleAssetsResource `json:"other_intangible_assets,omitempty" bson:"other_intangible_assets,omitempty"`
	Total                 *IntangibleAssetsResource `json:"total,omitempty" bson:"total,omitempty"`
}

type IntangibleAssetsResource struct {
	Cost                              *AssetCost      `json:"cost,omitempty" bson:"cost,omitempty"`
	Amortisation                      *AssetWriteDown `json:"amortisation,omitempty" bson:"amortisation,omitempty"`
	NetBookValueAtEndOfCurrentPeriod  *int64          `json:"net_book_value_at_end_of_current_period,omitempty" bson:"net_book_value_at_end_of_current_period,omitempty"`
	NetBookValueAtEndOfPreviousPeriod *int64          `json:"net_book_value_at_end_of_previous_period,omitempty" bson:"net_book_value_at_end_of_previous_period,omitempty"`
}

type IntangibleAssetsEntity = Document[IntangibleAssetsData]

type BalanceBreakdown struct {
	BalanceAtPeriodStart  *int64 `json:"balance_at_period_start,omitempty" bson:"balance_at_period_start,omitempty"`
	AdvancesCreditsMade   *int64 `json:"advances_credits_made,omitempty" bson:"advances_credits_made,omitempty"`
	AdvancesCreditsRepaid *int64 `json:"advances_credits_repaid,omitempty" bson:"advances_credits_repaid,omitempty"`
	BalanceAtPeriodEnd    *int64 `json:"balance_at_period_end,omitempty" bson:"balance_at_period_end,omitempty"`
}

type LoansToDirectorsData struct {
	BaseData              `bson:",inline"`
	Loans                 []Loan `json:"loans,omitempty" bson:"loans,omitempty"`
	AdditionalInformation string `json:"additional_information,omitempty" bson:"additional_information,omitempty"`
}

type Loan struct {
	DirectorName string            `json:"director_name" bson:"director_name"`
	Description  string            `json:"description" bson:"description"`
	Breakdown    *BalanceBreakdown `json:"breakdown,omitempty" bson:"breakdown,omitempty"`
}

type LoansToDirectorsEntity = Document[LoansToDirectorsData]

type RelatedPartyTransactionsData struct {
	BaseData              `bson:",inline"`
	Transactions          []RelatedPartyTransaction `json:"transactions,omitempty" bson:"transactions,omitempty"`
	AdditionalInformation string                    `json:"additional_information,omitempty" bson:"additional_information,omitempty"`
}

type RelatedPartyTransaction struct {
	NameOfRelatedParty       string            `json:"name_of_related_party" bson:"name_of_related_party"`
	Relationship             string            `json:"relationship" bson:"relationship"`
	DescriptionOfTransaction string            `json:"description_of_transaction" bson:"description_of_transaction"`
	Breakdown                *BalanceBreakdown `json:"breakdown,omitempty" bson:"breakdown,omitempty"`
}

type RelatedPartyTransactionsEntity = Document[RelatedPartyTransactionsData]
