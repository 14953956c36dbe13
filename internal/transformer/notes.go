package transformer

import (
	"github.com/epeers/company-accounts/internal/entity"
	"github.com/epeers/company-accounts/internal/models"
)

func DebtorsToEntity(r *models.Debtors) *entity.DebtorsEntity {
	return &entity.DebtorsEntity{Data: entity.DebtorsData{
		BaseData:       baseToEntity(r.RestObject),
		CurrentPeriod:  debtorsPeriodToEntity(r.CurrentPeriod),
		PreviousPeriod: debtorsPeriodToEntity(r.PreviousPeriod),
	}}
}

func DebtorsToRest(e *entity.DebtorsEntity) *models.Debtors {
	return &models.Debtors{
		RestObject:     baseToRest(e.Data.BaseData),
		CurrentPeriod:  debtorsPeriodToRest(e.Data.CurrentPeriod),
		PreviousPeriod: debtorsPeriodToRest(e.Data.PreviousPeriod),
	}
}

func debtorsPeriodToEntity(p *models.DebtorsPeriod) *entity.DebtorsPeriod {
	if p == nil {
		return nil
	}
	return &entity.DebtorsPeriod{
		TradeDebtors:                copyInt(p.TradeDebtors),
		PrepaymentsAndAccruedIncome: copyInt(p.PrepaymentsAndAccruedIncome),
		OtherDebtors:                copyInt(p.OtherDebtors),
		GreaterThanOneYear:          copyInt(p.GreaterThanOneYear),
		Total:                       copyInt(p.Total),
		Details:                     p.Details,
	}
}

func debtorsPeriodToRest(p *entity.DebtorsPeriod) *models.DebtorsPeriod {
	if p == nil {
		return nil
	}
	return &models.DebtorsPeriod{
		TradeDebtors:                copyInt(p.TradeDebtors),
		PrepaymentsAndAccruedIncome: copyInt(p.PrepaymentsAndAccruedIncome),
		OtherDebtors:                copyInt(p.OtherDebtors),
		GreaterThanOneYear:          copyInt(p.GreaterThanOneYear),
		Total:                       copyInt(p.Total),
		Details:                     p.Details,
	}
}

func StocksToEntity(r *models.Stocks) *entity.StocksEntity {
	return &entity.StocksEntity{Data: entity.StocksData{
		BaseData:       baseToEntity(r.RestObject),
		CurrentPeriod:  stocksPeriodToEntity(r.CurrentPeriod),
		PreviousPeriod: stocksPeriodToEntity(r.PreviousPeriod),
	}}
}

func StocksToRest(e *entity.StocksEntity) *models.Stocks {
	return &models.Stocks{
		RestObject:     baseToRest(e.Data.BaseData),
		CurrentPeriod:  stocksPeriodToRest(e.Data.CurrentPeriod),
		PreviousPeriod: stocksPeriodToRest(e.Data.PreviousPeriod),
	}
}

func stocksPeriodToEntity(p *models.StocksPeriod) *entity.StocksPeriod {
	if p == nil {
		return nil
	}
	return &entity.StocksPeriod{
		Stocks:            copyInt(p.Stocks),
		PaymentsOnAccount: copyInt(p.PaymentsOnAccount),
		Total:             copyInt(p.Total),
	}
}

func stocksPeriodToRest(p *entity.StocksPeriod) *models.StocksPeriod {
	if p == nil {
		return nil
	}
	return &models.StocksPeriod{
		Stocks:            copyInt(p.Stocks),
		PaymentsOnAccount: copyInt(p.PaymentsOnAccount),
		Total:             copyInt(p.Total),
	}
}

func EmployeesToEntity(r *models.Employees) *entity.EmployeesEntity {
	return &entity.EmployeesEntity{Data: entity.EmployeesData{
		BaseData:       baseToEntity(r.RestObject),
		CurrentPeriod:  employeesPeriodToEntity(r.CurrentPeriod),
		PreviousPeriod: employeesPeriodToEntity(r.PreviousPeriod),
	}}
}

func EmployeesToRest(e *entity.EmployeesEntity) *models.Employees {
	return &models.Employees{
		RestObject:     baseToRest(e.Data.BaseData),
		CurrentPeriod:  employeesPeriodToRest(e.Data.CurrentPeriod),
		PreviousPeriod: employeesPeriodToRest(e.Data.PreviousPeriod),
	}
}

func employeesPeriodToEntity(p *models.EmployeesPeriod) *entity.EmployeesPeriod {
	if p == nil {
		return nil
	}
	return &entity.EmployeesPeriod{
		AverageNumberOfEmployees: copyInt(p.AverageNumberOfEmployees),
		Details:                  p.Details,
	}
}

func employeesPeriodToRest(p *entity.EmployeesPeriod) *models.EmployeesPeriod {
	if p == nil {
		return nil
	}
	return &models.EmployeesPeriod{
		AverageNumberOfEmployees: copyInt(p.AverageNumberOfEmployees),
		Details:                  p.Details,
	}
}

func CreditorsWithinOneYearToEntity(r *models.CreditorsWithinOneYear) *entity.CreditorsWithinOneYearEntity {
	return &entity.CreditorsWithinOneYearEntity{Data: entity.CreditorsWithinOneYearData{
		BaseData:       baseToEntity(r.RestObject),
		CurrentPeriod:  creditorsWithinPeriodToEntity(r.CurrentPeriod),
		PreviousPeriod: creditorsWithinPeriodToEntity(r.PreviousPeriod),
	}}
}

func CreditorsWithinOneYearToRest(e *entity.CreditorsWithinOneYearEntity) *models.CreditorsWithinOneYear {
	return &models.CreditorsWithinOneYear{
		RestObject:     baseToRest(e.Data.BaseData),
		CurrentPeriod:  creditorsWithinPeriodToRest(e.Data.CurrentPeriod),
		PreviousPeriod: creditorsWithinPeriodToRest(e.Data.PreviousPeriod),
	}
}

func creditorsWithinPeriodToEntity(p *models.CreditorsWithinOneYearPeriod) *entity.CreditorsWithinOneYearPeriod {
	if p == nil {
		return nil
	}
	return &entity.CreditorsWithinOneYearPeriod{
		BankLoansAndOverdrafts:                copyInt(p.BankLoansAndOverdrafts),
		FinanceLeasesAndHirePurchaseContracts: copyInt(p.FinanceLeasesAndHirePurchaseContracts),
		TradeCreditors:                        copyInt(p.TradeCreditors),
		TaxationAndSocialSecurity:             copyInt(p.TaxationAndSocialSecurity),
		AccrualsAndDeferredIncome:             copyInt(p.AccrualsAndDeferredIncome),
		OtherCreditors:                        copyInt(p.OtherCreditors),
		Total:                                 copyInt(p.Total),
		Details:                               p.Details,
	}
}

func creditorsWithinPeriodToRest(p *entity.CreditorsWithinOneYearPeriod) *models.CreditorsWithinOneYearPeriod {
	if p == nil {
		return nil
	}
	return &models.CreditorsWithinOneYearPeriod{
		BankLoansAndOverdrafts:                copyInt(p.BankLoansAndOverdrafts),
		FinanceLeasesAndHirePurchaseContracts: copyInt(p.FinanceLeasesAndHirePurchaseContracts),
		TradeCreditors:                        copyInt(p.TradeCreditors),
		TaxationAndSocialSecurity:             copyInt(p.TaxationAndSocialSecurity),
		AccrualsAndDeferredIncome:             copyInt(p.AccrualsAndDeferredIncome),
		OtherCreditors:                        copyInt(p.OtherCreditors),
		Total:                                 copyInt(p.Total),
		Details:                               p.Details,
	}
}

func CreditorsAfterOneYearToEntity(r *models.CreditorsAfterOneYear) *entity.CreditorsAfterOneYearEntity {
	return &entity.CreditorsAfterOneYearEntity{Data: entity.CreditorsAfterOneYearData{
		BaseData:       baseToEntity(r.RestObject),
		CurrentPeriod:  creditorsAfterPeriodToEntity(r.CurrentPeriod),
		PreviousPeriod: creditorsAfterPeriodToEntity(r.PreviousPeriod),
	}}
}

func CreditorsAfterOneYearToRest(e *entity.CreditorsAfterOneYearEntity) *models.CreditorsAfterOneYear {
	return &models.CreditorsAfterOneYear{
		RestObject:     baseToRest(e.Data.BaseData),
		CurrentPeriod:  creditorsAfterPeriodToRest(e.Data.CurrentPeriod),
		PreviousPeriod: creditorsAfterPeriodToRest(e.Data.PreviousPeriod),
	}
}

func creditorsAfterPeriodToEntity(p *models.CreditorsAfterOneYearPeriod) *entity.CreditorsAfterOneYearPeriod {
	if p == nil {
		return nil
	}
	return &entity.CreditorsAfterOneYearPeriod{
		BankLoansAndOverdrafts:                copyInt(p.BankLoansAndOverdrafts),
		FinanceLeasesAndHirePurchaseContracts: copyInt(p.FinanceLeasesAndHirePurchaseContracts),
		OtherCreditors:                        copyInt(p.OtherCreditors),
		Total:                                 copyInt(p.Total),
		Details:                               p.Details,
	}
}

func creditorsAfterPeriodToRest(p *entity.CreditorsAfterOneYearPeriod) *models.CreditorsAfterOneYearPeriod {
	if p == nil {
		return nil
	}
	return &models.CreditorsAfterOneYearPeriod{
		BankLoansAndOverdrafts:                copyInt(p.BankLoansAndOverdrafts),
		FinanceLeasesAndHirePurchaseContracts: copyInt(p.FinanceLeasesAndHirePurchaseContracts),
		OtherCreditors:                        copyInt(p.OtherCreditors),
		Total:                                 copyInt(p.Total),
		Details:                               p.Details,
	}
}

func assetCostToEntity(c *models.AssetCost) *entity.AssetCost {
	if c == nil {
		return nil
	}
	return &entity.AssetCost{
		AtPeriodStart: copyInt(c.AtPeriodStart),
		Additions:     copyInt(c.Additions),
		Disposals:     copyInt(c.Disposals),
		Revaluations:  copyInt(c.Revaluations),
		Transfers:     copyInt(c.Transfers),
		AtPeriodEnd:   copyInt(c.AtPeriodEnd),
	}
}

func assetCostToRest(c *entity.AssetCost) *models.AssetCost {
	if c == nil {
		return nil
	}
	return &models.AssetCost{
		AtPeriodStart: copyInt(c.AtPeriodStart),
		Additions:     copyInt(c.Additions),
		Disposals:     copyInt(c.Disposals),
		Revaluations:  copyInt(c.Revaluations),
		Transfers:     copyInt(c.Transfers),
		AtPeriodEnd:   copyInt(c.AtPeriodEnd),
	}
}

func writeDownToEntity(w *models.AssetWriteDown) *entity.AssetWriteDown {
	if w == nil {
		return nil
	}
	return &entity.AssetWriteDown{
		AtPeriodStart:    copyInt(w.AtPeriodStart),
		ChargeForYear:    copyInt(w.ChargeForYear),
		OnDisposals:      copyInt(w.OnDisposals),
		OtherAdjustments: copyInt(w.OtherAdjustments),
		AtPeriodEnd:      copyInt(w.AtPeriodEnd),
	}
}

func writeDownToRest(w *entity.AssetWriteDown) *models.AssetWriteDown {
	if w == nil {
		return nil
	}
	return &models.AssetWriteDown{
		AtPeriodStart:    copyInt(w.AtPeriodStart),
		ChargeForYear:    copyInt(w.ChargeForYear),
		OnDisposals:      copyInt(w.OnDisposals),
		OtherAdjustments: copyInt(w.OtherAdjustments),
		AtPeriodEnd:      copyInt(w.AtPeriodEnd),
	}
}

func TangibleAssetsToEntity(r *models.TangibleAssets) *entity.TangibleAssetsEntity {
	return &entity.TangibleAssetsEntity{Data: entity.TangibleAssetsData{
		BaseData:              baseToEntity(r.RestObject),
		AdditionalInformation: r.AdditionalInformation,
		LandAndBuildings:      tangibleResourceToEntity(r.LandAndBuildings),
		PlantAndMachinery:     tangibleResourceToEntity(r.PlantAndMachinery),
		FixturesAndFittings:   tangibleResourceToEntity(r.FixturesAndFittings),
		OfficeEquipment:       tangibleResourceToEntity(r.OfficeEquipment),
		MotorVehicles:         tangibleResourceToEntity(r.MotorVehicles),
		Total:                 tangibleResourceToEntity(r.Total),
	}}
}

func TangibleAssetsToRest(e *entity.TangibleAssetsEntity) *models.TangibleAssets {
	d := e.Data
	return &models.TangibleAssets{
		RestObject:            baseToRest(d.BaseData),
		AdditionalInformation: d.AdditionalInformation,
		LandAndBuildings:      tangibleResourceToRest(d.LandAndBuildings),
		PlantAndMachinery:     tangibleResourceToRest(d.PlantAndMachinery),
		FixturesAndFittings:   tangibleResourceToRest(d.FixturesAndFittings),
		OfficeEquipment:       tangibleResourceToRest(d.OfficeEquipment),
		MotorVehicles:         tangibleResourceToRest(d.MotorVehicles),
		Total:                 tangibleResourceToRest(d.Total),
	}
}

func tangibleResourceToEntity(r *models.TangibleAssetsResource) *entity.TangibleAssetsResource {
	if r == nil {
		return nil
	}
	return &entity.TangibleAssetsResource{
		Cost:                              assetCostToEntity(r.Cost),
		Depreciation:                      writeDownToEntity(r.Depreciation),
		NetBookValueAtEndOfCurrentPeriod:  copyInt(r.NetBookValueAtEndOfCurrentPeriod),
		NetBookValueAtEndOfPreviousPeriod: copyInt(r.NetBookValueAtEndOfPreviousPeriod),
	}
}

func tangibleResourceToRest(r *entity.TangibleAssetsResource) *models.TangibleAssetsResource {
	if r == nil {
		return nil
	}
	return &models.TangibleAssetsResource{
		Cost:                              assetCostToRest(r.Cost),
		Depreciation:                      writeDownToRest(r.Depreciation),
		NetBookValueAtEndOfCurrentPeriod:  copyInt(r.NetBookValueAtEndOfCurrentPeriod),
		NetBookValueAtEndOfPreviousPeriod: copyInt(r.NetBookValueAtEndOfPreviousPeriod),
	}
}

func IntangibleAssetsToEntity(r *models.IntangibleAssets) *entity.IntangibleAssetsEntity {
	return &entity.IntangibleAssetsEntity{Data: entity.IntangibleAssetsData{
		BaseData:              baseToEntity(r.RestObject),
		AdditionalInformation: r.AdditionalInformation,
		Goodwill:              intangibleResourceToEntity(r.Goodwill),
		OtherIntangibleAssets: intangibleResourceToEntity(r.OtherIntangibleAssets),
		Total:                 intangibleResourceToEntity(r.Total),
	}}
}

func IntangibleAssetsToRest(e *entity.IntangibleAssetsEntity) *models.IntangibleAssets {
	d := e.Data
	return &models.IntangibleAssets{
		RestObject:            baseToRest(d.BaseData),
		AdditionalInformation: d.AdditionalInformation,
		Goodwill:              intangibleResourceToRest(d.Goodwill),
		OtherIntangibleAssets: intangibleResourceToRest(d.OtherIntangibleAssets),
		Total:                 intangibleResourceToRest(d.Total),
	}
}

func intangibleResourceToEntity(r *models.IntangibleAssetsResource) *entity.IntangibleAssetsResource {
	if r == nil {
		return nil
	}
	return &entity.IntangibleAssetsResource{
		Cost:                              assetCostToEntity(r.Cost),
		Amortisation:                      writeDownToEntity(r.Amortisation),
		NetBookValueAtEndOfCurrentPeriod:  copyInt(r.NetBookValueAtEndOfCurrentPeriod),
		NetBookValueAtEndOfPreviousPeriod: copyInt(r.NetBookValueAtEndOfPreviousPeriod),
	}
}

func intangibleResourceToRest(r *entity.IntangibleAssetsResource) *models.IntangibleAssetsResource {
	if r == nil {
		return nil
	}
	return &models.IntangibleAssetsResource{
		Cost:                              assetCostToRest(r.Cost),
		Amortisation:                      writeDownToRest(r.Amortisation),
		NetBookValueAtEndOfCurrentPeriod:  copyInt(r.NetBookValueAtEndOfCurrentPeriod),
		NetBookValueAtEndOfPreviousPeriod: copyInt(r.NetBookValueAtEndOfPreviousPeriod),
	}
}

func breakdownToEntity(b *models.BalanceBreakdown) *entity.BalanceBreakdown {
	if b == nil {
		return nil
	}
	return &entity.BalanceBreakdown{
		BalanceAtPeriodStart:  copyInt(b.BalanceAtPeriodStart),
		AdvancesCreditsMade:   copyInt(b.AdvancesCreditsMade),
		AdvancesCreditsRepaid: copyInt(b.AdvancesCreditsRepaid),
		BalanceAtPeriodEnd:    copyInt(b.BalanceAtPeriodEnd),
	}
}

func breakdownToRest(b *entity.BalanceBreakdown) *models.BalanceBreakdown {
	if b == nil {
		return nil
	}
	return &models.BalanceBreakdown{
		BalanceAtPeriodStart:  copyInt(b.BalanceAtPeriodStart),
		AdvancesCreditsMade:   copyInt(b.AdvancesCreditsMade),
		AdvancesCreditsRepaid: copyInt(b.AdvancesCreditsRepaid),
		BalanceAtPeriodEnd:    copyInt(b.BalanceAtPeriodEnd),
	}
}

func LoansToDirectorsToEntity(r *models.LoansToDirectors) *entity.LoansToDirectorsEntity {
	var loans []entity.Loan
	if r.Loans != nil {
		loans = make([]entity.Loan, 0, len(r.Loans))
		for _, l := range r.Loans {
			loans = append(loans, entity.Loan{
				DirectorName: l.DirectorName,
				Description:  l.Description,
				Breakdown:    breakdownToEntity(l.Breakdown),
			})
		}
	}
	return &entity.LoansToDirectorsEntity{Data: entity.LoansToDirectorsData{
		BaseData:              baseToEntity(r.RestObject),
		Loans:                 loans,
		AdditionalInformation: r.AdditionalInformation,
	}}
}

func LoansToDirectorsToRest(e *entity.LoansToDirectorsEntity) *models.LoansToDirectors {
	var loans []models.Loan
	if e.Data.Loans != nil {
		loans = make([]models.Loan, 0, len(e.Data.Loans))
		for _, l := range e.Data.Loans {
			loans = append(loans, models.Loan{
				DirectorName: l.DirectorName,
				Description:  l.Description,
				Breakdown:    breakdownToRest(l.Breakdown),
			})
		}
	}
	return &models.LoansToDirectors{
		RestObject:            baseToRest(e.Data.BaseData),
		Loans:                 loans,
		AdditionalInformation: e.Data.AdditionalInformation,
	}
}

func RelatedPartyTransactionsToEntity(r *models.RelatedPartyTransactions) *entity.RelatedPartyTransactionsEntity {
	var txs []entity.RelatedPartyTransaction
	if r.Transactions != nil {
		txs = make([]entity.RelatedPartyTransaction, 0, len(r.Transactions))
		for _, t := range r.Transactions {
			txs = append(txs, entity.RelatedPartyTransaction{
				NameOfRelatedParty:       t.NameOfRelatedParty,
				Relationship:             t.Relationship,
				DescriptionOfTransaction: t.DescriptionOfTransaction,
				Breakdown:                breakdownToEntity(t.Breakdown),
			})
		}
	}
	return &entity.RelatedPartyTransactionsEntity{Data: entity.RelatedPartyTransactionsData{
		BaseData:              baseToEntity(r.RestObject),
		Transactions:          txs,
		AdditionalInformation: r.AdditionalInformation,
	}}
}

func RelatedPartyTransactionsToRest(e *entity.RelatedPartyTransactionsEntity) *models.RelatedPartyTransactions {
	var txs []models.RelatedPartyTransaction
	if e.Data.Transactions != nil {
		txs = make([]models.RelatedPartyTransaction, 0, len(e.Data.Transactions))
		for _, t := range e.Data.Transactions {
			txs = append(txs, models.RelatedPartyTransaction{
				NameOfRelatedParty:       t.NameOfRelatedParty,
				Relationship:             t.Relationship,
				DescriptionOfTransaction: t.DescriptionOfTransaction,
				Breakdown:                breakdownToRest(t.Breakdown),
			})
		}
	}
	return &models.RelatedPartyTransactions{
		RestObject:            baseToRest(e.Data.BaseData),
		Transactions:          txs,
		AdditionalInformation: e.Data.AdditionalInformation,
	}
}
