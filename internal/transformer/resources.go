package transformer

import (
	"time"

	"github.com/epeers/company-accounts/internal/entity"
	"github.com/epeers/company-accounts/internal/models"
)

func CompanyAccountToEntity(r *models.CompanyAccount) *entity.CompanyAccountEntity {
	var periodEnd time.Time
	if r.PeriodEndOn != nil {
		periodEnd = r.PeriodEndOn.Time
	}
	return &entity.CompanyAccountEntity{Data: entity.CompanyAccountData{
		BaseData:    baseToEntity(r.RestObject),
		PeriodEndOn: periodEnd,
	}}
}

func CompanyAccountToRest(e *entity.CompanyAccountEntity) *models.CompanyAccount {
	r := &models.CompanyAccount{RestObject: baseToRest(e.Data.BaseData)}
	if !e.Data.PeriodEndOn.IsZero() {
		r.PeriodEndOn = models.NewFlexibleDate(e.Data.PeriodEndOn)
	}
	return r
}

func SmallFullToEntity(r *models.SmallFull) *entity.SmallFullEntity {
	return &entity.SmallFullEntity{Data: entity.SmallFullData{BaseData: baseToEntity(r.RestObject)}}
}

func SmallFullToRest(e *entity.SmallFullEntity) *models.SmallFull {
	return &models.SmallFull{RestObject: baseToRest(e.Data.BaseData)}
}

func PeriodToEntity(r *models.Period) *entity.PeriodEntity {
	return &entity.PeriodEntity{Data: entity.PeriodData{
		BaseData:     baseToEntity(r.RestObject),
		BalanceSheet: balanceSheetToEntity(r.BalanceSheet),
	}}
}

func PeriodToRest(e *entity.PeriodEntity) *models.Period {
	return &models.Period{
		RestObject:   baseToRest(e.Data.BaseData),
		BalanceSheet: BalanceSheetToRest(e.Data.BalanceSheet),
	}
}

func balanceSheetToEntity(bs *models.BalanceSheet) *entity.BalanceSheet {
	if bs == nil {
		return nil
	}
	out := &entity.BalanceSheet{
		CalledUpShareCapitalNotPaid: copyInt(bs.CalledUpShareCapitalNotPaid),
		PrepaymentsAndAccruedIncome: copyInt(bs.PrepaymentsAndAccruedIncome),
	}
	if fa := bs.FixedAssets; fa != nil {
		out.FixedAssets = &entity.FixedAssets{
			Tangible:    copyInt(fa.Tangible),
			Intangible:  copyInt(fa.Intangible),
			Investments: copyInt(fa.Investments),
			Total:       copyInt(fa.Total),
		}
	}
	if ca := bs.CurrentAssets; ca != nil {
		out.CurrentAssets = &entity.CurrentAssets{
			Stocks:              copyInt(ca.Stocks),
			Debtors:             copyInt(ca.Debtors),
			CashAtBankAndInHand: copyInt(ca.CashAtBankAndInHand),
			Investments:         copyInt(ca.Investments),
			Total:               copyInt(ca.Total),
		}
	}
	if o := bs.OtherLiabilitiesOrAssets; o != nil {
		out.OtherLiabilitiesOrAssets = &entity.OtherLiabilitiesOrAssets{
			CreditorsDueWithinOneYear:         copyInt(o.CreditorsDueWithinOneYear),
			NetCurrentAssets:                  copyInt(o.NetCurrentAssets),
			TotalAssetsLessCurrentLiabilities: copyInt(o.TotalAssetsLessCurrentLiabilities),
			CreditorsDueAfterOneYear:          copyInt(o.CreditorsDueAfterOneYear),
			ProvisionForLiabilities:           copyInt(o.ProvisionForLiabilities),
			AccrualsAndDeferredIncome:         copyInt(o.AccrualsAndDeferredIncome),
			TotalNetAssets:                    copyInt(o.TotalNetAssets),
		}
	}
	if cr := bs.CapitalAndReserves; cr != nil {
		out.CapitalAndReserves = &entity.CapitalAndReserves{
			CalledUpShareCapital:   copyInt(cr.CalledUpShareCapital),
			SharePremiumAccount:    copyInt(cr.SharePremiumAccount),
			OtherReserves:          copyInt(cr.OtherReserves),
			ProfitAndLoss:          copyInt(cr.ProfitAndLoss),
			TotalShareholdersFunds: copyInt(cr.TotalShareholdersFunds),
		}
	}
	return out
}

// BalanceSheetToRest converts a stored balance sheet. It is used directly
// when notes are cross-checked against the balance sheet.
func BalanceSheetToRest(bs *entity.BalanceSheet) *models.BalanceSheet {
	if bs == nil {
		return nil
	}
	out := &models.BalanceSheet{
		CalledUpShareCapitalNotPaid: copyInt(bs.CalledUpShareCapitalNotPaid),
		PrepaymentsAndAccruedIncome: copyInt(bs.PrepaymentsAndAccruedIncome),
	}
	if fa := bs.FixedAssets; fa != nil {
		out.FixedAssets = &models.FixedAssets{
			Tangible:    copyInt(fa.Tangible),
			Intangible:  copyInt(fa.Intangible),
			Investments: copyInt(fa.Investments),
			Total:       copyInt(fa.Total),
		}
	}
	if ca := bs.CurrentAssets; ca != nil {
		out.CurrentAssets = &models.CurrentAssets{
			Stocks:              copyInt(ca.Stocks),
			Debtors:             copyInt(ca.Debtors),
			CashAtBankAndInHand: copyInt(ca.CashAtBankAndInHand),
			Investments:         copyInt(ca.Investments),
			Total:               copyInt(ca.Total),
		}
	}
	if o := bs.OtherLiabilitiesOrAssets; o != nil {
		out.OtherLiabilitiesOrAssets = &models.OtherLiabilitiesOrAssets{
			CreditorsDueWithinOneYear:         copyInt(o.CreditorsDueWithinOneYear),
			NetCurrentAssets:                  copyInt(o.NetCurrentAssets),
			TotalAssetsLessCurrentLiabilities: copyInt(o.TotalAssetsLessCurrentLiabilities),
			CreditorsDueAfterOneYear:          copyInt(o.CreditorsDueAfterOneYear),
			ProvisionForLiabilities:           copyInt(o.ProvisionForLiabilities),
			AccrualsAndDeferredIncome:         copyInt(o.AccrualsAndDeferredIncome),
			TotalNetAssets:                    copyInt(o.TotalNetAssets),
		}
	}
	if cr := bs.CapitalAndReserves; cr != nil {
		out.CapitalAndReserves = &models.CapitalAndReserves{
			CalledUpShareCapital:   copyInt(cr.CalledUpShareCapital),
			SharePremiumAccount:    copyInt(cr.SharePremiumAccount),
			OtherReserves:          copyInt(cr.OtherReserves),
			ProfitAndLoss:          copyInt(cr.ProfitAndLoss),
			TotalShareholdersFunds: copyInt(cr.TotalShareholdersFunds),
		}
	}
	return out
}
