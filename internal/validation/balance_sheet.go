package validation

import (
	"context"

	"github.com/epeers/company-accounts/internal/models"
)

// ValidatePeriod dispatches to the current or previous period rules
func (v *Validator) ValidatePeriod(ctx context.Context, period models.PeriodType, p *models.Period, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error) {
	if period == models.PeriodPrevious {
		return v.ValidatePreviousPeriod(ctx, p, tx, companyAccountsID, requestID)
	}
	return v.ValidateCurrentPeriod(ctx, p, tx, companyAccountsID, requestID)
}

// ValidateCurrentPeriod checks the totals of the current period balance sheet
func (v *Validator) ValidateCurrentPeriod(_ context.Context, p *models.Period, _ *models.Transaction, _, _ string) (*models.Errors, error) {
	c := newCollector()
	validateBalanceSheet(c, p, models.PeriodCurrent)
	return c.errs, nil
}

// ValidatePreviousPeriod rejects a previous period from a single year filer
// and otherwise checks its balance sheet totals
func (v *Validator) ValidatePreviousPeriod(ctx context.Context, p *models.Period, tx *models.Transaction, _, requestID string) (*models.Errors, error) {
	multi, err := v.isMultipleYearFiler(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}

	c := newCollector()
	if !multi {
		c.add(ErrKeyUnexpectedData, models.PeriodPrevious.JSONPath())
		return c.errs, nil
	}
	validateBalanceSheet(c, p, models.PeriodPrevious)
	return c.errs, nil
}

func validateBalanceSheet(c *collector, p *models.Period, period models.PeriodType) {
	if p == nil || p.BalanceSheet == nil {
		c.add(ErrKeyEmptyResource, period.JSONPath())
		return
	}
	bs := p.BalanceSheet
	root := period.JSONPath() + ".balance_sheet"

	var fixedTotal, currentTotal *int64
	if fa := bs.FixedAssets; fa != nil {
		fixedTotal = fa.Total
		c.checkTotal(root+".fixed_assets.total", fa.Total,
			plus(fa.Tangible), plus(fa.Intangible), plus(fa.Investments))
	}
	if ca := bs.CurrentAssets; ca != nil {
		currentTotal = ca.Total
		c.checkTotal(root+".current_assets.total", ca.Total,
			plus(ca.Stocks), plus(ca.Debtors), plus(ca.CashAtBankAndInHand), plus(ca.Investments))
	}

	netAssetsPath := root + ".other_liabilities_or_assets.total_net_assets"
	if o := bs.OtherLiabilitiesOrAssets; o != nil {
		c.checkTotal(root+".other_liabilities_or_assets.net_current_assets", o.NetCurrentAssets,
			plus(currentTotal), plus(bs.PrepaymentsAndAccruedIncome), minus(o.CreditorsDueWithinOneYear))
		c.checkTotal(root+".other_liabilities_or_assets.total_assets_less_current_liabilities", o.TotalAssetsLessCurrentLiabilities,
			plus(fixedTotal), plus(o.NetCurrentAssets), plus(bs.CalledUpShareCapitalNotPaid))
		c.checkTotal(netAssetsPath, o.TotalNetAssets,
			plus(o.TotalAssetsLessCurrentLiabilities), minus(o.CreditorsDueAfterOneYear),
			minus(o.ProvisionForLiabilities), minus(o.AccrualsAndDeferredIncome))
	}

	fundsPath := root + ".capital_and_reserves.total_shareholders_funds"
	if cr := bs.CapitalAndReserves; cr != nil {
		c.checkTotal(fundsPath, cr.TotalShareholdersFunds,
			plus(cr.CalledUpShareCapital), plus(cr.SharePremiumAccount),
			plus(cr.OtherReserves), plus(cr.ProfitAndLoss))
	}

	if bs.OtherLiabilitiesOrAssets == nil || bs.CapitalAndReserves == nil {
		return
	}
	netAssets := bs.OtherLiabilitiesOrAssets.TotalNetAssets
	funds := bs.CapitalAndReserves.TotalShareholdersFunds
	if !anySet(netAssets, funds) || c.hasFailed(netAssetsPath) || c.hasFailed(fundsPath) {
		return
	}
	if value(netAssets) != value(funds) {
		c.add(ErrKeyShareholderFundsMismatch, fundsPath)
	}
}
