package validation

import (
	"context"

	"github.com/epeers/company-accounts/internal/models"
)

type notePeriod interface {
	IsEmpty() bool
}

// periodNote describes a note split into current and previous periods
type periodNote[P notePeriod] struct {
	key      models.AccountingNoteType
	current  P
	previous P
	// total checks the totals of one period and returns the period total
	// with whether it is consistent. nil when the note has no total.
	total func(c *collector, p P, location string) (*int64, bool)
	// figure returns the balance sheet line the note total must match. nil
	// when the note is not backed by the balance sheet.
	figure func(bs *models.BalanceSheet) *int64
}

func validatePeriodNote[P notePeriod](ctx context.Context, v *Validator, n periodNote[P], tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error) {
	multi, err := v.isMultipleYearFiler(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}

	c := newCollector()
	root := n.key.JSONPath()
	if n.current.IsEmpty() && n.previous.IsEmpty() {
		c.add(ErrKeyEmptyResource, root)
		return c.errs, nil
	}

	sheets := v.newSheetCache(companyAccountsID, requestID)
	check := func(p P, period models.PeriodType) error {
		location := root + "." + string(period)
		if n.total == nil {
			return nil
		}
		total, ok := n.total(c, p, location)
		if !ok || n.figure == nil {
			return nil
		}
		bs, err := sheets.get(ctx, period)
		if err != nil || bs == nil {
			return err
		}
		c.checkEqual(balanceSheetMismatchKey(period), location+".total", total, n.figure(bs))
		return nil
	}

	if n.current.IsEmpty() {
		c.add(ErrKeyMandatoryElementMissing, root+"."+string(models.PeriodCurrent))
	} else if err := check(n.current, models.PeriodCurrent); err != nil {
		return nil, err
	}

	switch {
	case !n.previous.IsEmpty() && !multi:
		c.add(ErrKeyUnexpectedData, root+"."+string(models.PeriodPrevious))
	case !n.previous.IsEmpty():
		if err := check(n.previous, models.PeriodPrevious); err != nil {
			return nil, err
		}
	case multi && n.figure != nil:
		bs, err := sheets.get(ctx, models.PeriodPrevious)
		if err != nil {
			return nil, err
		}
		if bs != nil && n.figure(bs) != nil {
			c.add(ErrKeyMandatoryElementMissing, root+"."+string(models.PeriodPrevious))
		}
	}

	return c.errs, nil
}

func currentAssetsFigure(get func(*models.CurrentAssets) *int64) func(*models.BalanceSheet) *int64 {
	return func(bs *models.BalanceSheet) *int64 {
		if bs.CurrentAssets == nil {
			return nil
		}
		return get(bs.CurrentAssets)
	}
}

func otherLiabilitiesFigure(get func(*models.OtherLiabilitiesOrAssets) *int64) func(*models.BalanceSheet) *int64 {
	return func(bs *models.BalanceSheet) *int64 {
		if bs.OtherLiabilitiesOrAssets == nil {
			return nil
		}
		return get(bs.OtherLiabilitiesOrAssets)
	}
}

// ValidateDebtors checks the debtors note
func (v *Validator) ValidateDebtors(ctx context.Context, note *models.Debtors, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error) {
	return validatePeriodNote(ctx, v, periodNote[*models.DebtorsPeriod]{
		key:      models.SmallFullDebtors,
		current:  note.CurrentPeriod,
		previous: note.PreviousPeriod,
		total: func(c *collector, p *models.DebtorsPeriod, location string) (*int64, bool) {
			return p.Total, c.checkTotal(location+".total", p.Total,
				plus(p.TradeDebtors), plus(p.PrepaymentsAndAccruedIncome), plus(p.OtherDebtors))
		},
		figure: currentAssetsFigure(func(ca *models.CurrentAssets) *int64 { return ca.Debtors }),
	}, tx, companyAccountsID, requestID)
}

// ValidateStocks checks the stocks note
func (v *Validator) ValidateStocks(ctx context.Context, note *models.Stocks, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error) {
	return validatePeriodNote(ctx, v, periodNote[*models.StocksPeriod]{
		key:      models.SmallFullStocks,
		current:  note.CurrentPeriod,
		previous: note.PreviousPeriod,
		total: func(c *collector, p *models.StocksPeriod, location string) (*int64, bool) {
			return p.Total, c.checkTotal(location+".total", p.Total, plus(p.Stocks), plus(p.PaymentsOnAccount))
		},
		figure: currentAssetsFigure(func(ca *models.CurrentAssets) *int64 { return ca.Stocks }),
	}, tx, companyAccountsID, requestID)
}

// ValidateEmployees checks the employees note. It carries no totals.
func (v *Validator) ValidateEmployees(ctx context.Context, note *models.Employees, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error) {
	return validatePeriodNote(ctx, v, periodNote[*models.EmployeesPeriod]{
		key:      models.SmallFullEmployees,
		current:  note.CurrentPeriod,
		previous: note.PreviousPeriod,
	}, tx, companyAccountsID, requestID)
}

// ValidateCreditorsWithinOneYear checks the creditors within one year note
func (v *Validator) ValidateCreditorsWithinOneYear(ctx context.Context, note *models.CreditorsWithinOneYear, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error) {
	return validatePeriodNote(ctx, v, periodNote[*models.CreditorsWithinOneYearPeriod]{
		key:      models.SmallFullCreditorsWithinOneYear,
		current:  note.CurrentPeriod,
		previous: note.PreviousPeriod,
		total: func(c *collector, p *models.CreditorsWithinOneYearPeriod, location string) (*int64, bool) {
			return p.Total, c.checkTotal(location+".total", p.Total,
				plus(p.BankLoansAndOverdrafts), plus(p.FinanceLeasesAndHirePurchaseContracts),
				plus(p.TradeCreditors), plus(p.TaxationAndSocialSecurity),
				plus(p.AccrualsAndDeferredIncome), plus(p.OtherCreditors))
		},
		figure: otherLiabilitiesFigure(func(o *models.OtherLiabilitiesOrAssets) *int64 { return o.CreditorsDueWithinOneYear }),
	}, tx, companyAccountsID, requestID)
}

// ValidateCreditorsAfterOneYear checks the creditors after more than one
// year note
func (v *Validator) ValidateCreditorsAfterOneYear(ctx context.Context, note *models.CreditorsAfterOneYear, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error) {
	return validatePeriodNote(ctx, v, periodNote[*models.CreditorsAfterOneYearPeriod]{
		key:      models.SmallFullCreditorsAfterOneYear,
		current:  note.CurrentPeriod,
		previous: note.PreviousPeriod,
		total: func(c *collector, p *models.CreditorsAfterOneYearPeriod, location string) (*int64, bool) {
			return p.Total, c.checkTotal(location+".total", p.Total,
				plus(p.BankLoansAndOverdrafts), plus(p.FinanceLeasesAndHirePurchaseContracts), plus(p.OtherCreditors))
		},
		figure: otherLiabilitiesFigure(func(o *models.OtherLiabilitiesOrAssets) *int64 { return o.CreditorsDueAfterOneYear }),
	}, tx, companyAccountsID, requestID)
}
