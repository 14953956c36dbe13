package validation

import (
	"context"
	"fmt"

	"github.com/epeers/company-accounts/internal/models"
)

type breakdownItem struct {
	path      string
	breakdown *models.BalanceBreakdown
}

func validateBreakdownNote(ctx context.Context, v *Validator, key models.AccountingNoteType, items []breakdownItem, additionalInformation string, tx *models.Transaction, requestID string) (*models.Errors, error) {
	multi, err := v.isMultipleYearFiler(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}

	c := newCollector()
	if len(items) == 0 && additionalInformation == "" {
		c.add(ErrKeyEmptyResource, key.JSONPath())
		return c.errs, nil
	}

	for _, item := range items {
		b := item.breakdown
		if b == nil {
			c.add(ErrKeyMandatoryElementMissing, item.path)
			continue
		}
		startPath := item.path + ".balance_at_period_start"
		switch {
		case multi && b.BalanceAtPeriodStart == nil:
			c.add(ErrKeyValueRequired, startPath)
		case !multi && b.BalanceAtPeriodStart != nil:
			c.add(ErrKeyUnexpectedData, startPath)
		}
		c.checkTotal(item.path+".balance_at_period_end", b.BalanceAtPeriodEnd,
			plus(b.BalanceAtPeriodStart), plus(b.AdvancesCreditsMade), minus(b.AdvancesCreditsRepaid))
	}

	return c.errs, nil
}

// ValidateLoansToDirectors checks the loans to directors note
func (v *Validator) ValidateLoansToDirectors(ctx context.Context, note *models.LoansToDirectors, tx *models.Transaction, _, requestID string) (*models.Errors, error) {
	root := models.SmallFullLoansToDirectors.JSONPath()
	items := make([]breakdownItem, 0, len(note.Loans))
	for i, loan := range note.Loans {
		items = append(items, breakdownItem{
			path:      fmt.Sprintf("%s.loans[%d].breakdown", root, i),
			breakdown: loan.Breakdown,
		})
	}
	return validateBreakdownNote(ctx, v, models.SmallFullLoansToDirectors, items, note.AdditionalInformation, tx, requestID)
}

// ValidateRelatedPartyTransactions checks the related party transactions note
func (v *Validator) ValidateRelatedPartyTransactions(ctx context.Context, note *models.RelatedPartyTransactions, tx *models.Transaction, _, requestID string) (*models.Errors, error) {
	root := models.SmallFullRelatedPartyTransactions.JSONPath()
	items := make([]breakdownItem, 0, len(note.Transactions))
	for i, rpt := range note.Transactions {
		items = append(items, breakdownItem{
			path:      fmt.Sprintf("%s.transactions[%d].breakdown", root, i),
			breakdown: rpt.Breakdown,
		})
	}
	return validateBreakdownNote(ctx, v, models.SmallFullRelatedPartyTransactions, items, note.AdditionalInformation, tx, requestID)
}
