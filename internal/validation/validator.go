// Package validation checks submitted accounts for cross-field consistency.
// Field ranges are enforced by binding tags before these rules run.
package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/epeers/company-accounts/internal/factory"
	"github.com/epeers/company-accounts/internal/models"
)

var (
	// ErrDataAccess wraps failures of collaborators consulted during
	// validation. No validation result accompanies it.
	ErrDataAccess = errors.New("data access failure during validation")
	ErrNoteType   = errors.New("note type does not match validator")
)

// CompanyService classifies the company a transaction files for
type CompanyService interface {
	IsMultipleYearFiler(ctx context.Context, tx *models.Transaction, requestID string) (bool, error)
}

// BalanceSheetReader returns the stored balance sheet of a period, or nil
// when the period has not been submitted
type BalanceSheetReader interface {
	GetBalanceSheet(ctx context.Context, companyAccountsID string, period models.PeriodType, requestID string) (*models.BalanceSheet, error)
}

// Validator holds the collaborators shared by every note and balance sheet
// rule set
type Validator struct {
	companies     CompanyService
	balanceSheets BalanceSheetReader
}

// NewValidator creates a Validator. balanceSheets may be nil, in which case
// notes are not compared with the balance sheet.
func NewValidator(companies CompanyService, balanceSheets BalanceSheetReader) *Validator {
	return &Validator{companies: companies, balanceSheets: balanceSheets}
}

func (v *Validator) isMultipleYearFiler(ctx context.Context, tx *models.Transaction, requestID string) (bool, error) {
	multi, err := v.companies.IsMultipleYearFiler(ctx, tx, requestID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrDataAccess, err)
	}
	return multi, nil
}

// sheetCache loads each period's balance sheet at most once per pass
type sheetCache struct {
	reader            BalanceSheetReader
	companyAccountsID string
	requestID         string
	sheets            map[models.PeriodType]*models.BalanceSheet
}

func (v *Validator) newSheetCache(companyAccountsID, requestID string) *sheetCache {
	return &sheetCache{
		reader:            v.balanceSheets,
		companyAccountsID: companyAccountsID,
		requestID:         requestID,
		sheets:            make(map[models.PeriodType]*models.BalanceSheet),
	}
}

func (s *sheetCache) get(ctx context.Context, period models.PeriodType) (*models.BalanceSheet, error) {
	if s.reader == nil {
		return nil, nil
	}
	if bs, ok := s.sheets[period]; ok {
		return bs, nil
	}
	bs, err := s.reader.GetBalanceSheet(ctx, s.companyAccountsID, period, s.requestID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataAccess, err)
	}
	s.sheets[period] = bs
	return bs, nil
}

// NoteValidator validates the notes of one accounting note type
type NoteValidator interface {
	AccountsNote() models.AccountingNoteType
	Validate(ctx context.Context, note models.Note, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error)
}

type validateFunc[T any] func(ctx context.Context, note *T, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error)

type notePointer[T any] interface {
	*T
	models.Note
}

type noteValidator[T any, PT notePointer[T]] struct {
	key      models.AccountingNoteType
	validate validateFunc[T]
}

func newNoteValidator[T any, PT notePointer[T]](key models.AccountingNoteType, fn validateFunc[T]) NoteValidator {
	return &noteValidator[T, PT]{key: key, validate: fn}
}

func (n *noteValidator[T, PT]) AccountsNote() models.AccountingNoteType {
	return n.key
}

func (n *noteValidator[T, PT]) Validate(ctx context.Context, note models.Note, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error) {
	typed, ok := note.(PT)
	if !ok || (*T)(typed) == nil {
		return nil, fmt.Errorf("%w: %s validator got %T", ErrNoteType, n.key, note)
	}
	return n.validate(ctx, (*T)(typed), tx, companyAccountsID, requestID)
}

// NoteValidators returns a validator for every supported note type
func NoteValidators(v *Validator) []NoteValidator {
	return []NoteValidator{
		newNoteValidator(models.SmallFullDebtors, v.ValidateDebtors),
		newNoteValidator(models.SmallFullStocks, v.ValidateStocks),
		newNoteValidator(models.SmallFullEmployees, v.ValidateEmployees),
		newNoteValidator(models.SmallFullTangibleAssets, v.ValidateTangibleAssets),
		newNoteValidator(models.SmallFullIntangibleAssets, v.ValidateIntangibleAssets),
		newNoteValidator(models.SmallFullCreditorsWithinOneYear, v.ValidateCreditorsWithinOneYear),
		newNoteValidator(models.SmallFullCreditorsAfterOneYear, v.ValidateCreditorsAfterOneYear),
		newNoteValidator(models.SmallFullLoansToDirectors, v.ValidateLoansToDirectors),
		newNoteValidator(models.SmallFullRelatedPartyTransactions, v.ValidateRelatedPartyTransactions),
	}
}

// NoteValidatorFactory resolves the validator for an accounting note type
type NoteValidatorFactory = factory.Table[models.AccountingNoteType, NoteValidator]

// NewNoteValidatorFactory builds the factory from validators, wrapping each
// with call tracing
func NewNoteValidatorFactory(validators []NoteValidator) *NoteValidatorFactory {
	traced := make([]NoteValidator, 0, len(validators))
	for _, nv := range validators {
		traced = append(traced, Traced(nv))
	}
	return factory.NewTable("note validator", traced, NoteValidator.AccountsNote)
}
