package validation

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/epeers/company-accounts/internal/models"
)

type tracedValidator struct {
	next NoteValidator
}

// Traced wraps nv so every call logs its entry, duration and outcome
func Traced(nv NoteValidator) NoteValidator {
	if _, ok := nv.(*tracedValidator); ok {
		return nv
	}
	return &tracedValidator{next: nv}
}

func (t *tracedValidator) AccountsNote() models.AccountingNoteType {
	return t.next.AccountsNote()
}

func (t *tracedValidator) Validate(ctx context.Context, note models.Note, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error) {
	start := time.Now()
	entry := log.WithFields(log.Fields{
		"note":                t.next.AccountsNote().String(),
		"company_accounts_id": companyAccountsID,
		"request_id":          requestID,
	})
	entry.Debug("validating note")

	errs, err := t.next.Validate(ctx, note, tx, companyAccountsID, requestID)

	entry = entry.WithField("duration_ms", time.Since(start).Milliseconds())
	if err != nil {
		entry.WithError(err).Error("note validation failed")
		return nil, err
	}
	entry.WithField("error_count", errs.ErrorCount()).Debug("note validated")
	return errs, nil
}
