package validation

import (
	"github.com/epeers/company-accounts/internal/models"
)

// Error keys reported to clients
const (
	ErrKeyEmptyResource                  = "empty_resource"
	ErrKeyUnexpectedData                 = "unexpected_data"
	ErrKeyMandatoryElementMissing        = "mandatory_element_missing"
	ErrKeyValueRequired                  = "value_required"
	ErrKeyIncorrectTotal                 = "incorrect_total"
	ErrKeyNotEqualToCurrentBalanceSheet  = "value_not_equal_to_current_period_on_balance_sheet"
	ErrKeyNotEqualToPreviousBalanceSheet = "value_not_equal_to_previous_period_on_balance_sheet"
	ErrKeyShareholderFundsMismatch       = "shareholder_funds_mismatch"
	ErrKeyValueOutsideRange              = "value_outside_range"
	ErrKeyMaxLengthExceeded              = "max_length_exceeded"
	ErrKeyInvalidValue                   = "invalid_value"
	ErrKeyInvalidJSON                    = "invalid_json"
)

// collector gathers the errors of one validation pass and remembers which
// locations have failed
type collector struct {
	errs   *models.Errors
	failed map[string]bool
}

func newCollector() *collector {
	return &collector{errs: models.NewErrors(), failed: make(map[string]bool)}
}

func (c *collector) add(key, location string) {
	c.errs.AddError(models.NewError(key, location))
	c.failed[location] = true
}

func (c *collector) hasFailed(location string) bool {
	return c.failed[location]
}

type term struct {
	value *int64
	sign  int64
}

func plus(v *int64) term { return term{value: v, sign: 1} }
func minus(v *int64) term { return term{value: v, sign: -1} }

// checkTotal compares total with the signed sum of terms, absent values
// counting as zero. Nothing is checked when total and every term are absent.
// It reports whether the total is consistent.
func (c *collector) checkTotal(location string, total *int64, terms ...term) bool {
	present := total != nil
	var expected int64
	for _, t := range terms {
		if t.value != nil {
			present = true
			expected += t.sign * *t.value
		}
	}
	if !present {
		return true
	}
	if value(total) != expected {
		c.add(ErrKeyIncorrectTotal, location)
		return false
	}
	return true
}

// checkEqual compares a note figure with the matching balance sheet figure.
// A mismatch is reported when either is present and the values differ.
func (c *collector) checkEqual(key, location string, noteValue, balanceSheetValue *int64) {
	if noteValue == nil && balanceSheetValue == nil {
		return
	}
	if value(noteValue) != value(balanceSheetValue) {
		c.add(key, location)
	}
}

func value(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func anySet(values ...*int64) bool {
	for _, v := range values {
		if v != nil {
			return true
		}
	}
	return false
}

func balanceSheetMismatchKey(period models.PeriodType) string {
	if period == models.PeriodPrevious {
		return ErrKeyNotEqualToPreviousBalanceSheet
	}
	return ErrKeyNotEqualToCurrentBalanceSheet
}
