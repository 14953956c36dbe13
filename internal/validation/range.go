package validation

import (
	"errors"
	"fmt"
)

// ErrIllegalArgument is returned when a range or range check is given
// unusable arguments
var ErrIllegalArgument = errors.New("illegal argument")

// Range is an inclusive integer interval
type Range struct {
	start int64
	end   int64
}

// NewRange creates the interval [start, end]. start must be strictly less
// than end.
func NewRange(start, end int64) (*Range, error) {
	if start >= end {
		return nil, fmt.Errorf("%w: range start %d must be less than end %d", ErrIllegalArgument, start, end)
	}
	return &Range{start: start, end: end}, nil
}

// MustRange is like NewRange but panics on invalid bounds
func MustRange(start, end int64) *Range {
	r, err := NewRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Range) Start() int64 { return r.start }

func (r *Range) End() int64 { return r.end }

// InRangeInclusive reports whether start <= value <= end
func (r *Range) InRangeInclusive(value *int64) (bool, error) {
	if value == nil {
		return false, fmt.Errorf("%w: value must not be nil", ErrIllegalArgument)
	}
	return r.start <= *value && *value <= r.end, nil
}

// Accepted ranges of submitted figures
var (
	AccountsValueRange       = MustRange(0, 99_999_999)
	SignedAccountsValueRange = MustRange(-99_999_999, 99_999_999)
	EmployeeCountRange       = MustRange(0, 99_999)
)
