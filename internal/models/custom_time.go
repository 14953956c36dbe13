package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of accounting dates
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid accounting date")

// FlexibleDate is a calendar date in UTC. It accepts either an RFC3339
// timestamp or "YYYY-MM-DD" and is always written as "YYYY-MM-DD".
type FlexibleDate struct {
	time.Time
}

// NewFlexibleDate truncates t to a calendar date
func NewFlexibleDate(t time.Time) *FlexibleDate {
	return &FlexibleDate{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseFlexibleDate parses s in either accepted layout
func ParseFlexibleDate(s string) (*FlexibleDate, error) {
	for _, layout := range []string{DateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewFlexibleDate(t), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexibleDate) UnmarshalJSON(b []byte) error {
	d, err := ParseFlexibleDate(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*f = *d
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexibleDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f FlexibleDate) String() string {
	return f.Format(DateLayout)
}
