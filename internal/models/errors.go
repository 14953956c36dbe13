package models

import (
	"encoding/json"
	"errors"
	"sort"
)

// ErrNilError is returned when a nil Error is offered to an Errors collection
var ErrNilError = errors.New("error must not be nil")

// LocationType describes how Error.Location should be interpreted
type LocationType string

const (
	LocationTypeJSONPath    LocationType = "json-path"
	LocationTypeRequestBody LocationType = "request-body"
)

// ErrorType classifies an Error
type ErrorType string

const (
	ErrorTypeValidation      ErrorType = "ch:validation"
	ErrorTypeIXBRLValidation ErrorType = "ch:ixbrl-validation"
)

// Error is a single validation failure. Two Errors are equal when every
// field, error values included, is equal.
type Error struct {
	Error        string            `json:"error"`
	ErrorValues  map[string]string `json:"error_values,omitempty"`
	Location     string            `json:"location"`
	LocationType LocationType      `json:"location_type"`
	Type         ErrorType         `json:"type"`
}

// NewError creates a json-path validation error
func NewError(err, location string) *Error {
	return &Error{
		Error:        err,
		Location:     location,
		LocationType: LocationTypeJSONPath,
		Type:         ErrorTypeValidation,
	}
}

// AddErrorValue attaches a key/value pair describing the failure. Values
// must be added before the error is placed in a collection.
func (e *Error) AddErrorValue(key, value string) *Error {
	if e.ErrorValues == nil {
		e.ErrorValues = make(map[string]string)
	}
	e.ErrorValues[key] = value
	return e
}

// key returns the value identity of the error. encoding/json sorts map keys,
// so equal errors always produce equal keys.
func (e *Error) key() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Errors is a set of validation errors gathered during one validation pass
type Errors struct {
	errs map[string]Error
}

// NewErrors creates an empty Errors collection
func NewErrors() *Errors {
	return &Errors{errs: make(map[string]Error)}
}

// AddError adds e to the collection, returning false if an equal error is
// already present
func (c *Errors) AddError(e *Error) (bool, error) {
	if e == nil {
		return false, ErrNilError
	}
	k := e.key()
	if _, exists := c.errs[k]; exists {
		return false, nil
	}
	stored := *e
	if e.ErrorValues != nil {
		stored.ErrorValues = make(map[string]string, len(e.ErrorValues))
		for key, v := range e.ErrorValues {
			stored.ErrorValues[key] = v
		}
	}
	c.errs[k] = stored
	return true, nil
}

// ContainsError reports whether an error equal to e is in the collection
func (c *Errors) ContainsError(e *Error) (bool, error) {
	if e == nil {
		return false, ErrNilError
	}
	_, exists := c.errs[e.key()]
	return exists, nil
}

// HasErrors reports whether any error has been collected
func (c *Errors) HasErrors() bool {
	return c != nil && len(c.errs) > 0
}

// ErrorCount returns the number of distinct errors
func (c *Errors) ErrorCount() int {
	if c == nil {
		return 0
	}
	return len(c.errs)
}

// Errors returns every collected error ordered by location then error key
func (c *Errors) Errors() []Error {
	if c == nil {
		return nil
	}
	out := make([]Error, 0, len(c.errs))
	for _, e := range c.errs {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Location != out[j].Location {
			return out[i].Location < out[j].Location
		}
		return out[i].Error < out[j].Error
	})
	return out
}

// Merge adds every error of other to the collection
func (c *Errors) Merge(other *Errors) {
	for _, e := range other.Errors() {
		c.AddError(&e)
	}
}

type errorsBody struct {
	Errors []Error `json:"errors"`
}

func (c *Errors) MarshalJSON() ([]byte, error) {
	errs := c.Errors()
	if errs == nil {
		errs = []Error{}
	}
	return json.Marshal(errorsBody{Errors: errs})
}

func (c *Errors) UnmarshalJSON(b []byte) error {
	var body errorsBody
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}
	c.errs = make(map[string]Error, len(body.Errors))
	for i := range body.Errors {
		if _, err := c.AddError(&body.Errors[i]); err != nil {
			return err
		}
	}
	return nil
}
