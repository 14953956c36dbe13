package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors_AddSameValueTwice(t *testing.T) {
	errs := NewErrors()

	first := NewError("incorrect_total", "$.debtors.current_period.total")
	second := NewError("incorrect_total", "$.debtors.current_period.total")

	added, err := errs.AddError(first)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = errs.AddError(second)
	require.NoError(t, err)
	assert.False(t, added, "an equal error must not be added twice")

	assert.Equal(t, 1, errs.ErrorCount())
	assert.True(t, errs.HasErrors())

	contains, err := errs.ContainsError(NewError("incorrect_total", "$.debtors.current_period.total"))
	require.NoError(t, err)
	assert.True(t, contains, "containment is by value, not identity")
}

func TestErrors_EqualityCoversEveryField(t *testing.T) {
	base := func() *Error { return NewError("unexpected_data", "$.stocks.previous_period") }

	variants := []*Error{
		base(),
		NewError("unexpected_data", "$.stocks"),
		NewError("incorrect_total", "$.stocks.previous_period"),
		base().AddErrorValue("lower", "0"),
		func() *Error { e := base(); e.LocationType = LocationTypeRequestBody; return e }(),
		func() *Error { e := base(); e.Type = ErrorTypeIXBRLValidation; return e }(),
	}

	errs := NewErrors()
	for _, v := range variants {
		added, err := errs.AddError(v)
		require.NoError(t, err)
		assert.True(t, added)
	}
	assert.Equal(t, len(variants), errs.ErrorCount())
}

func TestErrors_ErrorValuesOrderIrrelevant(t *testing.T) {
	errs := NewErrors()
	a := NewError("value_outside_range", "$.x").AddErrorValue("lower", "0").AddErrorValue("upper", "99")
	b := NewError("value_outside_range", "$.x").AddErrorValue("upper", "99").AddErrorValue("lower", "0")

	_, err := errs.AddError(a)
	require.NoError(t, err)
	contains, err := errs.ContainsError(b)
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestErrors_StoredErrorIsIsolated(t *testing.T) {
	errs := NewErrors()
	e := NewError("invalid_value", "$.x").AddErrorValue("k", "v")
	_, err := errs.AddError(e)
	require.NoError(t, err)

	e.ErrorValues["k"] = "changed"
	assert.Equal(t, "v", errs.Errors()[0].ErrorValues["k"])
}

func TestErrors_NilError(t *testing.T) {
	errs := NewErrors()

	_, err := errs.AddError(nil)
	assert.ErrorIs(t, err, ErrNilError)

	_, err = errs.ContainsError(nil)
	assert.ErrorIs(t, err, ErrNilError)

	assert.False(t, errs.HasErrors())
}

func TestErrors_JSONRoundTrip(t *testing.T) {
	errs := NewErrors()
	errs.AddError(NewError("incorrect_total", "$.stocks.current_period.total"))
	errs.AddError(NewError("empty_resource", "$.debtors"))

	body, err := json.Marshal(errs)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors":[
		{"error":"empty_resource","location":"$.debtors","location_type":"json-path","type":"ch:validation"},
		{"error":"incorrect_total","location":"$.stocks.current_period.total","location_type":"json-path","type":"ch:validation"}
	]}`, string(body))

	var decoded Errors
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, 2, decoded.ErrorCount())
}

func TestErrors_NilCollection(t *testing.T) {
	var errs *Errors
	assert.False(t, errs.HasErrors())
	assert.Equal(t, 0, errs.ErrorCount())
	assert.Nil(t, errs.Errors())
}
