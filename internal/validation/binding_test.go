package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epeers/company-accounts/internal/models"
)

func newBindingValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterBindingValidations(v))
	return v
}

func TestBinding_RangeTags(t *testing.T) {
	v := newBindingValidator(t)

	valid := &models.Debtors{CurrentPeriod: &models.DebtorsPeriod{TradeDebtors: ptr(0), Total: ptr(99_999_999)}}
	assert.NoError(t, v.Struct(valid))

	invalid := &models.Debtors{CurrentPeriod: &models.DebtorsPeriod{Total: ptr(100_000_000)}}
	err := v.Struct(invalid)
	require.Error(t, err)

	errs := BindingErrors(err, models.SmallFullDebtors.JSONPath())
	expected := models.NewError(ErrKeyValueOutsideRange, "$.debtors.current_period.total").
		AddErrorValue("lower", "0").
		AddErrorValue("upper", "99999999")
	ok, _ := errs.ContainsError(expected)
	assert.True(t, ok, "%+v", errs.Errors())
	assert.Equal(t, 1, errs.ErrorCount())
}

func TestBinding_SignedAndEmployeeRanges(t *testing.T) {
	v := newBindingValidator(t)

	assets := &models.TangibleAssets{Total: &models.TangibleAssetsResource{
		Cost: &models.AssetCost{Revaluations: ptr(-500)},
	}}
	assert.NoError(t, v.Struct(assets))

	assets.Total.Cost.Additions = ptr(-1)
	err := v.Struct(assets)
	require.Error(t, err)
	errs := BindingErrors(err, models.SmallFullTangibleAssets.JSONPath())
	require.Equal(t, 1, errs.ErrorCount())
	assert.Equal(t, "$.tangible_assets.total.cost.additions", errs.Errors()[0].Location)

	employees := &models.Employees{CurrentPeriod: &models.EmployeesPeriod{AverageNumberOfEmployees: ptr(100_000)}}
	err = v.Struct(employees)
	require.Error(t, err)
	errs = BindingErrors(err, models.SmallFullEmployees.JSONPath())
	assert.Equal(t, "99999", errs.Errors()[0].ErrorValues["upper"])
}

func TestBinding_RequiredInSlice(t *testing.T) {
	v := newBindingValidator(t)

	note := &models.LoansToDirectors{Loans: []models.Loan{{Description: "Loan"}}}
	err := v.Struct(note)
	require.Error(t, err)

	errs := BindingErrors(err, models.SmallFullLoansToDirectors.JSONPath())
	ok, _ := errs.ContainsError(models.NewError(ErrKeyMandatoryElementMissing, "$.loans_to_directors.loans[0].director_name"))
	assert.True(t, ok, "%+v", errs.Errors())
}

func TestBindingErrors_JSONFailures(t *testing.T) {
	var note models.Debtors
	err := json.Unmarshal([]byte(`{"current_period":{"total":"ten"}}`), &note)
	require.Error(t, err)

	errs := BindingErrors(err, "$.debtors")
	ok, _ := errs.ContainsError(models.NewError(ErrKeyInvalidValue, "$.debtors.current_period.total"))
	assert.True(t, ok, "%+v", errs.Errors())

	err = json.Unmarshal([]byte(`{"current_period":`), &note)
	require.Error(t, err)
	errs = BindingErrors(err, "$.debtors")
	require.Equal(t, 1, errs.ErrorCount())
	assert.Equal(t, ErrKeyInvalidJSON, errs.Errors()[0].Error)
	assert.Equal(t, models.LocationTypeRequestBody, errs.Errors()[0].LocationType)
}
