package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/epeers/company-accounts/internal/models"
)

// Binding tags for bounded figures
const (
	TagAccountsValue       = "accounts_value"
	TagAccountsSignedValue = "accounts_signed_value"
	TagEmployeeCount       = "employee_count"
)

var bindingRanges = map[string]*Range{
	TagAccountsValue:       AccountsValueRange,
	TagAccountsSignedValue: SignedAccountsValueRange,
	TagEmployeeCount:       EmployeeCountRange,
}

// RegisterBindingValidations registers the range tags on v and makes field
// errors report JSON names
func RegisterBindingValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	for tag, r := range bindingRanges {
		if err := v.RegisterValidation(tag, rangeValidation(r)); err != nil {
			return err
		}
	}
	return nil
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func rangeValidation(r *Range) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		switch field.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v := field.Int()
			ok, err := r.InRangeInclusive(&v)
			return err == nil && ok
		default:
			return false
		}
	}
}

// BindingErrors converts a request binding failure into client errors
// located under root
func BindingErrors(err error, root string) *models.Errors {
	errs := models.NewErrors()

	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			errs.AddError(fieldError(fe, root))
		}
	case errors.As(err, &typeErr):
		location := root
		if typeErr.Field != "" {
			location += "." + typeErr.Field
		}
		errs.AddError(models.NewError(ErrKeyInvalidValue, location))
	default:
		e := models.NewError(ErrKeyInvalidJSON, root)
		e.LocationType = models.LocationTypeRequestBody
		errs.AddError(e)
	}
	return errs
}

func fieldError(fe validator.FieldError, root string) *models.Error {
	location := root
	// namespace starts with the Go name of the bound struct
	if _, path, ok := strings.Cut(fe.Namespace(), "."); ok {
		location += "." + path
	}

	switch fe.Tag() {
	case TagAccountsValue, TagAccountsSignedValue, TagEmployeeCount:
		r := bindingRanges[fe.Tag()]
		return models.NewError(ErrKeyValueOutsideRange, location).
			AddErrorValue("lower", strconv.FormatInt(r.Start(), 10)).
			AddErrorValue("upper", strconv.FormatInt(r.End(), 10))
	case "required":
		return models.NewError(ErrKeyMandatoryElementMissing, location)
	case "max":
		return models.NewError(ErrKeyMaxLengthExceeded, location).
			AddErrorValue("max_length", fe.Param())
	default:
		return models.NewError(ErrKeyInvalidValue, location)
	}
}
