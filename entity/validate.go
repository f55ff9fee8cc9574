package entity

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// MissingFields returns the json names of required fields that are empty on
// record, in declaration order. Errors other than failed "required" checks
// are returned as is.
func MissingFields(record Record) ([]string, error) {
	err := validate.Struct(record)
	if err == nil {
		return nil, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, err
	}

	missing := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		if fieldErr.Tag() != "required" {
			return nil, err
		}
		missing = append(missing, fieldErr.Field())
	}
	return missing, nil
}
