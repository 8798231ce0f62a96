package helpers

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NewValidator registers the form tags used by the admin and menu forms:
//
//	choice=Field  value must be one of the strings in sibling slice Field
//	price         value must parse as a non-negative decimal
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("choice", validateChoice)
	_ = v.RegisterValidation("price", validatePrice)
	return v
}

func validateChoice(fl validator.FieldLevel) bool {
	choices := fl.Parent().FieldByName(fl.Param())
	if !choices.IsValid() || choices.Kind() != reflect.Slice {
		return false
	}
	if fl.Field().Kind() != reflect.String {
		return false
	}

	value := fl.Field().String()
	for i := 0; i < choices.Len(); i++ {
		if choices.Index(i).String() == value {
			return true
		}
	}
	return false
}

func validatePrice(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative()
}
