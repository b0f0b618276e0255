package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("digits", validateDigits)
	validate.RegisterValidation("notfuture", validateNotFuture)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateUrlParamID(param string) error {
	if strings.TrimSpace(param) == "" {
		return errors.New("id must not be empty")
	}
	if strings.ContainsAny(param, "/?&#") {
		return errors.New("id contains forbidden characters")
	}
	return nil
}

func validateDigits(fl validator.FieldLevel) bool {
	return IsDigitsOnly(fl.Field().String())
}

func validateNotFuture(fl validator.FieldLevel) bool {
	future, err := IsFutureDate(fl.Field().String())
	if err != nil {
		return false
	}
	return !future
}
