package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("month", validateMonth)
	_ = v.RegisterValidation("category_type", validateCategoryType)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("account_type", validateAccountType)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

var (
	moneyPattern = regexp.MustCompile(`^-?\d+(\.\d{1,2})?$`)
	monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

// validateMoney validates that an amount is a decimal string with at most 2
// decimal places. Sign handling is left to the individual endpoints since
// budgeted amounts reject negatives while balances allow them.
func validateMoney(fl validator.FieldLevel) bool {
	return moneyPattern.MatchString(fl.Field().String())
}

// validateMonth validates the YYYY-MM month format
func validateMonth(fl validator.FieldLevel) bool {
	return monthPattern.MatchString(fl.Field().String())
}

// validateCategoryType validates that category type is one of the allowed types
func validateCategoryType(fl validator.FieldLevel) bool {
	validTypes := map[string]bool{
		"fixed":     true,
		"variable":  true,
		"quarterly": true,
		"income":    true,
	}
	return validTypes[fl.Field().String()]
}

// validateTransactionType validates that transaction type is one of the allowed types
func validateTransactionType(fl validator.FieldLevel) bool {
	validTypes := map[string]bool{
		"income":  true,
		"expense": true,
	}
	return validTypes[fl.Field().String()]
}

// validateAccountType validates that account type is one of the allowed types
func validateAccountType(fl validator.FieldLevel) bool {
	validTypes := map[string]bool{
		"checking": true,
		"savings":  true,
		"cash":     true,
		"credit":   true,
	}
	return validTypes[fl.Field().String()]
}
