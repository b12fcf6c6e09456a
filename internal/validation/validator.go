package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
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

	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("loan_type", validateLoanType)

	// shopspring decimals validate as positive, two-decimal-place amounts
	v.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func decimalToFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// Custom validation functions

// validateAccountNumber validates that an account number follows the expected format
// Format: exactly 10 digits
func validateAccountNumber(fl validator.FieldLevel) bool {
	accountNumber := fl.Field().String()
	if accountNumber == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^\d{10}$`, accountNumber)
	return matched
}

// validateAccountType validates that account type is one of the allowed types
func validateAccountType(fl validator.FieldLevel) bool {
	accountType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		"savings":       true,
		"current":       true,
		"fixed_deposit": true,
	}
	return validTypes[accountType]
}

// validateLoanType validates that loan type is one of the allowed types
func validateLoanType(fl validator.FieldLevel) bool {
	loanType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		"personal":  true,
		"home":      true,
		"auto":      true,
		"education": true,
	}
	return validTypes[loanType]
}

// validateMoneyAmount validates that a monetary amount is positive with at
// most 2 decimal places. Decimal fields reach here as float64 through the
// registered custom type func.
func validateMoneyAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().Float()
	if amount <= 0 {
		return false
	}

	d := decimal.NewFromFloat(amount)
	return d.Equal(d.Round(2))
}
