// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fluxo/internal/ledger"
)

var (
	profileIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	yearMonthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("flow_type", validateFlowType)
		_ = v.RegisterValidation("spend_type", validateSpendType)
		_ = v.RegisterValidation("payment_method", validatePaymentMethod)
		_ = v.RegisterValidation("year_month", validateYearMonth)
		_ = v.RegisterValidation("profile_id", validateProfileID)
		_ = v.RegisterValidation("term", validateTerm)
	}
}

func validateFlowType(fl validator.FieldLevel) bool {
	return ledger.FlowType(fl.Field().String()).Valid()
}

func validateSpendType(fl validator.FieldLevel) bool {
	switch ledger.SpendType(fl.Field().String()) {
	case ledger.SpendFixed, ledger.SpendVariable:
		return true
	}
	return false
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return ledger.PaymentMethod(fl.Field().String()).Valid()
}

func validateYearMonth(fl validator.FieldLevel) bool {
	return yearMonthRegex.MatchString(fl.Field().String())
}

func validateProfileID(fl validator.FieldLevel) bool {
	return profileIDRegex.MatchString(fl.Field().String())
}

func validateTerm(fl validator.FieldLevel) bool {
	switch ledger.TermMode(fl.Field().String()) {
	case ledger.TermWithEndDate, ledger.TermOpenEnded:
		return true
	}
	return false
}
