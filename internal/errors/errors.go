// Package errors provides custom error types for the fluxo API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that
// errors.Is matches copies made by Wrap and WithMessage against their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Profile errors.
var (
	ErrInvalidProfile       = &AppError{Code: "INVALID_PROFILE", Message: "Invalid profile identifier", StatusCode: http.StatusBadRequest}
	ErrConfirmationRequired = &AppError{Code: "CONFIRMATION_REQUIRED", Message: "This operation must be confirmed", StatusCode: http.StatusPreconditionRequired}
)

// Entry validation errors.
var (
	ErrInvalidAmount       = &AppError{Code: "INVALID_AMOUNT", Message: "Please fill in a positive amount", StatusCode: http.StatusBadRequest}
	ErrCategoryRequired    = &AppError{Code: "CATEGORY_REQUIRED", Message: "Please select a category", StatusCode: http.StatusBadRequest}
	ErrPaymentModeRequired = &AppError{Code: "PAYMENT_MODE_REQUIRED", Message: "Please choose between paying at once or in installments", StatusCode: http.StatusBadRequest}
	ErrSpendTypeRequired   = &AppError{Code: "SPEND_TYPE_REQUIRED", Message: "Please choose the spend type (Fixed or Variable)", StatusCode: http.StatusBadRequest}
	ErrTermRequired        = &AppError{Code: "TERM_REQUIRED", Message: "Please choose 'with end date' or 'without end date'", StatusCode: http.StatusBadRequest}
	ErrInvalidInstallments = &AppError{Code: "INVALID_INSTALLMENTS", Message: "Installment count is out of range", StatusCode: http.StatusBadRequest}
	ErrInvalidFlowType     = &AppError{Code: "INVALID_FLOW_TYPE", Message: "Flow type must be expense or income", StatusCode: http.StatusBadRequest}
	ErrInvalidDate         = &AppError{Code: "INVALID_DATE", Message: "Dates must use the YYYY-MM-DD format", StatusCode: http.StatusBadRequest}
)

// Category errors.
var (
	ErrCategoryNotFound  = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCategory = &AppError{Code: "DUPLICATE_CATEGORY", Message: "This category already exists", StatusCode: http.StatusConflict}
)

// Payment method errors.
var (
	ErrPaymentMethodNotFound  = &AppError{Code: "PAYMENT_METHOD_NOT_FOUND", Message: "Bank or card not found", StatusCode: http.StatusNotFound}
	ErrDuplicatePaymentMethod = &AppError{Code: "DUPLICATE_PAYMENT_METHOD", Message: "This bank or card already exists", StatusCode: http.StatusConflict}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)
