// Package errors provides custom error types for the moneybook API.
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
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password", StatusCode: http.StatusUnauthorized}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
	ErrInvalidToken       = &AppError{Code: "INVALID_TOKEN", Message: "Invalid or expired token", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "A user with this username already exists", StatusCode: http.StatusConflict}
)

// Category errors. Unknown category names are a client mistake, so they map
// to 400 rather than 404.
var (
	ErrInvalidCategory = &AppError{Code: "INVALID_CATEGORY", Message: "This category cannot be used", StatusCode: http.StatusBadRequest}
)

// Budget errors. The budget endpoints report lookup misses as 400, matching
// the published API contract.
var (
	ErrBudgetNotFound      = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found for this user", StatusCode: http.StatusBadRequest}
	ErrMissingDateRange    = &AppError{Code: "MISSING_DATE_RANGE", Message: "A start date and end date are required", StatusCode: http.StatusBadRequest}
	ErrMissingBudgetAmount = &AppError{Code: "MISSING_BUDGET_AMOUNT", Message: "A total budget amount is required", StatusCode: http.StatusBadRequest}
)

// Expenditure errors.
var (
	ErrExpenditureNotFound = &AppError{Code: "EXPENDITURE_NOT_FOUND", Message: "Expenditure not found for this user", StatusCode: http.StatusBadRequest}
	ErrMissingRequired     = &AppError{Code: "MISSING_REQUIRED_FIELD", Message: "Money, category, and expense date are required", StatusCode: http.StatusBadRequest}
	ErrNoExpenditures      = &AppError{Code: "NO_EXPENDITURES", Message: "No expenditures recorded yet", StatusCode: http.StatusNotFound}
)
