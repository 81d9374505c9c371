// Package errors provides custom error types for the Momentum API.
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
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
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

// Transaction errors.
var (
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Transaction type must be income or expense", StatusCode: http.StatusBadRequest}
	ErrInvalidDateRange       = &AppError{Code: "INVALID_DATE_RANGE", Message: "Invalid date range", StatusCode: http.StatusBadRequest}
)

// Budget errors.
var (
	ErrBudgetNotFound  = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
	ErrDuplicateBudget = &AppError{Code: "DUPLICATE_BUDGET", Message: "An active budget already exists for this category", StatusCode: http.StatusConflict}
)

// Savings goal errors.
var (
	ErrSavingsGoalNotFound = &AppError{Code: "SAVINGS_GOAL_NOT_FOUND", Message: "Savings goal not found", StatusCode: http.StatusNotFound}
)

// Task and note errors.
var (
	ErrTaskNotFound = &AppError{Code: "TASK_NOT_FOUND", Message: "Task not found", StatusCode: http.StatusNotFound}
	ErrNoteNotFound = &AppError{Code: "NOTE_NOT_FOUND", Message: "Note not found", StatusCode: http.StatusNotFound}
)

// Habit errors.
var (
	ErrHabitNotFound     = &AppError{Code: "HABIT_NOT_FOUND", Message: "Habit not found", StatusCode: http.StatusNotFound}
	ErrHabitConflict     = &AppError{Code: "HABIT_CONFLICT", Message: "Habit was modified concurrently, please retry", StatusCode: http.StatusConflict}
	ErrNoHabitsToAnalyze = &AppError{Code: "NO_HABITS", Message: "No habits to analyze", StatusCode: http.StatusBadRequest}
)

// AI dependency errors.
var (
	ErrAIUnavailable = &AppError{Code: "AI_UNAVAILABLE", Message: "AI service is temporarily unavailable", StatusCode: http.StatusBadGateway}
)
