// Package errors provides custom error types for the Patrimonio API.
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

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Portfolio errors.
var (
	ErrPortfolioNotFound = &AppError{Code: "PORTFOLIO_NOT_FOUND", Message: "Portfolio not found", StatusCode: http.StatusNotFound}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Chat errors.
var (
	ErrMessageRequired   = &AppError{Code: "MESSAGE_REQUIRED", Message: "Message is required", StatusCode: http.StatusBadRequest}
	ErrChatNotConfigured = &AppError{Code: "CHAT_NOT_CONFIGURED", Message: "API key not configured", StatusCode: http.StatusInternalServerError}
	ErrChatUpstream      = &AppError{Code: "CHAT_UPSTREAM", Message: "Gemini API error", StatusCode: http.StatusInternalServerError}
)

// Price feed errors.
var (
	ErrPriceRateLimited = &AppError{Code: "PRICE_RATE_LIMITED", Message: "Rate limited", StatusCode: http.StatusTooManyRequests}
	ErrPriceTimeout     = &AppError{Code: "PRICE_TIMEOUT", Message: "Timeout fetching prices", StatusCode: http.StatusGatewayTimeout}
	ErrPriceUpstream    = &AppError{Code: "PRICE_UPSTREAM", Message: "Failed to fetch prices", StatusCode: http.StatusInternalServerError}
)
