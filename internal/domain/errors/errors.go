// Package errors defines the application error contract shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"wayfarer/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"this email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"email or password is incorrect",
		"",
	)

	// Journey-related errors
	ErrJourneyNotFound = NewBaseError(
		http.StatusNotFound,
		"JOURNEY_NOT_FOUND",
		"journey not found",
		"",
	)

	ErrJourneyAlreadyExists = NewBaseError(
		http.StatusConflict,
		"JOURNEY_ALREADY_EXISTS",
		"a journey already exists for this user and start time",
		"",
	)

	// Public link errors
	ErrPublicLinkNotFound = NewBaseError(
		http.StatusNotFound,
		"PUBLIC_LINK_NOT_FOUND",
		"public link not found",
		"",
	)

	ErrPublicLinkRevoked = NewBaseError(
		http.StatusGone,
		"PUBLIC_LINK_REVOKED",
		"public link has been revoked",
		"",
	)
)

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"database operation failed",
		details,
	)
	if err != nil {
		return base.WithDetails(details + ": " + err.Error())
	}

	return base
}
