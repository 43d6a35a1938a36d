package errors

import (
	"net/http"
	"strings"

	"vidtube/internal/errors"
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

// Is lets a detailed copy still match its catalogue entry with errors.Is.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"Malformed resource identifier",
		"",
	)

	ErrMissingMedia = NewBaseError(
		http.StatusBadRequest,
		"MISSING_MEDIA",
		"A required media file is missing",
		"",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PASSWORD",
		"Current password is incorrect",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized request",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
		"",
	)

	ErrRefreshTokenReused = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_REUSED",
		"token reused",
		"",
	)

	ErrRefreshTokenStale = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_STALE",
		"Refresh token was rotated by a concurrent request",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid user credentials",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Something went wrong while generating access and refresh token",
		"",
	)

	// Authorization-related errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You are not the owner of this resource",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User does not exist",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"User with this email or username already exists",
		"",
	)

	// Resource-related errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrVideoNotFound = NewBaseError(
		http.StatusNotFound,
		"VIDEO_NOT_FOUND",
		"Video not found",
		"",
	)

	// Upstream-related errors
	ErrUpstreamFailure = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_FAILURE",
		"A remote dependency failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return ErrUpstreamFailure.ErrorCode()
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// UpstreamError is a failure of remote storage or the database observed by the media
// orchestrator. Cause decides the reported kind; compensation errors are only attached
// as secondary detail.
type UpstreamError struct {
	cause        error
	compensation []error
	details      string
}

// NewUpstreamError creates an UpstreamError around cause with optional compensation failures.
func NewUpstreamError(cause error, details string, compensation ...error) *UpstreamError {
	var kept []error
	for _, err := range compensation {
		if err != nil {
			kept = append(kept, err)
		}
	}

	return &UpstreamError{cause: cause, compensation: kept, details: details}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	msg := e.details
	if e.cause != nil {
		msg = msg + ": " + e.cause.Error()
	}
	if len(e.compensation) > 0 {
		msg = msg + " (compensation: " + joinErrors(e.compensation) + ")"
	}

	return msg
}

// Unwrap exposes the primary cause so callers can still match its kind.
func (e *UpstreamError) Unwrap() error {
	return e.cause
}

// Compensation returns the errors raised while rolling back.
func (e *UpstreamError) Compensation() []error {
	return e.compensation
}

// primary returns the AppError the cause already carries, if any.
func (e *UpstreamError) primary() AppError {
	if e.cause == nil {
		return nil
	}
	var appErr AppError
	if errors.As(e.cause, &appErr) {
		return appErr
	}

	return nil
}

// HTTPCode returns the primary cause's status, defaulting to 502.
func (e *UpstreamError) HTTPCode() int {
	if p := e.primary(); p != nil {
		return p.HTTPCode()
	}

	return ErrUpstreamFailure.HTTPCode()
}

// ErrorCode returns the primary cause's code, defaulting to UPSTREAM_FAILURE.
func (e *UpstreamError) ErrorCode() string {
	if p := e.primary(); p != nil {
		return p.ErrorCode()
	}

	return ErrUpstreamFailure.ErrorCode()
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	if p := e.primary(); p != nil {
		return p.Message()
	}

	return ErrUpstreamFailure.Message()
}

// Details lists the failing step followed by any compensation failures.
func (e *UpstreamError) Details() string {
	parts := []string{e.details}
	if len(e.compensation) > 0 {
		parts = append(parts, "compensation errors: "+joinErrors(e.compensation))
	}

	return strings.Join(parts, "; ")
}

func joinErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return strings.Join(msgs, "; ")
}
