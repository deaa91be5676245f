package errors

import (
	"net/http"

	"roost/internal/errors"
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
	// Configuration errors: surfaced inline, nothing recovers them short
	// of a redeploy with the missing values present.
	ErrAuthNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"AUTH_NOT_CONFIGURED",
		"Authentication is not configured on this deployment",
		"",
	)

	ErrFacebookNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"FACEBOOK_NOT_CONFIGURED",
		"Facebook integration is not configured on this deployment",
		"",
	)

	// Session-related errors
	ErrNoSession = NewBaseError(
		http.StatusUnauthorized,
		"NO_SESSION",
		"You are not signed in",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please sign in again",
		"",
	)

	ErrRefreshRejected = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_REJECTED",
		"The session could not be refreshed",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrSignUpFailed = NewBaseError(
		http.StatusBadRequest,
		"SIGN_UP_FAILED",
		"The account could not be created",
		"",
	)

	ErrIdentityFetchFailed = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_FETCH_FAILED",
		"Your account details could not be loaded",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"The user could not be found",
		"",
	)

	// OAuth link errors
	ErrOAuthStateMissing = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_MISSING",
		"The link attempt is missing its state parameter",
		"",
	)

	ErrOAuthStateStale = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_STATE_STALE",
		"The link attempt is too old, please start over",
		"",
	)

	ErrOAuthCodeMissing = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_CODE_MISSING",
		"Facebook did not return an authorization code",
		"",
	)

	ErrOAuthExchangeFailed = NewBaseError(
		http.StatusBadGateway,
		"OAUTH_EXCHANGE_FAILED",
		"The authorization code could not be exchanged",
		"",
	)

	ErrPageFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"PAGE_FETCH_FAILED",
		"The list of manageable pages could not be fetched",
		"",
	)

	ErrPageNotCached = NewBaseError(
		http.StatusBadRequest,
		"PAGE_NOT_CACHED",
		"The selected page was not part of this link attempt",
		"",
	)

	ErrConnectionNotFound = NewBaseError(
		http.StatusNotFound,
		"CONNECTION_NOT_FOUND",
		"The connection could not be found",
		"",
	)

	ErrConnectionSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"CONNECTION_SAVE_FAILED",
		"The connection could not be saved",
		"",
	)

	// Data deletion errors
	ErrSignedRequestInvalid = NewBaseError(
		http.StatusBadRequest,
		"SIGNED_REQUEST_INVALID",
		"The signed request could not be verified",
		"",
	)

	ErrDeletionRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"DELETION_REQUEST_NOT_FOUND",
		"No deletion request matches that code",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"The submitted data failed validation",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"The database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong on our side",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The resource could not be found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"The resource conflicts with an existing one",
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

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "The database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
