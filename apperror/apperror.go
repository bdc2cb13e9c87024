// Package apperror defines the application's error taxonomy and its mapping to
// HTTP responses. Every error that crosses the handler boundary is either an
// *AppError or gets wrapped into one, so clients always receive the same
// {"detail": "..."} shape with a status code determined by the error type.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an AppError for status-code mapping.
type ErrorType int

const (
	// UnknownError is for unspecified errors.
	UnknownError ErrorType = iota
	// DatabaseError represents an error originating from the database.
	DatabaseError
	// ConfigError represents an error related to application configuration.
	ConfigError
	// MigrationError represents an error during database migrations.
	MigrationError
	// ValidationError represents an input validation error.
	ValidationError
	// BadRequestError represents a generic malformed request.
	BadRequestError
	// DuplicateEmailError is returned when a signup email is already taken.
	DuplicateEmailError
	// InvalidCredentialsError is the collapsed login failure: the same error is
	// used for an unknown email and for a wrong password.
	InvalidCredentialsError
	// UnauthenticatedError covers every rejection on a protected route:
	// missing/malformed Authorization header, bad or expired token, or a token
	// whose subject no longer exists.
	UnauthenticatedError
	// NotFoundError represents a resource not found error.
	NotFoundError
	// InternalError represents a generic internal server error.
	InternalError
)

// AppError is the application error type. Message is what clients see; Err is
// the wrapped internal cause and never leaves the process.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error so errors.Is/As can walk the chain.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the error type.
//
// Two mappings here are part of the observed external contract: login failures
// and duplicate signups are 400, and unauthenticated access to protected
// routes is 403, not 401.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError, BadRequestError, DuplicateEmailError, InvalidCredentialsError:
		return http.StatusBadRequest
	case UnauthenticatedError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case DatabaseError, ConfigError, MigrationError, InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError of an arbitrary type.
func NewAppError(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlying,
	}
}

// NewDatabaseError creates a new DatabaseError.
func NewDatabaseError(message string, underlying error) *AppError {
	return NewAppError(DatabaseError, message, underlying)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, underlying error) *AppError {
	return NewAppError(ConfigError, message, underlying)
}

// NewMigrationError creates a new MigrationError.
func NewMigrationError(message string, underlying error) *AppError {
	return NewAppError(MigrationError, message, underlying)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string, underlying error) *AppError {
	return NewAppError(ValidationError, message, underlying)
}

// NewBadRequestError creates a new BadRequestError.
func NewBadRequestError(message string, underlying error) *AppError {
	return NewAppError(BadRequestError, message, underlying)
}

// NewDuplicateEmailError creates a new DuplicateEmailError.
func NewDuplicateEmailError(message string, underlying error) *AppError {
	return NewAppError(DuplicateEmailError, message, underlying)
}

// NewInvalidCredentialsError creates a new InvalidCredentialsError.
func NewInvalidCredentialsError(message string, underlying error) *AppError {
	return NewAppError(InvalidCredentialsError, message, underlying)
}

// NewUnauthenticatedError creates a new UnauthenticatedError.
func NewUnauthenticatedError(message string, underlying error) *AppError {
	return NewAppError(UnauthenticatedError, message, underlying)
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(message string, underlying error) *AppError {
	return NewAppError(NotFoundError, message, underlying)
}

// NewInternalError creates a new InternalError.
func NewInternalError(message string, underlying error) *AppError {
	return NewAppError(InternalError, message, underlying)
}

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Detail string `json:"detail" example:"A description of the error"`
}

// ToResponse converts an AppError to its client-facing body. Only Message is
// exposed; the wrapped cause stays internal.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Detail: e.Message}
}

// FromError attempts to convert a generic error to an *AppError.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether an error in the chain is a NotFoundError.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsDuplicateEmail reports whether an error in the chain is a DuplicateEmailError.
func IsDuplicateEmail(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == DuplicateEmailError
}

// IsInvalidCredentials reports whether an error in the chain is an InvalidCredentialsError.
func IsInvalidCredentials(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == InvalidCredentialsError
}

// IsUnauthenticated reports whether an error in the chain is an UnauthenticatedError.
func IsUnauthenticated(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == UnauthenticatedError
}
