// Package apperrors defines the sentinel errors services return and the
// CustomError wrapper that carries a user-facing message alongside them.
// middleware.HandleAPIError maps these to HTTP responses.
package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Coach errors
var (
	ErrCoachNotFound      = errors.New("coach not found")
	ErrCoachAlreadyExists = errors.New("coach profile already exists for this user")
	ErrNotACoach          = errors.New("user is not a coach")
)

// Session offering errors
var (
	ErrOfferingNotFound = errors.New("session offering not found")
	ErrNotOfferingOwner = errors.New("session offering belongs to another coach")
)

// NewValidationError wraps ErrValidationFailed with the failed rule's
// message, so errors.Is matching and the user-facing text both survive
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError pairs a sentinel error with a human-readable message
type CustomError struct {
	Err     error
	Message string
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *CustomError) Unwrap() error {
	return e.Err
}
