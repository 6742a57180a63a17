package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the operation clashes with existing state
// (duplicate tenant code, deleting a tenant that still owns entries).
var ErrConflict = errors.New("conflict")

// AppError carries a human readable message together with one of the
// sentinel errors above so callers can branch with errors.Is.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the sentinel kind and the underlying cause.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError builds an AppError of an arbitrary kind wrapping cause.
func NewAppError(kind error, message string, cause error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: cause}
}

// NewNotFoundError returns an ErrNotFound flavoured error.
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: message}
}

// NewValidationFailedError returns an ErrValidation flavoured error.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Kind: ErrValidation, Message: message}
}

// NewConflictError returns an ErrConflict flavoured error.
func NewConflictError(message string) *AppError {
	return &AppError{Kind: ErrConflict, Message: message}
}

// Message returns the user facing message of err when it is an AppError,
// otherwise the fallback.
func Message(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
