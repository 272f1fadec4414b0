package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound = errors.New("resource not found")
	ErrInternal = errors.New("internal error")
	ErrDatabase = errors.New("database error")

	// ErrValidation rejects input before anything is persisted: missing
	// name, zero fields, empty script path.
	ErrValidation = errors.New("validation failed")
	// ErrDocumentOpen marks an unreadable or corrupt input document.
	// Surfaced to the caller, never retried.
	ErrDocumentOpen = errors.New("document open failed")
	// ErrInvalidTemplate marks zero or degenerate reference dimensions.
	ErrInvalidTemplate = errors.New("invalid template")
	// ErrScheduling marks a malformed recurrence specification. The job
	// is left unscheduled; startup continues.
	ErrScheduling = errors.New("scheduling failed")
	// ErrExecution marks a script launch failure or non-zero exit. It is
	// recorded on the job row and never propagated as a crash.
	ErrExecution = errors.New("execution failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ValidationErrorf builds an ErrValidation-wrapping error for caller
// feedback before persistence.
func ValidationErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
