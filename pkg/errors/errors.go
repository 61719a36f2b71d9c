package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeValidation indicates a field failed validation
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeConflict indicates a conflict with existing data (unique keys)
	ErrorTypeConflict ErrorType = "CONFLICT"

	// ErrorTypeInternal indicates an unexpected store or server failure
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Field   string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewValidationError creates a validation error for the given field.
// The message is meant to be shown to API clients verbatim.
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Field:   field,
		Message: message,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConflict,
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// TypeOf returns the ErrorType carried by err, or ErrorTypeInternal when err
// is not an *AppError.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsNotFound reports whether err is a not found error
func IsNotFound(err error) bool {
	return err != nil && TypeOf(err) == ErrorTypeNotFound
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return err != nil && TypeOf(err) == ErrorTypeValidation
}

// IsConflict reports whether err is a conflict error
func IsConflict(err error) bool {
	return err != nil && TypeOf(err) == ErrorTypeConflict
}
