package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("create user: %w", NewValidationError("name", "Name must be at least 2 characters long"))

	assert.Equal(t, ErrorTypeValidation, TypeOf(wrapped))
	assert.Equal(t, ErrorTypeNotFound, TypeOf(NewNotFoundError("User not found")))
	assert.Equal(t, ErrorTypeInternal, TypeOf(errors.New("boom")))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("email", "Must provide a valid email address")))
	assert.True(t, IsNotFound(NewNotFoundError("Review not found")))
	assert.True(t, IsConflict(NewConflictError("email already registered", errors.New("23505"))))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsValidation(NewInternalError("failed", nil)))
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError("failed to list users", cause)

	assert.Equal(t, "INTERNAL: failed to list users: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	v := NewValidationError("rating", "Rating must be between 1 and 5")
	assert.Equal(t, "VALIDATION: Rating must be between 1 and 5", v.Error())
	assert.Equal(t, "rating", v.Field)
}
