package common

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewAppError("DB", "write failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "DB: write failed: disk full", err.Error())

	bare := NewAppError("DB", "write failed", nil)
	assert.Equal(t, "DB: write failed", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	wrapped := WrapError(ErrDocumentOpen, "read field")
	assert.ErrorIs(t, wrapped, ErrDocumentOpen)
	assert.Contains(t, wrapped.Error(), "read field")
}

func TestValidationErrorf(t *testing.T) {
	err := ValidationErrorf("field %d has no name", 2)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "field 2 has no name")
}

func TestContextRoundTrip(t *testing.T) {
	ctx := WithJobID(WithRunID(context.Background(), "r-1"), "j-1")

	assert.Equal(t, "r-1", RunIDFromContext(ctx))
	assert.Equal(t, "j-1", JobIDFromContext(ctx))

	// Untagged contexts yield empty values, not panics.
	assert.Empty(t, RunIDFromContext(context.Background()))
	assert.Empty(t, JobIDFromContext(context.Background()))
}
