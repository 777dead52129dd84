package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError(map[string]string{"rating": "must be between 1 and 5", "authorName": "is required"})

	assert.True(t, errors.Is(err, ValidationFailed))
	assert.True(t, errors.Is(fmt.Errorf("submit review: %w", err), ValidationFailed))
	assert.Equal(t, "validation failed: authorName: is required; rating: must be between 1 and 5", err.Error())

	var verr ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestNewValidationError_NoFields(t *testing.T) {
	assert.NoError(t, NewValidationError(nil))
	assert.NoError(t, NewValidationError(map[string]string{}))
}
