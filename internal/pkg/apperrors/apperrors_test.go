package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	assert.True(t, IsValidation(Validation("empty selection")))
	assert.True(t, IsNotFound(NotFoundf("promotion %d not found", 7)))
	assert.True(t, IsStorage(Storage(errors.New("deadlock"), "apply discount")))

	err := Validation("out of range")
	assert.False(t, IsNotFound(err))
	assert.False(t, IsStorage(err))
}

func TestStorageKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Storage(cause, "restore prices")
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "restore prices")
}

func TestStorageNilPassthrough(t *testing.T) {
	assert.NoError(t, Storage(nil, "no-op"))
}
