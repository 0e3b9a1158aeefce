package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanahmerapi/backend/internal/pkg/apperrors"
)

func TestParsePackageIDs(t *testing.T) {
	ids, err := parsePackageIDs("[1, 2, 3]")
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, ids)

	// the admin frontend serializes ids as strings
	ids, err = parsePackageIDs(`["4", "5"]`)
	require.NoError(t, err)
	assert.Equal(t, []uint{4, 5}, ids)

	_, err = parsePackageIDs("")
	assert.True(t, apperrors.IsValidation(err))

	_, err = parsePackageIDs("[]")
	assert.True(t, apperrors.IsValidation(err))

	_, err = parsePackageIDs("not json")
	assert.True(t, apperrors.IsValidation(err))

	_, err = parsePackageIDs(`[0]`)
	assert.True(t, apperrors.IsValidation(err))

	_, err = parsePackageIDs(`[-2]`)
	assert.True(t, apperrors.IsValidation(err))
}

func TestParseFormTime(t *testing.T) {
	got, err := parseFormTime("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parseFormTime("2026-09-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = parseFormTime("01.09.2026")
	assert.True(t, apperrors.IsValidation(err))
}
