package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeSchedule_DateOnly(t *testing.T) {
	date, clock, err := normalizeSchedule(strPtr("2024-3-7"), nil)
	require.NoError(t, err)

	require.NotNil(t, date)
	assert.Equal(t, "2024-03-07", *date) // re-encoded canonically
	assert.Nil(t, clock)
}

func TestNormalizeSchedule_DateAndTime(t *testing.T) {
	date, clock, err := normalizeSchedule(strPtr("2024-03-07"), strPtr("9:05"))
	require.NoError(t, err)

	assert.Equal(t, "2024-03-07", *date)
	require.NotNil(t, clock)
	assert.Equal(t, "09:05", *clock)
}

func TestNormalizeSchedule_TimeWithoutDateDropped(t *testing.T) {
	date, clock, err := normalizeSchedule(nil, strPtr("09:00"))
	require.NoError(t, err)

	assert.Nil(t, date)
	assert.Nil(t, clock)
}

func TestNormalizeSchedule_Invalid(t *testing.T) {
	_, _, err := normalizeSchedule(strPtr("2024-13-01"), nil)
	assert.Error(t, err)

	_, _, err = normalizeSchedule(strPtr("2024-03-07"), strPtr("25:99"))
	assert.Error(t, err)
}
