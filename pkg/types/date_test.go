package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate(t *testing.T) {
	date, err := ParseLocalDate("2026-09-15")
	require.NoError(t, err)

	year, month, day := date.Date()
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.September, month)
	assert.Equal(t, 15, day)
	// Дата собирается в локальной таймзоне, без сдвига на день
	assert.Equal(t, time.Local, date.Location())

	_, err = ParseLocalDate("15-09-2026")
	assert.Error(t, err)

	_, err = ParseLocalDate("2026-13-01")
	assert.Error(t, err)

	_, err = ParseLocalDate("garbage")
	assert.Error(t, err)
}

func TestFormatLocalDate(t *testing.T) {
	date := time.Date(2026, time.September, 5, 23, 50, 0, 0, time.Local)
	assert.Equal(t, "2026-09-05", FormatLocalDate(date))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 9, 15, 8, 0, 0, 0, time.Local)
	evening := time.Date(2026, 9, 15, 23, 30, 0, 0, time.Local)
	nextDay := time.Date(2026, 9, 16, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}

func TestDiffDays(t *testing.T) {
	now := time.Date(2026, 9, 15, 18, 45, 0, 0, time.Local)

	assert.Equal(t, 0, DiffDays(time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local), now))
	assert.Equal(t, 1, DiffDays(time.Date(2026, 9, 16, 0, 0, 0, 0, time.Local), now))
	assert.Equal(t, 30, DiffDays(time.Date(2026, 10, 15, 0, 0, 0, 0, time.Local), now))
	assert.Equal(t, -2, DiffDays(time.Date(2026, 9, 13, 0, 0, 0, 0, time.Local), now))
}

func TestNextSlotBoundary(t *testing.T) {
	assert.Equal(t, 600, NextSlotBoundary(600)) // ровно на границе
	assert.Equal(t, 630, NextSlotBoundary(601))
	assert.Equal(t, 630, NextSlotBoundary(629))
	assert.Equal(t, 0, NextSlotBoundary(0))
}
