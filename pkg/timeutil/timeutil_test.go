package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2025, time.March, 15, 23, 45, 12, 999, time.UTC)
	got := StartOfDay(ts, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestStartOfDay_ConvertsBeforeTruncating(t *testing.T) {
	// 01:00 UTC is the previous evening five hours west.
	west := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2025, time.March, 15, 1, 0, 0, 0, time.UTC)

	got := StartOfDay(ts, west)
	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, west), got)
}

func TestEndOfDay(t *testing.T) {
	ts := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	got := EndOfDay(ts, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 15, 23, 59, 59, 999999999, time.UTC), got)
}

func TestIsSameDay(t *testing.T) {
	a := time.Date(2025, time.March, 15, 0, 0, 1, 0, time.UTC)
	b := time.Date(2025, time.March, 15, 23, 59, 59, 0, time.UTC)
	c := time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsSameDay(a, b, time.UTC))
	assert.False(t, IsSameDay(b, c, time.UTC))
}

func TestIsConsecutiveDay(t *testing.T) {
	a := time.Date(2025, time.March, 15, 22, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 16, 1, 0, 0, 0, time.UTC)

	assert.True(t, IsConsecutiveDay(a, b, time.UTC))
	assert.False(t, IsConsecutiveDay(b, a, time.UTC))
	assert.False(t, IsConsecutiveDay(a, a, time.UTC))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, time.March, 15, 23, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 18, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(a, b, time.UTC))
	assert.Equal(t, 3, DaysBetween(b, a, time.UTC))
	assert.Equal(t, 0, DaysBetween(a, a, time.UTC))
}

func TestIsTodayAndYesterday(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsToday(time.Date(2025, time.March, 15, 1, 0, 0, 0, time.UTC), now, time.UTC))
	assert.False(t, IsToday(time.Date(2025, time.March, 14, 23, 0, 0, 0, time.UTC), now, time.UTC))

	assert.True(t, IsYesterday(time.Date(2025, time.March, 14, 23, 0, 0, 0, time.UTC), now, time.UTC))
	assert.False(t, IsYesterday(time.Date(2025, time.March, 13, 23, 0, 0, 0, time.UTC), now, time.UTC))
}

func TestDateKey(t *testing.T) {
	west := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2025, time.March, 15, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-15", DateKey(ts, time.UTC))
	assert.Equal(t, "2025-03-14", DateKey(ts, west))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-03-15", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("15/03/2025", time.UTC)
	assert.Error(t, err)
}
