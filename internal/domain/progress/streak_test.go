package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is fixed mid-afternoon so day arithmetic never straddles midnight.
var testNow = time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

func daysAgo(n int, hour int) time.Time {
	return time.Date(2025, time.March, 15-n, hour, 0, 0, 0, time.UTC)
}

func TestComputeStreak_ConsecutiveDays(t *testing.T) {
	solved := []time.Time{daysAgo(0, 9), daysAgo(1, 22), daysAgo(2, 1)}
	assert.Equal(t, 3, ComputeStreak(solved, testNow, time.UTC))
}

func TestComputeStreak_AnchoredOnYesterday(t *testing.T) {
	// No solve today yet; a solve yesterday keeps the chain alive.
	solved := []time.Time{daysAgo(1, 10), daysAgo(2, 10), daysAgo(3, 10)}
	assert.Equal(t, 3, ComputeStreak(solved, testNow, time.UTC))
}

func TestComputeStreak_GapBreaksChain(t *testing.T) {
	solved := []time.Time{daysAgo(0, 10), daysAgo(3, 10), daysAgo(4, 10)}
	assert.Equal(t, 1, ComputeStreak(solved, testNow, time.UTC))
}

func TestComputeStreak_StaleChainScoresZero(t *testing.T) {
	// A long chain whose last day is two days back has already expired.
	solved := []time.Time{daysAgo(2, 10), daysAgo(3, 10), daysAgo(4, 10), daysAgo(5, 10)}
	assert.Equal(t, 0, ComputeStreak(solved, testNow, time.UTC))
}

func TestComputeStreak_Empty(t *testing.T) {
	assert.Equal(t, 0, ComputeStreak(nil, testNow, time.UTC))
}

func TestComputeStreak_SameDayDedupe(t *testing.T) {
	solved := []time.Time{daysAgo(0, 8), daysAgo(0, 12), daysAgo(0, 23), daysAgo(1, 10)}
	assert.Equal(t, 2, ComputeStreak(solved, testNow, time.UTC))
}

func TestComputeStreak_UnorderedInput(t *testing.T) {
	solved := []time.Time{daysAgo(2, 10), daysAgo(0, 10), daysAgo(1, 10)}
	assert.Equal(t, 3, ComputeStreak(solved, testNow, time.UTC))
}

func TestComputeStreak_LocationDecidesDayBoundary(t *testing.T) {
	// 01:00 UTC today is still the previous evening five hours west, so
	// the same timestamps land on different calendar days per location.
	west := time.FixedZone("UTC-5", -5*3600)
	solve := time.Date(2025, time.March, 15, 1, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, ComputeStreak([]time.Time{solve}, now, time.UTC))
	assert.Equal(t, 1, ComputeStreak([]time.Time{solve}, now, west))

	dayBefore := time.Date(2025, time.March, 14, 1, 0, 0, 0, time.UTC)
	// In UTC these are consecutive days; five hours west they collapse
	// onto March 13 and 14, with the newer one still counting as
	// yesterday relative to noon UTC.
	assert.Equal(t, 2, ComputeStreak([]time.Time{solve, dayBefore}, now, time.UTC))
	assert.Equal(t, 2, ComputeStreak([]time.Time{solve, dayBefore}, now, west))
}

func TestSolvedTimes_FiltersByCurrentStatus(t *testing.T) {
	mk := func(status Status, solvedAt *time.Time) *Record {
		return &Record{ID: "r", Status: status, SolvedAt: solvedAt}
	}
	t1 := daysAgo(0, 9)
	t2 := daysAgo(1, 9)

	records := []*Record{
		mk(StatusSolved, &t1),
		mk(StatusRevision, &t2), // once solved, later demoted
		mk(StatusSolved, nil),
		mk(StatusTodo, nil),
	}

	times := SolvedTimes(records)
	require.Len(t, times, 1)
	assert.True(t, times[0].Equal(t1))
}
