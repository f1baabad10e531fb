package progress

import (
	"time"

	"github.com/Bitshifter-9/cp-tracker/pkg/timeutil"
)

// ComputeStreak derives the current consecutive-day solving streak from
// a user's first-solve timestamps.
//
// Both the reference time and the location are explicit so the result is
// deterministic under test and so normalization and comparison always
// agree on what a calendar day is. Multiple solves on one day count
// once. A streak is only alive if its most recent day is today or
// yesterday; a chain that ended two days ago scores 0 no matter how long
// it was.
func ComputeStreak(solvedAt []time.Time, now time.Time, loc *time.Location) int {
	if len(solvedAt) == 0 {
		return 0
	}

	// Collapse timestamps to unique calendar days.
	days := make(map[string]bool, len(solvedAt))
	for _, t := range solvedAt {
		days[timeutil.DateKey(t, loc)] = true
	}

	today := timeutil.StartOfDay(now, loc)
	yesterday := today.AddDate(0, 0, -1)

	var anchor time.Time
	switch {
	case days[timeutil.DateKey(today, loc)]:
		anchor = today
	case days[timeutil.DateKey(yesterday, loc)]:
		anchor = yesterday
	default:
		return 0
	}

	streak := 1
	for {
		prev := anchor.AddDate(0, 0, -1)
		if !days[timeutil.DateKey(prev, loc)] {
			break
		}
		streak++
		anchor = prev
	}
	return streak
}

// SolvedTimes extracts first-solve timestamps from records that are
// currently solved. A record moved back to revision drops off the
// streak input.
func SolvedTimes(records []*Record) []time.Time {
	var out []time.Time
	for _, r := range records {
		if r.IsSolved() && r.SolvedAt != nil {
			out = append(out, *r.SolvedAt)
		}
	}
	return out
}
