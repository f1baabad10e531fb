// Package timeutil provides calendar-day utilities for cp-tracker.
// Streak computation reasons about "solved days", so every helper takes
// an explicit *time.Location: the caller decides what a local day means,
// and normalization and comparison always use the same zone.
// No external dependencies - uses only standard library.
package timeutil

import "time"

// FormatDate is the standard date format (YYYY-MM-DD).
const FormatDate = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) of t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay returns the last nanosecond of the day of t in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// IsSameDay checks if two times fall on the same calendar day in loc.
func IsSameDay(t1, t2 time.Time, loc *time.Location) bool {
	a, b := t1.In(loc), t2.In(loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsConsecutiveDay checks if t2 falls on the day after t1 in loc.
func IsConsecutiveDay(t1, t2 time.Time, loc *time.Location) bool {
	next := StartOfDay(t1, loc).AddDate(0, 0, 1)
	return IsSameDay(next, t2, loc)
}

// DaysBetween returns the absolute number of calendar days between two
// times in loc. Same day yields 0.
func DaysBetween(t1, t2 time.Time, loc *time.Location) int {
	a := StartOfDay(t1, loc)
	b := StartOfDay(t2, loc)
	days := int(b.Sub(a).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}

// IsToday checks if t falls on the same day as now in loc.
func IsToday(t, now time.Time, loc *time.Location) bool {
	return IsSameDay(t, now, loc)
}

// IsYesterday checks if t falls on the day before now in loc.
func IsYesterday(t, now time.Time, loc *time.Location) bool {
	return IsSameDay(t, StartOfDay(now, loc).AddDate(0, 0, -1), loc)
}

// DateKey formats t as a YYYY-MM-DD string in loc. Two times share a
// DateKey exactly when they fall on the same calendar day.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(FormatDate)
}

// ParseDate parses a YYYY-MM-DD string as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(FormatDate, value, loc)
}
