package schedule

import "time"

// DayOf normalizes a timestamp to midnight UTC of its calendar day.
// All completion-state comparisons happen at day granularity, so every
// stored date goes through this first.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey returns the canonical YYYY-MM-DD key for grouping by calendar day.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}
