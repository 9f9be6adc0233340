package reminder

import (
	"math"
	"time"
)

// DateOf truncates a timestamp to local midnight. All due computations
// work at local-date granularity.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from a to b (negative
// when b precedes a). Both timestamps are truncated to local midnight
// first; rounding absorbs DST offsets of up to an hour.
func DaysBetween(a, b time.Time) int {
	diff := DateOf(b).Sub(DateOf(a))
	return int(math.Round(diff.Hours() / 24))
}

// SameDay reports whether two timestamps fall on the same local date.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
