package utils

import (
	"math"
	"time"
)

// DaysBetween returns the rounded absolute number of calendar days between
// two timestamps. The value is the millisecond difference divided by
// 86,400,000 rounded half up, so a 23h stay counts 1 day and a 36h stay
// counts 2. Nightly rates multiply this number directly.
func DaysBetween(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}
	days := float64(diff.Milliseconds()) / 86400000.0
	return int(math.Floor(days + 0.5))
}

// IntervalsOverlap reports whether [startA, endA] and [startB, endB] overlap,
// bounds inclusive. A checkout instant equal to another booking's check-in
// counts as an overlap: same-instant turnover is rejected on purpose.
func IntervalsOverlap(startA, endA, startB, endB time.Time) bool {
	return !startA.After(endB) && !startB.After(endA)
}
