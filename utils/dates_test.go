package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad fixture time %q: %v", value, err)
	}
	return parsed
}

func TestDaysBetween(t *testing.T) {
	base := mustTime(t, "2025-10-15T15:00:00Z")

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"same instant", base, base, 0},
		{"23 hours rounds up to one day", base, base.Add(23 * time.Hour), 1},
		{"36 hours rounds half up to two days", base, base.Add(36 * time.Hour), 2},
		{"exactly one day", base, base.Add(24 * time.Hour), 1},
		{"twelve hours rounds half up", base, base.Add(12 * time.Hour), 1},
		{"just under half a day rounds down", base, base.Add(11*time.Hour + 59*time.Minute), 0},
		{"reversed arguments use the absolute difference", base.Add(36 * time.Hour), base, 2},
		{
			"four-night stay with early checkout",
			mustTime(t, "2025-10-15T15:00:00Z"),
			mustTime(t, "2025-10-19T11:00:00Z"),
			4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysBetween(tc.checkIn, tc.checkOut))
		})
	}
}

func TestIntervalsOverlap(t *testing.T) {
	a := mustTime(t, "2025-10-15T00:00:00Z")
	b := mustTime(t, "2025-10-19T00:00:00Z")
	c := mustTime(t, "2025-10-20T00:00:00Z")
	d := mustTime(t, "2025-10-25T00:00:00Z")

	// disjoint with a gap
	assert.False(t, IntervalsOverlap(a, b, c, d))
	assert.False(t, IntervalsOverlap(c, d, a, b))

	// containment and partial overlap
	assert.True(t, IntervalsOverlap(a, d, b, c))
	assert.True(t, IntervalsOverlap(a, c, b, d))

	// touching endpoints count as overlap: same-instant turnover is a conflict
	assert.True(t, IntervalsOverlap(a, b, b, d))
	assert.True(t, IntervalsOverlap(b, d, a, b))

	// one second of clearance is enough
	assert.False(t, IntervalsOverlap(a, b, b.Add(time.Second), d))
}
