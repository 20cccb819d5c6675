package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekContaining(t *testing.T) {
	// 2025-03-13 is a Thursday.
	thursday := time.Date(2025, 3, 13, 18, 30, 0, 0, time.UTC)

	start, end := WeekContaining(thursday, time.Monday)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), end)

	start, end = WeekContaining(thursday, time.Sunday)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), end)
}

func TestWeekContaining_OnWeekStart(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	start, _ := WeekContaining(monday, time.Monday)
	assert.Equal(t, monday, start)

	sunday := monday.AddDate(0, 0, 6)
	start, end := WeekContaining(sunday, time.Monday)
	assert.Equal(t, monday, start)
	assert.Equal(t, sunday, end)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 12, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysBetween(a, b))
	assert.Equal(t, -2, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}
