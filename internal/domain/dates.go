package domain

import "time"

// DateLayout is the storage and CLI format for calendar days.
const DateLayout = "2006-01-02"

// Day truncates t to its calendar day in UTC. Daily records carry no
// time-of-day semantics.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// ParseDay parses a YYYY-MM-DD string into a UTC day.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// WeekContaining returns the first and last day of the calendar week holding
// t, where weeks begin on weekStart.
func WeekContaining(t time.Time, weekStart time.Weekday) (start, end time.Time) {
	d := Day(t)
	offset := (int(d.Weekday()) - int(weekStart) + 7) % 7
	start = d.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}
