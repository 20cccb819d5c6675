package domain

import "time"

// DailyLogEntry is one day's self-reported activity.
type DailyLogEntry struct {
	ID                 string
	Date               time.Time
	EnergyLevel        int
	SleepHours         float64
	MainFocusCompleted bool

	// ProgressUnits is evidenced work produced that day (action units).
	ProgressUnits int
	// MotionUnits is planning/organizing activity, classified at capture time.
	MotionUnits int

	Proof string
	Note  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActionUnits returns the evidenced work count for the entry.
func (e DailyLogEntry) ActionUnits() int {
	return e.ProgressUnits
}

// Day returns the entry's calendar day.
func (e DailyLogEntry) Day() time.Time {
	return Day(e.Date)
}
