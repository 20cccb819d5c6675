package domain

import (
	"fmt"
	"time"
)

// Sprint is a time-boxed period during which priorities are tracked.
type Sprint struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    SprintStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains reports whether day falls within the sprint, inclusive on both ends.
func (s *Sprint) Contains(day time.Time) bool {
	d := Day(day)
	return !d.Before(Day(s.StartDate)) && !d.After(Day(s.EndDate))
}

// Validate checks the sprint's own fields.
func (s *Sprint) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("sprint name is required")
	}
	if Day(s.EndDate).Before(Day(s.StartDate)) {
		return fmt.Errorf("sprint end %s is before start %s",
			s.EndDate.Format(DateLayout), s.StartDate.Format(DateLayout))
	}
	if !ValidSprintStatuses[string(s.Status)] {
		return fmt.Errorf("invalid sprint status %q", s.Status)
	}
	return nil
}

// PriorityTarget is a weekly commitment tracked within one sprint.
type PriorityTarget struct {
	ID                string
	SprintID          string
	Key               string
	Label             string
	Type              PriorityType
	WeeklyTargetUnits float64
	UnitDefinition    string
	Order             int
	CreatedAt         time.Time
}

// PromiseLogEntry records one day's units toward a priority target.
type PromiseLogEntry struct {
	ID        string
	SprintID  string
	Date      time.Time
	PromiseID string // PriorityTarget.Key
	Units     float64
	Note      string
	CreatedAt time.Time
}
