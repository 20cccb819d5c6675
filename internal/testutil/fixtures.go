package testutil

import (
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/google/uuid"
)

// Sprint options
type SprintOption func(*domain.Sprint)

func WithSprintStatus(s domain.SprintStatus) SprintOption {
	return func(sp *domain.Sprint) {
		sp.Status = s
	}
}

func WithSprintRange(start, end time.Time) SprintOption {
	return func(sp *domain.Sprint) {
		sp.StartDate = domain.Day(start)
		sp.EndDate = domain.Day(end)
	}
}

// NewTestSprint returns an active four-week sprint starting on start.
func NewTestSprint(name string, start time.Time, opts ...SprintOption) *domain.Sprint {
	now := time.Now().UTC()
	s := &domain.Sprint{
		ID:        uuid.New().String(),
		Name:      name,
		StartDate: domain.Day(start),
		EndDate:   domain.Day(start).AddDate(0, 0, 27),
		Status:    domain.SprintActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PriorityTarget options
type PriorityOption func(*domain.PriorityTarget)

func WithPriorityType(t domain.PriorityType) PriorityOption {
	return func(p *domain.PriorityTarget) {
		p.Type = t
	}
}

func WithPriorityOrder(i int) PriorityOption {
	return func(p *domain.PriorityTarget) {
		p.Order = i
	}
}

func WithPriorityLabel(label string) PriorityOption {
	return func(p *domain.PriorityTarget) {
		p.Label = label
	}
}

func NewTestPriority(sprintID, key string, weeklyTarget float64, opts ...PriorityOption) *domain.PriorityTarget {
	p := &domain.PriorityTarget{
		ID:                uuid.New().String(),
		SprintID:          sprintID,
		Key:               key,
		Label:             key,
		Type:              domain.PriorityBuild,
		WeeklyTargetUnits: weeklyTarget,
		UnitDefinition:    "session",
		CreatedAt:         time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DailyLogEntry options
type DailyLogOption func(*domain.DailyLogEntry)

func WithEnergy(level int) DailyLogOption {
	return func(e *domain.DailyLogEntry) {
		e.EnergyLevel = level
	}
}

func WithUnits(progress, motion int) DailyLogOption {
	return func(e *domain.DailyLogEntry) {
		e.ProgressUnits = progress
		e.MotionUnits = motion
	}
}

func WithProof(proof string) DailyLogOption {
	return func(e *domain.DailyLogEntry) {
		e.Proof = proof
	}
}

func WithLogNote(note string) DailyLogOption {
	return func(e *domain.DailyLogEntry) {
		e.Note = note
	}
}

// NewTestDailyLog returns a valid entry for day: energy 3, no units.
func NewTestDailyLog(day time.Time, opts ...DailyLogOption) *domain.DailyLogEntry {
	now := time.Now().UTC()
	e := &domain.DailyLogEntry{
		ID:          uuid.New().String(),
		Date:        domain.Day(day),
		EnergyLevel: 3,
		SleepHours:  7,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestPromiseLog(sprintID, key string, day time.Time, units float64) *domain.PromiseLogEntry {
	return &domain.PromiseLogEntry{
		ID:        uuid.New().String(),
		SprintID:  sprintID,
		Date:      domain.Day(day),
		PromiseID: key,
		Units:     units,
		CreatedAt: time.Now().UTC(),
	}
}

// NewTestReview returns a review for year with every dimension rated 5.
func NewTestReview(year int, ratings domain.DimensionRatings) *domain.YearlyReview {
	now := time.Now().UTC()
	if ratings == nil {
		ratings = domain.DimensionRatings{}
	}
	return &domain.YearlyReview{
		ID:        uuid.New().String(),
		Year:      year,
		Ratings:   ratings.Complete(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
