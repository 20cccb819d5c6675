package repository

import (
	"context"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
)

type DailyLogRepo interface {
	// Upsert inserts the entry or replaces the entry already logged for its day.
	Upsert(ctx context.Context, e *domain.DailyLogEntry) error
	GetByID(ctx context.Context, id string) (*domain.DailyLogEntry, error)
	GetByDate(ctx context.Context, day time.Time) (*domain.DailyLogEntry, error)
	// ListBetween returns entries with start <= date <= end, oldest first.
	ListBetween(ctx context.Context, start, end time.Time) ([]domain.DailyLogEntry, error)
	Delete(ctx context.Context, id string) error
}

type SprintRepo interface {
	Create(ctx context.Context, s *domain.Sprint) error
	GetByID(ctx context.Context, id string) (*domain.Sprint, error)
	GetActive(ctx context.Context) (*domain.Sprint, error)
	List(ctx context.Context) ([]*domain.Sprint, error)
	UpdateStatus(ctx context.Context, id string, status domain.SprintStatus) error
}

type PriorityRepo interface {
	Create(ctx context.Context, p *domain.PriorityTarget) error
	GetByKey(ctx context.Context, sprintID, key string) (*domain.PriorityTarget, error)
	ListBySprint(ctx context.Context, sprintID string) ([]domain.PriorityTarget, error)
}

type PromiseLogRepo interface {
	Create(ctx context.Context, e *domain.PromiseLogEntry) error
	ListBetween(ctx context.Context, sprintID string, start, end time.Time) ([]domain.PromiseLogEntry, error)
}

type ReviewRepo interface {
	Upsert(ctx context.Context, r *domain.YearlyReview) error
	GetByYear(ctx context.Context, year int) (*domain.YearlyReview, error)
}

type WizardDraftRepo interface {
	Get(ctx context.Context, kind domain.WizardKind) (*domain.WizardState, error)
	Save(ctx context.Context, s *domain.WizardState) error
	Delete(ctx context.Context, kind domain.WizardKind) error
}
