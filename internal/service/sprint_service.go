package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/db"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/repository"
	"github.com/google/uuid"
)

type sprintService struct {
	sprints     repository.SprintRepo
	priorities  repository.PriorityRepo
	promiseLogs repository.PromiseLogRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewSprintService(
	sprints repository.SprintRepo,
	priorities repository.PriorityRepo,
	promiseLogs repository.PromiseLogRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SprintService {
	return &sprintService{
		sprints:     sprints,
		priorities:  priorities,
		promiseLogs: promiseLogs,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// Create stores a new sprint. A new active sprint completes the previously
// active one in the same transaction.
func (s *sprintService) Create(ctx context.Context, sp *domain.Sprint) (err error) {
	fields := map[string]any{"name": sp.Name}
	defer observe(ctx, s.observer, "create-sprint", time.Now().UTC(), fields, &err)

	if sp.Status == "" {
		sp.Status = domain.SprintActive
	}
	sp.Name = strings.TrimSpace(sp.Name)
	sp.StartDate = domain.Day(sp.StartDate)
	sp.EndDate = domain.Day(sp.EndDate)
	if err = sp.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if sp.ID == "" {
		sp.ID = uuid.New().String()
	}
	sp.CreatedAt = now
	sp.UpdatedAt = now
	fields["sprint_id"] = sp.ID

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSprints := repository.NewSQLiteSprintRepo(tx)
		return createSprint(ctx, txSprints, sp, fields)
	})
	return err
}

func createSprint(ctx context.Context, sprints repository.SprintRepo, sp *domain.Sprint, fields map[string]any) error {
	if sp.Status == domain.SprintActive {
		prev, err := sprints.GetActive(ctx)
		switch {
		case err == nil:
			if err := sprints.UpdateStatus(ctx, prev.ID, domain.SprintCompleted); err != nil {
				return fmt.Errorf("completing sprint %q: %w", prev.Name, err)
			}
			fields["completed_sprint_id"] = prev.ID
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}
	}
	if err := sprints.Create(ctx, sp); err != nil {
		return fmt.Errorf("creating sprint: %w", err)
	}
	return nil
}

func (s *sprintService) Get(ctx context.Context, id string) (*domain.Sprint, error) {
	return s.sprints.GetByID(ctx, id)
}

func (s *sprintService) Active(ctx context.Context) (*domain.Sprint, error) {
	sp, err := s.sprints.GetActive(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.ErrNoActiveSprint
	}
	return sp, err
}

func (s *sprintService) List(ctx context.Context) ([]*domain.Sprint, error) {
	return s.sprints.List(ctx)
}

func (s *sprintService) Complete(ctx context.Context, id string) error {
	sp, err := s.sprints.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sp.Status != domain.SprintActive {
		return fmt.Errorf("sprint %q is already %s", sp.Name, sp.Status)
	}
	return s.sprints.UpdateStatus(ctx, id, domain.SprintCompleted)
}

func (s *sprintService) AddPriority(ctx context.Context, p *domain.PriorityTarget) (err error) {
	fields := map[string]any{"sprint_id": p.SprintID, "key": p.Key}
	defer observe(ctx, s.observer, "add-priority", time.Now().UTC(), fields, &err)

	p.Key = strings.TrimSpace(p.Key)
	if p.Key == "" {
		return fmt.Errorf("priority key is required")
	}
	if p.WeeklyTargetUnits <= 0 {
		return fmt.Errorf("weekly target must be > 0, got %g", p.WeeklyTargetUnits)
	}
	p.Type = domain.PriorityType(domain.CoalesceStr(string(p.Type), string(domain.PriorityBuild)))
	if !domain.ValidPriorityTypes[string(p.Type)] {
		return fmt.Errorf("invalid priority type %q", p.Type)
	}
	p.Label = domain.CoalesceStr(p.Label, p.Key)

	if _, err = s.sprints.GetByID(ctx, p.SprintID); err != nil {
		return err
	}
	if _, lookupErr := s.priorities.GetByKey(ctx, p.SprintID, p.Key); lookupErr == nil {
		return fmt.Errorf("priority %q already exists in this sprint", p.Key)
	} else if !errors.Is(lookupErr, repository.ErrNotFound) {
		return lookupErr
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().UTC()
	return s.priorities.Create(ctx, p)
}

func (s *sprintService) ListPriorities(ctx context.Context, sprintID string) ([]domain.PriorityTarget, error) {
	return s.priorities.ListBySprint(ctx, sprintID)
}

// LogPromise records units against one of the sprint's priorities. A zero
// Date means today.
func (s *sprintService) LogPromise(ctx context.Context, e *domain.PromiseLogEntry) (err error) {
	fields := map[string]any{"sprint_id": e.SprintID, "key": e.PromiseID}
	defer observe(ctx, s.observer, "log-promise", time.Now().UTC(), fields, &err)

	if e.Units < 0 {
		return fmt.Errorf("units must be >= 0, got %g", e.Units)
	}
	if _, err = s.priorities.GetByKey(ctx, e.SprintID, e.PromiseID); err != nil {
		return err
	}

	now := time.Now().UTC()
	if e.Date.IsZero() {
		e.Date = now
	}
	e.Date = domain.Day(e.Date)
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = now
	return s.promiseLogs.Create(ctx, e)
}
