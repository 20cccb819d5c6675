package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/engine"
	"github.com/alextm0/identity-shift-sub002/internal/repository"
	"github.com/google/uuid"
)

const (
	minEnergy = 1
	maxEnergy = 5
)

type dailyLogService struct {
	logs     repository.DailyLogRepo
	observer UseCaseObserver
}

func NewDailyLogService(logs repository.DailyLogRepo, observers ...UseCaseObserver) DailyLogService {
	return &dailyLogService{logs: logs, observer: useCaseObserverOrNoop(observers)}
}

// Log stores the entry for its day, replacing any earlier entry for the same
// day. A zero Date means today.
func (s *dailyLogService) Log(ctx context.Context, e *domain.DailyLogEntry) (err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "log-day", time.Now().UTC(), fields, &err)

	if err = validateDailyLog(e); err != nil {
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
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	fields["date"] = e.Date.Format(domain.DateLayout)
	fields["action_units"] = e.ActionUnits()
	fields["motion_units"] = e.MotionUnits

	return s.logs.Upsert(ctx, e)
}

func validateDailyLog(e *domain.DailyLogEntry) error {
	if e.EnergyLevel < minEnergy || e.EnergyLevel > maxEnergy {
		return fmt.Errorf("energy level %d: %w", e.EnergyLevel, domain.ErrInvalidEnergy)
	}
	if e.SleepHours < 0 {
		return fmt.Errorf("sleep hours must be >= 0, got %g", e.SleepHours)
	}
	if e.ProgressUnits < 0 || e.MotionUnits < 0 {
		return fmt.Errorf("units must be >= 0 (progress %d, motion %d)", e.ProgressUnits, e.MotionUnits)
	}
	if !engine.ValidateProofOfWork(e.ProgressUnits, e.Proof) {
		return fmt.Errorf("%d progress unit(s) need at least %d characters of proof: %w",
			e.ProgressUnits, engine.ProofMinLength, domain.ErrProofRequired)
	}
	return nil
}

func (s *dailyLogService) ListWindow(ctx context.Context, start, end time.Time) ([]domain.DailyLogEntry, error) {
	if domain.Day(end).Before(domain.Day(start)) {
		return nil, fmt.Errorf("window end %s is before start %s",
			end.Format(domain.DateLayout), start.Format(domain.DateLayout))
	}
	return s.logs.ListBetween(ctx, start, end)
}

func (s *dailyLogService) Delete(ctx context.Context, id string) error {
	return s.logs.Delete(ctx, id)
}
