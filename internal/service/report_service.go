package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/app"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/engine"
	"github.com/alextm0/identity-shift-sub002/internal/repository"
	"golang.org/x/sync/errgroup"
)

// MaxHistoryWeeks bounds History requests.
const MaxHistoryWeeks = 52

type reportService struct {
	sprints     repository.SprintRepo
	priorities  repository.PriorityRepo
	promiseLogs repository.PromiseLogRepo
	logs        repository.DailyLogRepo
	weekStart   time.Weekday
	observer    UseCaseObserver
}

func NewReportService(
	sprints repository.SprintRepo,
	priorities repository.PriorityRepo,
	promiseLogs repository.PromiseLogRepo,
	logs repository.DailyLogRepo,
	weekStart time.Weekday,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		sprints:     sprints,
		priorities:  priorities,
		promiseLogs: promiseLogs,
		logs:        logs,
		weekStart:   weekStart,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) WeeklyReport(ctx context.Context, req app.WeeklyReportRequest) (resp *app.WeeklyReportResponse, err error) {
	fields := map[string]any{"window": string(req.Window)}
	defer observe(ctx, s.observer, "weekly-report", time.Now().UTC(), fields, &err)

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	window := domain.ReportWindow(domain.CoalesceStr(string(req.Window), string(domain.WindowWeek)))
	if window != domain.WindowWeek && window != domain.WindowSprint {
		return nil, &app.ReportError{
			Code:    app.ReportErrInvalidWindow,
			Message: fmt.Sprintf("window must be %q or %q, got %q", domain.WindowWeek, domain.WindowSprint, req.Window),
		}
	}

	sprint, err := s.resolveSprint(ctx, req.SprintID, window == domain.WindowSprint)
	if err != nil {
		return nil, err
	}

	start, end := domain.WeekContaining(now, s.weekStart)
	if window == domain.WindowSprint {
		start, end = sprint.StartDate, sprint.EndDate
	}

	resp, err = s.buildReport(ctx, sprint, start, end, now)
	if err != nil {
		return nil, err
	}
	fields["days_logged"] = resp.DaysLogged
	fields["integrity_score"] = resp.IntegrityScore
	fields["alert_count"] = len(resp.Alerts)
	return resp, nil
}

// History builds one weekly report per calendar week, going back req.Weeks
// weeks from the week containing now. Reports are returned oldest first.
func (s *reportService) History(ctx context.Context, req app.HistoryRequest) (resp *app.HistoryResponse, err error) {
	fields := map[string]any{"weeks": req.Weeks}
	defer observe(ctx, s.observer, "report-history", time.Now().UTC(), fields, &err)

	if req.Weeks < 1 || req.Weeks > MaxHistoryWeeks {
		return nil, &app.ReportError{
			Code:    app.ReportErrInvalidWeeks,
			Message: fmt.Sprintf("weeks must be between 1 and %d, got %d", MaxHistoryWeeks, req.Weeks),
		}
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	sprint, err := s.resolveSprint(ctx, req.SprintID, false)
	if err != nil {
		return nil, err
	}

	reports := make([]app.WeeklyReportResponse, req.Weeks)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < req.Weeks; i++ {
		start, end := domain.WeekContaining(now.AddDate(0, 0, -7*i), s.weekStart)
		slot := req.Weeks - 1 - i
		g.Go(func() error {
			r, err := s.buildReport(gctx, sprint, start, end, now)
			if err != nil {
				return fmt.Errorf("week of %s: %w", start.Format(domain.DateLayout), err)
			}
			reports[slot] = *r
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return &app.HistoryResponse{Sprint: sprint, Reports: reports}, nil
}

// resolveSprint returns the requested sprint, or the active one when id is
// empty. A missing active sprint is only an error when required is set.
func (s *reportService) resolveSprint(ctx context.Context, id string, required bool) (*domain.Sprint, error) {
	if id != "" {
		return s.sprints.GetByID(ctx, id)
	}
	sprint, err := s.sprints.GetActive(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		if required {
			return nil, &app.ReportError{Code: app.ReportErrNoSprint, Message: "no active sprint; pass a sprint id"}
		}
		return nil, nil
	}
	return sprint, err
}

// buildReport aggregates daily logs over [start, end]. Priorities are paced
// only over the part of the window that lies inside the sprint, so weeks
// before the sprint began or after it ended carry no priorities.
func (s *reportService) buildReport(ctx context.Context, sprint *domain.Sprint, start, end, now time.Time) (*app.WeeklyReportResponse, error) {
	var (
		logs        []domain.DailyLogEntry
		priorities  []domain.PriorityTarget
		promiseLogs []domain.PromiseLogEntry
	)

	paceStart, paceEnd, paced := sprintOverlap(sprint, start, end)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = s.logs.ListBetween(gctx, start, end)
		if err != nil {
			return fmt.Errorf("loading daily logs: %w", err)
		}
		return nil
	})
	if paced {
		g.Go(func() error {
			var err error
			priorities, err = s.priorities.ListBySprint(gctx, sprint.ID)
			if err != nil {
				return fmt.Errorf("loading priorities: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			promiseLogs, err = s.promiseLogs.ListBetween(gctx, sprint.ID, paceStart, paceEnd)
			if err != nil {
				return fmt.Errorf("loading promise logs: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := engine.AggregateWeeklySummary(engine.SummaryInput{
		Logs:        logs,
		WindowStart: start,
		WindowEnd:   end,
		Now:         now,
	})
	if paced {
		pace := engine.AggregateWeeklySummary(engine.SummaryInput{
			PromiseLogs: promiseLogs,
			Priorities:  scaleTargets(priorities, paceStart, paceEnd),
			WindowStart: paceStart,
			WindowEnd:   paceEnd,
			Now:         now,
		})
		summary.Priorities = pace.Priorities
		summary.PromisesAtRisk = pace.PromisesAtRisk
	}

	return &app.WeeklyReportResponse{
		Sprint:         sprint,
		WindowStart:    domain.Day(start),
		WindowEnd:      domain.Day(end),
		Summary:        summary,
		IntegrityScore: engine.CalculateIntegrityScore(summary.MotionUnits, summary.ActionUnits),
		Alerts:         engine.GenerateAlerts(logs, summary),
		DaysLogged:     summary.DaysLogged,
		ProofCoverage:  proofCoverage(logs),
	}, nil
}

// sprintOverlap clips [start, end] to the sprint's days. ok is false when
// there is no sprint or the two ranges do not meet.
func sprintOverlap(sprint *domain.Sprint, start, end time.Time) (from, to time.Time, ok bool) {
	if sprint == nil {
		return time.Time{}, time.Time{}, false
	}
	from, to = domain.Day(start), domain.Day(end)
	if sStart := domain.Day(sprint.StartDate); sStart.After(from) {
		from = sStart
	}
	if sEnd := domain.Day(sprint.EndDate); sEnd.Before(to) {
		to = sEnd
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// proofCoverage is the share of entries with progress that pass the proof
// check. 1 when no entry logged progress.
func proofCoverage(logs []domain.DailyLogEntry) float64 {
	var withProgress, proven int
	for _, l := range logs {
		if l.ProgressUnits <= 0 {
			continue
		}
		withProgress++
		if engine.ValidateProofOfWork(l.ProgressUnits, l.Proof) {
			proven++
		}
	}
	if withProgress == 0 {
		return 1
	}
	return float64(proven) / float64(withProgress)
}

// scaleTargets converts weekly targets to targets for a window of arbitrary
// length. A seven-day window leaves them unchanged.
func scaleTargets(priorities []domain.PriorityTarget, start, end time.Time) []domain.PriorityTarget {
	days := domain.DaysBetween(start, end) + 1
	if days == 7 || days <= 0 {
		return priorities
	}
	factor := float64(days) / 7
	scaled := make([]domain.PriorityTarget, len(priorities))
	for i, p := range priorities {
		p.WeeklyTargetUnits *= factor
		scaled[i] = p
	}
	return scaled
}
