package engine

import (
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
)

// AtRiskPaceFactor is the fraction of linear expected pace below which a
// priority counts as at risk.
const AtRiskPaceFactor = 0.5

// SummaryInput is a snapshot of one aggregation window. The aggregator never
// mutates it.
type SummaryInput struct {
	Logs        []domain.DailyLogEntry
	PromiseLogs []domain.PromiseLogEntry
	Priorities  []domain.PriorityTarget
	WindowStart time.Time
	WindowEnd   time.Time
	// Now positions the pace check inside the window. It is never read from
	// the wall clock.
	Now time.Time
}

// AggregateWeeklySummary folds daily logs and promise logs of a window into a
// WeeklySummary. Records outside [WindowStart, WindowEnd] are ignored, as are
// promise logs whose key matches no priority.
func AggregateWeeklySummary(in SummaryInput) domain.WeeklySummary {
	start, end := domain.Day(in.WindowStart), domain.Day(in.WindowEnd)
	inWindow := func(t time.Time) bool {
		d := domain.Day(t)
		return !d.Before(start) && !d.After(end)
	}

	var summary domain.WeeklySummary

	var energyTotal, entries int
	days := make(map[time.Time]struct{})
	for _, l := range in.Logs {
		if !inWindow(l.Date) {
			continue
		}
		entries++
		energyTotal += l.EnergyLevel
		summary.MotionUnits += nonNegative(l.MotionUnits)
		summary.ActionUnits += nonNegative(l.ActionUnits())
		days[l.Day()] = struct{}{}
	}
	if entries > 0 {
		summary.AvgEnergy = float64(energyTotal) / float64(entries)
	}
	summary.DaysLogged = len(days)

	logged := make(map[string]float64, len(in.Priorities))
	for _, p := range in.Priorities {
		logged[p.Key] = 0
	}
	for _, pl := range in.PromiseLogs {
		if !inWindow(pl.Date) {
			continue
		}
		if _, ok := logged[pl.PromiseID]; !ok {
			continue
		}
		if pl.Units > 0 {
			logged[pl.PromiseID] += pl.Units
		}
	}

	elapsed := ElapsedFraction(start, end, in.Now)
	for _, p := range in.Priorities {
		progress := domain.PriorityProgress{
			Key:         p.Key,
			Label:       p.Label,
			LoggedUnits: logged[p.Key],
			TargetUnits: p.WeeklyTargetUnits,
		}
		if p.WeeklyTargetUnits > 0 {
			progress.Ratio = progress.LoggedUnits / p.WeeklyTargetUnits
		}
		expected := elapsed * p.WeeklyTargetUnits
		if progress.LoggedUnits < expected*AtRiskPaceFactor {
			progress.AtRisk = true
			summary.PromisesAtRisk++
		}
		summary.Priorities = append(summary.Priorities, progress)
	}

	return summary
}

// ElapsedFraction returns how much of the inclusive day window [start, end]
// has elapsed by now, counting now's own day as elapsed. The result is in
// [0, 1]; a degenerate window (end before start) counts as fully elapsed.
func ElapsedFraction(start, end, now time.Time) float64 {
	total := domain.DaysBetween(start, end) + 1
	if total <= 0 {
		return 1
	}
	elapsed := domain.DaysBetween(start, now) + 1
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= total:
		return 1
	}
	return float64(elapsed) / float64(total)
}
