package engine

import (
	"testing"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	weekStart = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) // Monday
	weekEnd   = time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC) // Sunday
)

func day(offset int) time.Time {
	return weekStart.AddDate(0, 0, offset)
}

func logOn(offset, energy, motion, progress int) domain.DailyLogEntry {
	return domain.DailyLogEntry{
		Date:          day(offset),
		EnergyLevel:   energy,
		MotionUnits:   motion,
		ProgressUnits: progress,
	}
}

func priority(key string, target float64) domain.PriorityTarget {
	return domain.PriorityTarget{Key: key, Label: key, WeeklyTargetUnits: target}
}

func promise(offset int, key string, units float64) domain.PromiseLogEntry {
	return domain.PromiseLogEntry{Date: day(offset), PromiseID: key, Units: units}
}

func TestAggregateWeeklySummary_EmptyInputIsAllZero(t *testing.T) {
	got := AggregateWeeklySummary(SummaryInput{
		WindowStart: weekStart,
		WindowEnd:   weekEnd,
		Now:         day(3),
	})
	assert.Equal(t, domain.WeeklySummary{}, got)
}

func TestAggregateWeeklySummary_EnergyAndUnits(t *testing.T) {
	got := AggregateWeeklySummary(SummaryInput{
		Logs: []domain.DailyLogEntry{
			logOn(0, 4, 2, 3),
			logOn(1, 2, 1, 0),
			logOn(3, 3, 0, 5),
		},
		WindowStart: weekStart,
		WindowEnd:   weekEnd,
		Now:         day(3),
	})

	assert.InDelta(t, 3.0, got.AvgEnergy, 1e-9, "only logged days count toward the mean")
	assert.Equal(t, 3, got.MotionUnits)
	assert.Equal(t, 8, got.ActionUnits)
	assert.Equal(t, 3, got.DaysLogged)
}

func TestAggregateWeeklySummary_IgnoresRecordsOutsideWindow(t *testing.T) {
	got := AggregateWeeklySummary(SummaryInput{
		Logs: []domain.DailyLogEntry{
			logOn(-1, 1, 9, 9),
			logOn(2, 5, 0, 1),
			logOn(7, 1, 9, 9),
		},
		PromiseLogs: []domain.PromiseLogEntry{
			promise(-2, "ship", 10),
			promise(2, "ship", 1),
			promise(8, "ship", 10),
		},
		Priorities:  []domain.PriorityTarget{priority("ship", 4)},
		WindowStart: weekStart,
		WindowEnd:   weekEnd,
		Now:         weekEnd,
	})

	assert.Equal(t, 5.0, got.AvgEnergy)
	assert.Equal(t, 1, got.ActionUnits)
	p, ok := got.Priority("ship")
	require.True(t, ok)
	assert.Equal(t, 1.0, p.LoggedUnits)
}

func TestAggregateWeeklySummary_PriorityRatios(t *testing.T) {
	got := AggregateWeeklySummary(SummaryInput{
		PromiseLogs: []domain.PromiseLogEntry{
			promise(0, "write", 2),
			promise(1, "write", 1),
			promise(1, "gym", 3),
			promise(1, "unknown", 50),
		},
		Priorities: []domain.PriorityTarget{
			priority("write", 6),
			priority("gym", 3),
			priority("idle", 0),
		},
		WindowStart: weekStart,
		WindowEnd:   weekEnd,
		Now:         day(1),
	})

	want := map[string]domain.PriorityProgress{
		"write": {Key: "write", Label: "write", LoggedUnits: 3, TargetUnits: 6, Ratio: 0.5},
		"gym":   {Key: "gym", Label: "gym", LoggedUnits: 3, TargetUnits: 3, Ratio: 1},
		"idle":  {Key: "idle", Label: "idle", LoggedUnits: 0, TargetUnits: 0, Ratio: 0},
	}
	if diff := cmp.Diff(want, got.PrioritySummary()); diff != "" {
		t.Errorf("priority summary mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, got.PromisesAtRisk)
}

func TestAggregateWeeklySummary_PromisesAtRisk(t *testing.T) {
	// Day 4 of 7 elapsed: expected pace for a 7-unit target is 4, at-risk below 2.
	got := AggregateWeeklySummary(SummaryInput{
		PromiseLogs: []domain.PromiseLogEntry{
			promise(0, "behind", 1),
			promise(0, "onpace", 2),
		},
		Priorities: []domain.PriorityTarget{
			priority("behind", 7),
			priority("onpace", 7),
			priority("untouched", 7),
		},
		WindowStart: weekStart,
		WindowEnd:   weekEnd,
		Now:         day(3),
	})

	assert.Equal(t, 2, got.PromisesAtRisk)
	behind, _ := got.Priority("behind")
	assert.True(t, behind.AtRisk)
	onPace, _ := got.Priority("onpace")
	assert.False(t, onPace.AtRisk)
}

func TestAggregateWeeklySummary_NothingAtRiskBeforeWindowStarts(t *testing.T) {
	got := AggregateWeeklySummary(SummaryInput{
		Priorities:  []domain.PriorityTarget{priority("ship", 5)},
		WindowStart: weekStart,
		WindowEnd:   weekEnd,
		Now:         weekStart.AddDate(0, 0, -2),
	})
	assert.Equal(t, 0, got.PromisesAtRisk)
}

func TestAggregateWeeklySummary_Idempotent(t *testing.T) {
	in := SummaryInput{
		Logs:        []domain.DailyLogEntry{logOn(0, 4, 1, 2), logOn(2, 3, 2, 2)},
		PromiseLogs: []domain.PromiseLogEntry{promise(0, "ship", 1)},
		Priorities:  []domain.PriorityTarget{priority("ship", 5)},
		WindowStart: weekStart,
		WindowEnd:   weekEnd,
		Now:         day(4),
	}

	first := AggregateWeeklySummary(in)
	second := AggregateWeeklySummary(in)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated aggregation differs (-first +second):\n%s", diff)
	}
	assert.Len(t, in.Logs, 2, "input must not be mutated")
}

func TestElapsedFraction(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"before window", weekStart.AddDate(0, 0, -1), 0},
		{"first day", weekStart, 1.0 / 7},
		{"mid window with time of day", day(3).Add(15 * time.Hour), 4.0 / 7},
		{"last day", weekEnd, 1},
		{"after window", weekEnd.AddDate(0, 0, 3), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ElapsedFraction(weekStart, weekEnd, tt.now), 1e-9)
		})
	}
}

func TestElapsedFraction_DegenerateWindow(t *testing.T) {
	assert.Equal(t, 1.0, ElapsedFraction(weekEnd, weekStart, weekStart))
}
