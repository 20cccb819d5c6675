package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/google/uuid"
)

// Converted holds the canonical records produced from a snapshot.
type Converted struct {
	Sprint      *domain.Sprint
	Priorities  []*domain.PriorityTarget
	DailyLogs   []*domain.DailyLogEntry
	PromiseLogs []*domain.PromiseLogEntry
	Review      *domain.YearlyReview
	PlanDraft   *domain.WizardState
}

// Convert transforms a validated Snapshot into domain records ready for
// persistence. Call ValidateSnapshot first; Convert assumes the snapshot is
// valid.
func Convert(s *Snapshot) (*Converted, error) {
	now := time.Now().UTC()
	out := &Converted{}

	if s.Sprint != nil {
		start, err := domain.ParseDay(s.Sprint.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parsing sprint.start_date: %w", err)
		}
		end, err := domain.ParseDay(s.Sprint.EndDate)
		if err != nil {
			return nil, fmt.Errorf("parsing sprint.end_date: %w", err)
		}
		out.Sprint = &domain.Sprint{
			ID:        uuid.New().String(),
			Name:      strings.TrimSpace(s.Sprint.Name),
			StartDate: start,
			EndDate:   end,
			Status:    domain.SprintStatus(domain.CoalesceStr(s.Sprint.Status, string(domain.SprintActive))),
			CreatedAt: now,
			UpdatedAt: now,
		}

		for i, p := range s.Priorities {
			out.Priorities = append(out.Priorities, &domain.PriorityTarget{
				ID:                uuid.New().String(),
				SprintID:          out.Sprint.ID,
				Key:               p.Key,
				Label:             domain.CoalesceStr(p.Label, p.Key),
				Type:              domain.PriorityType(domain.CoalesceStr(p.Type, string(domain.PriorityBuild))),
				WeeklyTargetUnits: p.WeeklyTargetUnits,
				UnitDefinition:    p.UnitDefinition,
				Order:             i,
				CreatedAt:         now,
			})
		}

		for _, l := range s.PromiseLogs {
			day, err := domain.ParseDay(l.Date)
			if err != nil {
				return nil, fmt.Errorf("parsing promise log date: %w", err)
			}
			out.PromiseLogs = append(out.PromiseLogs, &domain.PromiseLogEntry{
				ID:        uuid.New().String(),
				SprintID:  out.Sprint.ID,
				Date:      day,
				PromiseID: l.PromiseID,
				Units:     l.Units,
				Note:      l.Note,
				CreatedAt: now,
			})
		}
	}

	for _, l := range s.DailyLogs {
		day, err := domain.ParseDay(l.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing daily log date: %w", err)
		}
		out.DailyLogs = append(out.DailyLogs, &domain.DailyLogEntry{
			ID:                 uuid.New().String(),
			Date:               day,
			EnergyLevel:        l.EnergyLevel,
			SleepHours:         l.SleepHours,
			MainFocusCompleted: l.MainFocusCompleted,
			ProgressUnits:      l.ProgressUnits,
			MotionUnits:        l.MotionUnits,
			Proof:              strings.TrimSpace(l.Proof),
			Note:               l.Note,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}

	if r := s.Review; r != nil {
		out.Review = &domain.YearlyReview{
			ID:          uuid.New().String(),
			Year:        r.Year,
			Ratings:     NormalizeRatings(r.Ratings).Complete(),
			Wins:        r.Wins,
			Challenges:  r.Challenges,
			Lessons:     r.Lessons,
			KeyDecision: r.KeyDecision,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	if d := s.PlanDraft; d != nil {
		state := domain.NewWizardState(domain.WizardPlan)
		if d.CurrentStep > 0 {
			state.CurrentStep = d.CurrentStep
		}
		state.BrainDump = d.BrainDump
		state.Identity = d.Identity
		state.Targets = NormalizeRatings(d.Targets)
		state.Goals = NormalizeGoals(d.Goals)
		for _, a := range d.AntiGoals {
			state.AntiGoals = append(state.AntiGoals, domain.AntiGoal{Text: a.Text, Mitigation: a.Mitigation})
		}
		state.Letter = d.Letter
		state.SignatureImage = d.SignatureImage
		state.UpdatedAt = now
		out.PlanDraft = state
	}

	return out, nil
}

// NormalizeRatings maps label- or key-addressed scores onto canonical
// dimensions. Unknown names are dropped; missing dimensions stay missing.
func NormalizeRatings(in RatingsImport) domain.DimensionRatings {
	if len(in) == 0 {
		return nil
	}
	out := make(domain.DimensionRatings, len(in))
	for name, v := range in {
		if d, ok := domain.ParseDimension(name); ok {
			out[d] = v.Score
		}
	}
	return out
}

// NormalizeGoals converts goals of any shape into canonical goals, assigning
// IDs where the export had none.
func NormalizeGoals(in []GoalImport) []domain.Goal {
	out := make([]domain.Goal, 0, len(in))
	for _, g := range in {
		goal := domain.Goal{
			ID:               domain.CoalesceStr(g.ID, uuid.New().String()),
			Text:             strings.TrimSpace(g.Text),
			Annual:           g.Annual,
			DefinitionOfDone: strings.TrimSpace(g.DefinitionOfDone),
		}
		if d, ok := domain.ParseDimension(g.Dimension); ok {
			goal.Dimension = d
		}
		out = append(out, goal)
	}
	return out
}
