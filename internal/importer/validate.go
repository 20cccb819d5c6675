package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/engine"
	"github.com/alextm0/identity-shift-sub002/internal/wizard"
)

// ValidateSnapshot checks the snapshot for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSnapshot(s *Snapshot) []error {
	var errs []error

	errs = append(errs, validateSprint(s.Sprint)...)

	if s.Sprint == nil && (len(s.Priorities) > 0 || len(s.PromiseLogs) > 0) {
		errs = append(errs, fmt.Errorf("sprint is required when priorities or promise_logs are present"))
	}

	keys := make(map[string]bool)
	errs = append(errs, validatePriorities(s.Priorities, keys)...)
	errs = append(errs, validateDailyLogs(s.DailyLogs)...)
	errs = append(errs, validatePromiseLogs(s.PromiseLogs, keys)...)
	errs = append(errs, validateReview(s.Review)...)
	errs = append(errs, validatePlanDraft(s.PlanDraft)...)

	return errs
}

func validateSprint(sp *SprintImport) []error {
	if sp == nil {
		return nil
	}
	var errs []error

	if strings.TrimSpace(sp.Name) == "" {
		errs = append(errs, fmt.Errorf("sprint.name is required"))
	}
	start, startErr := requireDate("sprint.start_date", sp.StartDate)
	end, endErr := requireDate("sprint.end_date", sp.EndDate)
	errs = appendIf(errs, startErr)
	errs = appendIf(errs, endErr)
	if startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, fmt.Errorf("sprint.end_date %q is before start_date %q", sp.EndDate, sp.StartDate))
	}
	if sp.Status != "" && !domain.ValidSprintStatuses[sp.Status] {
		errs = append(errs, fmt.Errorf("sprint.status: invalid value %q", sp.Status))
	}

	return errs
}

func validatePriorities(items []PriorityImport, keys map[string]bool) []error {
	var errs []error

	for i, p := range items {
		prefix := fmt.Sprintf("priorities[%d]", i)
		if p.Key == "" {
			errs = append(errs, fmt.Errorf("%s.key is required", prefix))
		} else if keys[p.Key] {
			errs = append(errs, fmt.Errorf("%s.key: duplicate key %q", prefix, p.Key))
		} else {
			keys[p.Key] = true
		}
		if p.Type != "" && !domain.ValidPriorityTypes[p.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, p.Type))
		}
		if p.WeeklyTargetUnits <= 0 {
			errs = append(errs, fmt.Errorf("%s.weekly_target_units must be > 0, got %g", prefix, p.WeeklyTargetUnits))
		}
	}

	return errs
}

func validateDailyLogs(items []DailyLogImport) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, l := range items {
		prefix := fmt.Sprintf("daily_logs[%d]", i)
		if _, err := requireDate(prefix+".date", l.Date); err != nil {
			errs = append(errs, err)
		} else if seen[l.Date] {
			errs = append(errs, fmt.Errorf("%s.date: duplicate entry for %s", prefix, l.Date))
		} else {
			seen[l.Date] = true
		}
		if l.EnergyLevel < 1 || l.EnergyLevel > 5 {
			errs = append(errs, fmt.Errorf("%s.energy_level must be 1-5, got %d", prefix, l.EnergyLevel))
		}
		if l.SleepHours < 0 {
			errs = append(errs, fmt.Errorf("%s.sleep_hours must be >= 0", prefix))
		}
		if l.ProgressUnits < 0 || l.MotionUnits < 0 {
			errs = append(errs, fmt.Errorf("%s: units must be >= 0", prefix))
		}
		if !engine.ValidateProofOfWork(l.ProgressUnits, l.Proof) {
			errs = append(errs, fmt.Errorf("%s.proof: progress requires at least %d characters of proof", prefix, engine.ProofMinLength))
		}
	}

	return errs
}

func validatePromiseLogs(items []PromiseLogImport, keys map[string]bool) []error {
	var errs []error

	for i, l := range items {
		prefix := fmt.Sprintf("promise_logs[%d]", i)
		if _, err := requireDate(prefix+".date", l.Date); err != nil {
			errs = append(errs, err)
		}
		if l.PromiseID == "" {
			errs = append(errs, fmt.Errorf("%s.promise_id is required", prefix))
		} else if !keys[l.PromiseID] {
			errs = append(errs, fmt.Errorf("%s.promise_id: unknown priority %q", prefix, l.PromiseID))
		}
		if l.Units < 0 {
			errs = append(errs, fmt.Errorf("%s.units must be >= 0", prefix))
		}
	}

	return errs
}

func validateReview(r *ReviewImport) []error {
	if r == nil {
		return nil
	}
	var errs []error

	if r.Year <= 0 {
		errs = append(errs, fmt.Errorf("review.year is required"))
	}
	errs = append(errs, validateRatings("review.ratings", r.Ratings)...)

	return errs
}

func validatePlanDraft(d *PlanDraftImport) []error {
	if d == nil {
		return nil
	}
	var errs []error

	steps := wizard.PlanWizard.StepCount()
	if d.CurrentStep != 0 && (d.CurrentStep < 1 || d.CurrentStep > steps) {
		errs = append(errs, fmt.Errorf("plan_draft.current_step must be 1-%d, got %d", steps, d.CurrentStep))
	}
	errs = append(errs, validateRatings("plan_draft.targets", d.Targets)...)

	for i, g := range d.Goals {
		prefix := fmt.Sprintf("plan_draft.goals[%d]", i)
		if strings.TrimSpace(g.Text) == "" {
			errs = append(errs, fmt.Errorf("%s: text (or originalText) is required", prefix))
		}
		if g.Dimension != "" {
			if _, ok := domain.ParseDimension(g.Dimension); !ok {
				errs = append(errs, fmt.Errorf("%s.dimension: unknown dimension %q", prefix, g.Dimension))
			}
		}
	}

	return errs
}

func validateRatings(field string, ratings RatingsImport) []error {
	var errs []error
	seen := make(map[domain.Dimension]string)

	for name, v := range ratings {
		d, ok := domain.ParseDimension(name)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: unknown dimension %q", field, name))
			continue
		}
		if prev, dup := seen[d]; dup {
			errs = append(errs, fmt.Errorf("%s: %q and %q name the same dimension", field, prev, name))
		}
		seen[d] = name
		if v.Score < domain.MinRating || v.Score > domain.MaxRating {
			errs = append(errs, fmt.Errorf("%s.%s must be %d-%d, got %d", field, name, domain.MinRating, domain.MaxRating, v.Score))
		}
	}

	return errs
}

func requireDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	t, err := domain.ParseDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, s)
	}
	return t, nil
}

func appendIf(errs []error, err error) []error {
	if err != nil {
		return append(errs, err)
	}
	return errs
}
