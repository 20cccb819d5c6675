package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/spf13/pflag"
)

// dateFlag is a pflag.Value holding a calendar day given as YYYY-MM-DD.
type dateFlag struct {
	day time.Time
	set bool
}

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) String() string {
	if !f.set {
		return ""
	}
	return f.day.Format(domain.DateLayout)
}

func (f *dateFlag) Set(s string) error {
	d, err := domain.ParseDay(s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	f.day, f.set = d, true
	return nil
}

func (f *dateFlag) Type() string { return "date" }

// Or returns the flag's day, or fallback truncated to a day when unset.
func (f *dateFlag) Or(fallback time.Time) time.Time {
	if f.set {
		return f.day
	}
	return domain.Day(fallback)
}

// ptr returns the flag's day as a pointer, nil when unset.
func (f *dateFlag) ptr() *time.Time {
	if !f.set {
		return nil
	}
	d := f.day
	return &d
}

// parseRatings resolves "dimension=score" pairs, accepting dimension keys or
// labels.
func parseRatings(raw map[string]int) (domain.DimensionRatings, error) {
	out := make(domain.DimensionRatings, len(raw))
	for name, score := range raw {
		d, ok := domain.ParseDimension(name)
		if !ok {
			return nil, fmt.Errorf("unknown dimension %q (one of %s)", name, dimensionKeys())
		}
		out[d] = score
	}
	return out, out.Validate()
}

func dimensionKeys() string {
	keys := make([]string, 0, len(domain.AllDimensions))
	for _, d := range domain.AllDimensions {
		keys = append(keys, string(d))
	}
	return strings.Join(keys, ", ")
}

// resolveSprintID returns ref when it names a sprint by ID or unique ID
// prefix. An empty ref selects the active sprint.
func resolveSprintID(ctx context.Context, app *App, ref string) (string, error) {
	if ref == "" {
		sp, err := app.Sprints.Active(ctx)
		if errors.Is(err, domain.ErrNoActiveSprint) {
			return "", fmt.Errorf("%w: create one with `shift sprint create`", err)
		}
		if err != nil {
			return "", err
		}
		return sp.ID, nil
	}

	if sp, err := app.Sprints.Get(ctx, ref); err == nil {
		return sp.ID, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	sprints, err := app.Sprints.List(ctx)
	if err != nil {
		return "", err
	}
	var match string
	for _, sp := range sprints {
		if strings.HasPrefix(sp.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("sprint prefix %q is ambiguous", ref)
			}
			match = sp.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("sprint %q: %w", ref, domain.ErrNotFound)
	}
	return match, nil
}
