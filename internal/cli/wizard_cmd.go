package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alextm0/identity-shift-sub002/internal/app"
	"github.com/alextm0/identity-shift-sub002/internal/cli/formatter"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newWizardCmd(a *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Step through the yearly plan or review wizard",
	}
	cmd.PersistentFlags().StringVar(&kind, "kind", string(domain.WizardPlan), "Wizard: plan|review")

	wk := func() domain.WizardKind { return domain.WizardKind(strings.ToLower(strings.TrimSpace(kind))) }

	cmd.AddCommand(
		newWizardNavCmd(a, wk, "status", "Show the draft and whether its step can be left", a.Wizards.Load),
		newWizardNavCmd(a, wk, "next", "Move to the next step, or complete the wizard on its last step", a.Wizards.Next),
		newWizardNavCmd(a, wk, "back", "Move to the previous step", a.Wizards.Back),
		newWizardResetCmd(a, wk),
		newWizardGoalCmd(a),
		newWizardAntiGoalCmd(a),
		newWizardSetCmd(a, wk),
	)

	return cmd
}

func newWizardNavCmd(
	a *App,
	kind func() domain.WizardKind,
	use, short string,
	move func(context.Context, domain.WizardKind) (*app.WizardView, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := move(context.Background(), kind())
			if errors.Is(err, domain.ErrStepBlocked) {
				return fmt.Errorf("%w; run `shift wizard status` to see what is missing", err)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWizard(view))
			return nil
		},
	}
}

func newWizardResetCmd(a *App, kind func() domain.WizardKind) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := kind()
			if err := a.Wizards.Reset(context.Background(), k); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Discarded %s draft\n", domain.CoalesceStr(string(k), string(domain.WizardPlan)))
			return nil
		},
	}
}

// editDraft loads the draft of kind, applies edit and saves it.
func editDraft(ctx context.Context, a *App, kind domain.WizardKind, edit func(*domain.WizardState) error) (*app.WizardView, error) {
	view, err := a.Wizards.Load(ctx, kind)
	if err != nil {
		return nil, err
	}
	if err := edit(view.State); err != nil {
		return nil, err
	}
	return a.Wizards.Save(ctx, view.State)
}

func runEdit(cmd *cobra.Command, a *App, kind domain.WizardKind, edit func(*domain.WizardState) error) error {
	view, err := editDraft(context.Background(), a, kind, edit)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWizard(view))
	return nil
}

// indexArg parses a 1-based list position.
func indexArg(s string, n int, what string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 || i > n {
		return 0, fmt.Errorf("no %s #%s (have %d)", what, s, n)
	}
	return i - 1, nil
}

func newWizardGoalCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Edit the plan draft's goals",
	}

	var dimension string
	add := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := domain.Goal{ID: uuid.New().String(), Text: strings.TrimSpace(args[0])}
			if g.Text == "" {
				return fmt.Errorf("goal text is required")
			}
			if dimension != "" {
				d, ok := domain.ParseDimension(dimension)
				if !ok {
					return fmt.Errorf("unknown dimension %q (one of %s)", dimension, dimensionKeys())
				}
				g.Dimension = d
			}
			return runEdit(cmd, a, domain.WizardPlan, func(s *domain.WizardState) error {
				s.Goals = append(s.Goals, g)
				return nil
			})
		},
	}
	add.Flags().StringVar(&dimension, "dimension", "", "Life dimension the goal serves")

	var off bool
	annual := &cobra.Command{
		Use:   "annual <n>",
		Short: "Promote goal n to an annual goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, a, domain.WizardPlan, func(s *domain.WizardState) error {
				i, err := indexArg(args[0], len(s.Goals), "goal")
				if err != nil {
					return err
				}
				s.Goals[i].Annual = !off
				return nil
			})
		},
	}
	annual.Flags().BoolVar(&off, "off", false, "Demote instead")

	done := &cobra.Command{
		Use:   "done <n> <definition>",
		Short: "Set what done means for goal n",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, a, domain.WizardPlan, func(s *domain.WizardState) error {
				i, err := indexArg(args[0], len(s.Goals), "goal")
				if err != nil {
					return err
				}
				s.Goals[i].DefinitionOfDone = strings.TrimSpace(args[1])
				return nil
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <n>",
		Short: "Remove goal n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, a, domain.WizardPlan, func(s *domain.WizardState) error {
				i, err := indexArg(args[0], len(s.Goals), "goal")
				if err != nil {
					return err
				}
				s.Goals = append(s.Goals[:i], s.Goals[i+1:]...)
				return nil
			})
		},
	}

	cmd.AddCommand(add, annual, done, remove)
	return cmd
}

func newWizardAntiGoalCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "antigoal",
		Short: "Edit the plan draft's anti-goals",
	}

	var mitigation string
	add := &cobra.Command{
		Use:   "add <text>",
		Short: "Add something that must not happen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ag := domain.AntiGoal{Text: strings.TrimSpace(args[0]), Mitigation: strings.TrimSpace(mitigation)}
			if ag.Text == "" {
				return fmt.Errorf("anti-goal text is required")
			}
			return runEdit(cmd, a, domain.WizardPlan, func(s *domain.WizardState) error {
				s.AntiGoals = append(s.AntiGoals, ag)
				return nil
			})
		},
	}
	add.Flags().StringVar(&mitigation, "mitigation", "", "How to prevent it")

	remove := &cobra.Command{
		Use:   "remove <n>",
		Short: "Remove anti-goal n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, a, domain.WizardPlan, func(s *domain.WizardState) error {
				i, err := indexArg(args[0], len(s.AntiGoals), "anti-goal")
				if err != nil {
					return err
				}
				s.AntiGoals = append(s.AntiGoals[:i], s.AntiGoals[i+1:]...)
				return nil
			})
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

type fieldSetter func(s *domain.WizardState, value string) error

func textSetter(get func(*domain.WizardState) *string) fieldSetter {
	return func(s *domain.WizardState, value string) error {
		*get(s) = strings.TrimSpace(value)
		return nil
	}
}

// ratingSetter parses "dimension=score" into the map get returns.
func ratingSetter(get func(*domain.WizardState) *domain.DimensionRatings) fieldSetter {
	return func(s *domain.WizardState, value string) error {
		name, raw, ok := strings.Cut(value, "=")
		if !ok {
			return fmt.Errorf("use dimension=score, e.g. health=7")
		}
		score, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("score %q is not a number", raw)
		}
		parsed, err := parseRatings(map[string]int{name: score})
		if err != nil {
			return err
		}
		m := get(s)
		if *m == nil {
			*m = domain.DimensionRatings{}
		}
		for d, v := range parsed {
			(*m)[d] = v
		}
		return nil
	}
}

var wizardFields = map[domain.WizardKind]map[string]fieldSetter{
	domain.WizardPlan: {
		"brain-dump": textSetter(func(s *domain.WizardState) *string { return &s.BrainDump }),
		"identity":   textSetter(func(s *domain.WizardState) *string { return &s.Identity }),
		"letter":     textSetter(func(s *domain.WizardState) *string { return &s.Letter }),
		"signature":  textSetter(func(s *domain.WizardState) *string { return &s.SignatureImage }),
		"target":     ratingSetter(func(s *domain.WizardState) *domain.DimensionRatings { return &s.Targets }),
	},
	domain.WizardReview: {
		"lessons":  textSetter(func(s *domain.WizardState) *string { return &s.Lessons }),
		"decision": textSetter(func(s *domain.WizardState) *string { return &s.KeyDecision }),
		"rating":   ratingSetter(func(s *domain.WizardState) *domain.DimensionRatings { return &s.Ratings }),
		"win": func(s *domain.WizardState, value string) error {
			if v := strings.TrimSpace(value); v != "" {
				s.Wins = append(s.Wins, v)
			}
			return nil
		},
		"year": func(s *domain.WizardState, value string) error {
			year, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || year <= 0 {
				return fmt.Errorf("invalid year %q", value)
			}
			s.Year = year
			return nil
		},
	},
}

func fieldNames(kind domain.WizardKind) string {
	names := make([]string, 0, len(wizardFields[kind]))
	for name := range wizardFields[kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newWizardSetCmd(a *App, kind func() domain.WizardKind) *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> [value]",
		Short: "Set a draft field; prompts for the value in a terminal when omitted",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k := kind()
			if k == "" {
				k = domain.WizardPlan
			}
			setter, ok := wizardFields[k][args[0]]
			if !ok {
				return fmt.Errorf("unknown %s field %q (one of %s)", k, args[0], fieldNames(k))
			}

			var value string
			if len(args) == 2 {
				value = args[1]
			} else {
				if !a.interactive() {
					return fmt.Errorf("a value for %q is required when not running in a terminal", args[0])
				}
				if err := textForm(args[0], &value).Run(); err != nil {
					return err
				}
			}

			return runEdit(cmd, a, k, func(s *domain.WizardState) error {
				return setter(s, value)
			})
		},
	}
}
