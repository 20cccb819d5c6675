package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alextm0/identity-shift-sub002/internal/cli/formatter"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/engine"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// shiftHuhTheme returns a huh theme matching the formatter palette.
func shiftHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(shiftHuhTheme()).WithShowHelp(false)
}

// dailyLogInput backs the interactive daily log form. Fields edited through
// huh text inputs are kept as strings.
type dailyLogInput struct {
	Energy   int
	Sleep    string
	Focus    bool
	Progress string
	Motion   string
	Proof    string
	Note     string
}

// apply copies parsed form values onto e. The form's validators have already
// checked every field.
func (in *dailyLogInput) apply(e *domain.DailyLogEntry) {
	e.EnergyLevel = in.Energy
	e.SleepHours, _ = strconv.ParseFloat(strings.TrimSpace(in.Sleep), 64)
	e.MainFocusCompleted = in.Focus
	e.ProgressUnits, _ = strconv.Atoi(strings.TrimSpace(in.Progress))
	e.MotionUnits, _ = strconv.Atoi(strings.TrimSpace(in.Motion))
	e.Proof = strings.TrimSpace(in.Proof)
	e.Note = strings.TrimSpace(in.Note)
}

func dailyLogForm(in *dailyLogInput) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Energy").
				Description("1 drained, 5 sharp").
				Options(huh.NewOptions(1, 2, 3, 4, 5)...).
				Value(&in.Energy),
			huh.NewInput().
				Title("Sleep (hours)").
				Placeholder("7").
				Value(&in.Sleep).
				Validate(validateNonNegativeFloat),
			huh.NewConfirm().
				Title("Main focus completed?").
				Value(&in.Focus),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Progress units").
				Description("Evidenced output: shipped, written, trained").
				Placeholder("0").
				Value(&in.Progress).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Motion units").
				Description("Planning, organizing, researching").
				Placeholder("0").
				Value(&in.Motion).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Proof of work").
				Value(&in.Proof).
				Validate(func(s string) error {
					progress, _ := strconv.Atoi(strings.TrimSpace(in.Progress))
					if !engine.ValidateProofOfWork(progress, s) {
						return fmt.Errorf("describe the work in at least %d characters", engine.ProofMinLength)
					}
					return nil
				}),
			huh.NewText().
				Title("Note").
				Value(&in.Note),
		),
	)
}

// ratingsForm edits one 1-10 select per dimension, in canonical order.
func ratingsForm(scores []int) *huh.Form {
	options := make([]huh.Option[int], 0, domain.MaxRating)
	for i := domain.MinRating; i <= domain.MaxRating; i++ {
		options = append(options, huh.NewOption(strconv.Itoa(i), i))
	}
	fields := make([]huh.Field, 0, len(domain.AllDimensions))
	for i, d := range domain.AllDimensions {
		fields = append(fields, huh.NewSelect[int]().
			Title(d.Label()).
			Options(options...).
			Value(&scores[i]))
	}
	return newForm(huh.NewGroup(fields...))
}

// textForm prompts for a single free-text value.
func textForm(title string, value *string) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewText().
			Title(title).
			Value(value),
	))
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a whole number, 0 or more")
	}
	return nil
}

// validateNonNegativeFloat accepts empty or a non-negative number.
func validateNonNegativeFloat(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a number, 0 or more")
	}
	return nil
}
