package formatter

import (
	"fmt"
	"strings"

	"github.com/alextm0/identity-shift-sub002/internal/app"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/wizard"
)

// stepHints say what unblocks a gated step.
var stepHints = map[domain.WizardKind]map[int]string{
	domain.WizardPlan: {
		4: "add at least one goal: shift wizard goal add <text>",
		5: "mark a goal annual: shift wizard goal annual <n>",
		6: "give every annual goal a definition of done: shift wizard goal done <n> <text>",
		7: fmt.Sprintf("list at least %d anti-goals: shift wizard antigoal add <text>", wizard.MinAntiGoals),
		9: "sign the plan: shift wizard set signature <name>",
	},
	domain.WizardReview: {
		1: "record at least one win: shift wizard set win <text>",
		4: "state the key decision: shift wizard set decision <text>",
	},
}

// FormatWizard renders the draft's position, the fields captured so far and
// whether the current step may be left.
func FormatWizard(view *app.WizardView) string {
	var b strings.Builder
	st := view.State

	b.WriteString(Header(fmt.Sprintf("%s wizard", st.Kind)))
	b.WriteString("\n")
	writeField(&b, "Step", fmt.Sprintf("%s %s",
		Bold(fmt.Sprintf("%d/%d", st.CurrentStep, view.StepCount)), view.StepTitle))
	writeField(&b, "Progress", stepDots(st.CurrentStep, view.StepCount))

	switch {
	case st.Completed:
		writeField(&b, "Status", StyleGreen.Render("✓ completed"))
	case view.CanAdvance:
		writeField(&b, "Status", StyleGreen.Render("✓ ready for the next step"))
	default:
		status := StyleRed.Render("✗ blocked")
		if hint := stepHints[st.Kind][st.CurrentStep]; hint != "" {
			status += " " + Dim(hint)
		}
		writeField(&b, "Status", status)
	}

	b.WriteString("\n")
	if st.Kind == domain.WizardReview {
		writeReviewDraft(&b, st)
	} else {
		writePlanDraft(&b, st)
	}
	return b.String()
}

func stepDots(current, total int) string {
	var b strings.Builder
	for i := 1; i <= total; i++ {
		switch {
		case i < current:
			b.WriteString(StyleGreen.Render("●"))
		case i == current:
			b.WriteString(StyleHeader.Render("●"))
		default:
			b.WriteString(StyleDim.Render("○"))
		}
	}
	return b.String()
}

func writePlanDraft(b *strings.Builder, st *domain.WizardState) {
	if st.Identity != "" {
		writeField(b, "Identity", st.Identity)
	}
	if len(st.Targets) > 0 {
		parts := make([]string, 0, len(st.Targets))
		for _, d := range domain.AllDimensions {
			if v, ok := st.Targets[d]; ok {
				parts = append(parts, fmt.Sprintf("%s %d", d.Label(), v))
			}
		}
		writeField(b, "Targets", strings.Join(parts, ", "))
	}
	if len(st.Goals) > 0 {
		headers := []string{"#", "GOAL", "DIMENSION", "ANNUAL", "DONE WHEN"}
		rows := make([][]string, 0, len(st.Goals))
		for i, g := range st.Goals {
			annual := Dim("-")
			if g.Annual {
				annual = StyleGreen.Render("yes")
			}
			dim := Dim("-")
			if g.Dimension != "" {
				dim = g.Dimension.Label()
			}
			done := Dim("-")
			if g.DefinitionOfDone != "" {
				done = Truncate(g.DefinitionOfDone, 32)
			}
			rows = append(rows, []string{fmt.Sprint(i + 1), Truncate(g.Text, 40), dim, annual, done})
		}
		b.WriteString("\n")
		b.WriteString(RenderTable(headers, rows))
	}
	if len(st.AntiGoals) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleBold.Render("Anti-goals"))
		b.WriteString("\n")
		for _, a := range st.AntiGoals {
			line := a.Text
			if a.Mitigation != "" {
				line += Dim(" → " + a.Mitigation)
			}
			fmt.Fprintf(b, "  %s %s\n", StyleDim.Render("•"), line)
		}
	}
	if st.SignatureImage != "" {
		writeField(b, "Signed", StyleGreen.Render("yes"))
	}
}

func writeReviewDraft(b *strings.Builder, st *domain.WizardState) {
	if st.Year != 0 {
		writeField(b, "Year", fmt.Sprint(st.Year))
	}
	writeList(b, "Wins", st.Wins)
	if len(st.Ratings) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatRatings(st.Ratings))
	}
	if st.Lessons != "" {
		writeField(b, "Lessons", st.Lessons)
	}
	if st.KeyDecision != "" {
		writeField(b, "Decision", st.KeyDecision)
	}
}
