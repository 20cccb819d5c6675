package domain

import (
	"strings"
	"time"
)

// Goal is a free-form goal captured in the plan wizard. Promoting a goal to
// annual status requires a definition of done later in the flow.
type Goal struct {
	ID               string    `json:"id"`
	Text             string    `json:"text"`
	Dimension        Dimension `json:"dimension,omitempty"`
	Annual           bool      `json:"annual"`
	DefinitionOfDone string    `json:"definitionOfDone,omitempty"`
}

// AntiGoal is a pre-mortem entry: something that must not happen, and how to
// prevent it.
type AntiGoal struct {
	Text       string `json:"text"`
	Mitigation string `json:"mitigation,omitempty"`
}

// WizardState is an in-progress planning or review draft. The UI layer mutates
// it between renders; gates only read it.
type WizardState struct {
	Kind        WizardKind `json:"kind"`
	CurrentStep int        `json:"currentStep"`
	Completed   bool       `json:"completed"`

	// Plan wizard.
	BrainDump      string           `json:"brainDump,omitempty"`
	Identity       string           `json:"identity,omitempty"`
	Targets        DimensionRatings `json:"targets,omitempty"`
	Goals          []Goal           `json:"goals,omitempty"`
	AntiGoals      []AntiGoal       `json:"antiGoals,omitempty"`
	Letter         string           `json:"letter,omitempty"`
	SignatureImage string           `json:"signatureImage,omitempty"`

	// Review wizard.
	Year        int              `json:"year,omitempty"`
	Wins        []string         `json:"wins,omitempty"`
	Ratings     DimensionRatings `json:"ratings,omitempty"`
	Lessons     string           `json:"lessons,omitempty"`
	KeyDecision string           `json:"keyDecision,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// NewWizardState returns a fresh draft positioned on step 1.
func NewWizardState(kind WizardKind) *WizardState {
	return &WizardState{Kind: kind, CurrentStep: 1}
}

// AnnualGoals returns the goals promoted to annual status.
func (s WizardState) AnnualGoals() []Goal {
	var out []Goal
	for _, g := range s.Goals {
		if g.Annual {
			out = append(out, g)
		}
	}
	return out
}

// FilledAntiGoals counts anti-goals with non-blank text.
func (s WizardState) FilledAntiGoals() int {
	n := 0
	for _, a := range s.AntiGoals {
		if strings.TrimSpace(a.Text) != "" {
			n++
		}
	}
	return n
}

// FilledWins counts wins with non-blank text.
func (s WizardState) FilledWins() int {
	n := 0
	for _, w := range s.Wins {
		if strings.TrimSpace(w) != "" {
			n++
		}
	}
	return n
}
