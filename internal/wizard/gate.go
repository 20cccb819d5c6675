package wizard

import (
	"strings"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
)

// Step is one screen of a wizard. Ready reports whether the draft may move
// past it.
type Step struct {
	Number int
	Title  string
	Ready  func(domain.WizardState) bool
}

// Definition is the fixed step sequence of one wizard kind.
type Definition struct {
	Kind  domain.WizardKind
	Steps []Step
}

// StepCount returns the number of steps in the wizard.
func (d Definition) StepCount() int {
	return len(d.Steps)
}

// Step returns the 1-indexed step n.
func (d Definition) Step(n int) (Step, bool) {
	if n < 1 || n > len(d.Steps) {
		return Step{}, false
	}
	return d.Steps[n-1], true
}

func always(domain.WizardState) bool { return true }

const MinAntiGoals = 3

// PlanWizard is the annual planning flow.
var PlanWizard = Definition{
	Kind: domain.WizardPlan,
	Steps: []Step{
		{Number: 1, Title: "Brain dump", Ready: always},
		{Number: 2, Title: "Identity statement", Ready: always},
		{Number: 3, Title: "Dimension targets", Ready: always},
		{Number: 4, Title: "Goals", Ready: func(s domain.WizardState) bool {
			return len(s.Goals) > 0
		}},
		{Number: 5, Title: "Annual goals", Ready: func(s domain.WizardState) bool {
			return len(s.AnnualGoals()) > 0
		}},
		{Number: 6, Title: "Definitions of done", Ready: func(s domain.WizardState) bool {
			for _, g := range s.AnnualGoals() {
				if strings.TrimSpace(g.DefinitionOfDone) == "" {
					return false
				}
			}
			return true
		}},
		{Number: 7, Title: "Anti-goals", Ready: func(s domain.WizardState) bool {
			return s.FilledAntiGoals() >= MinAntiGoals
		}},
		{Number: 8, Title: "Letter to future self", Ready: always},
		{Number: 9, Title: "Signature", Ready: func(s domain.WizardState) bool {
			return strings.TrimSpace(s.SignatureImage) != ""
		}},
	},
}

// ReviewWizard is the yearly review flow.
var ReviewWizard = Definition{
	Kind: domain.WizardReview,
	Steps: []Step{
		{Number: 1, Title: "Wins", Ready: func(s domain.WizardState) bool {
			return s.FilledWins() > 0
		}},
		{Number: 2, Title: "Dimension ratings", Ready: always},
		{Number: 3, Title: "Lessons", Ready: always},
		{Number: 4, Title: "Key decision", Ready: func(s domain.WizardState) bool {
			return strings.TrimSpace(s.KeyDecision) != ""
		}},
		{Number: 5, Title: "Narrative", Ready: always},
	},
}

// DefinitionFor returns the wizard definition for kind. An empty kind
// resolves to the plan wizard.
func DefinitionFor(kind domain.WizardKind) (Definition, bool) {
	switch kind {
	case domain.WizardPlan, "":
		return PlanWizard, true
	case domain.WizardReview:
		return ReviewWizard, true
	}
	return Definition{}, false
}

// CanAdvance reports whether the draft satisfies the gate of its current
// step. On the final step a satisfied gate means the wizard may complete.
// Unknown kinds and out-of-range steps never advance.
func CanAdvance(state domain.WizardState) bool {
	def, ok := DefinitionFor(state.Kind)
	if !ok {
		return false
	}
	step, ok := def.Step(state.CurrentStep)
	if !ok {
		return false
	}
	return step.Ready(state)
}

// CanRetreat reports whether a backward move from step is allowed.
func CanRetreat(step int) bool {
	return step > 1
}

// IsTerminal reports whether the draft is on its final step with that
// step's gate satisfied.
func IsTerminal(state domain.WizardState) bool {
	def, ok := DefinitionFor(state.Kind)
	if !ok {
		return false
	}
	return state.CurrentStep == def.StepCount() && CanAdvance(state)
}

// Advance returns the step the draft moves to. done is true when the final
// step's gate is satisfied; the step number then stays on the final step.
func Advance(state domain.WizardState) (next int, done bool, err error) {
	def, ok := DefinitionFor(state.Kind)
	if !ok {
		return state.CurrentStep, false, domain.ErrUnknownWizard
	}
	if !CanAdvance(state) {
		return state.CurrentStep, false, domain.ErrStepBlocked
	}
	if state.CurrentStep == def.StepCount() {
		return state.CurrentStep, true, nil
	}
	return state.CurrentStep + 1, false, nil
}

// Retreat returns step - 1, or ErrAtFirstStep.
func Retreat(step int) (int, error) {
	if !CanRetreat(step) {
		return step, domain.ErrAtFirstStep
	}
	return step - 1, nil
}
