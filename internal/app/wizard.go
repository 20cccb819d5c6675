package app

import "github.com/alextm0/identity-shift-sub002/internal/domain"

// WizardView is a draft plus its navigation state.
type WizardView struct {
	State      *domain.WizardState
	StepTitle  string
	StepCount  int
	CanAdvance bool
	CanRetreat bool
}
