package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/app"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/repository"
	"github.com/alextm0/identity-shift-sub002/internal/wizard"
)

type wizardService struct {
	drafts   repository.WizardDraftRepo
	observer UseCaseObserver
}

func NewWizardService(drafts repository.WizardDraftRepo, observers ...UseCaseObserver) WizardService {
	return &wizardService{drafts: drafts, observer: useCaseObserverOrNoop(observers)}
}

// Load returns the stored draft for kind, or a fresh draft on step 1.
func (s *wizardService) Load(ctx context.Context, kind domain.WizardKind) (*app.WizardView, error) {
	state, err := s.load(ctx, kind)
	if err != nil {
		return nil, err
	}
	return viewOf(state), nil
}

func (s *wizardService) load(ctx context.Context, kind domain.WizardKind) (*domain.WizardState, error) {
	kind, err := canonicalKind(kind)
	if err != nil {
		return nil, err
	}
	state, err := s.drafts.Get(ctx, kind)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewWizardState(kind), nil
	}
	if err != nil {
		return nil, err
	}
	state.Kind = kind
	return state, nil
}

func (s *wizardService) Save(ctx context.Context, state *domain.WizardState) (*app.WizardView, error) {
	kind, err := canonicalKind(state.Kind)
	if err != nil {
		return nil, err
	}
	state.Kind = kind

	def, _ := wizard.DefinitionFor(kind)
	if state.CurrentStep < 1 || state.CurrentStep > def.StepCount() {
		return nil, fmt.Errorf("step %d is outside 1-%d", state.CurrentStep, def.StepCount())
	}
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return viewOf(state), nil
}

func (s *wizardService) save(ctx context.Context, state *domain.WizardState) error {
	state.UpdatedAt = time.Now().UTC()
	if err := s.drafts.Save(ctx, state); err != nil {
		return fmt.Errorf("saving %s draft: %w", state.Kind, err)
	}
	return nil
}

// Next moves the draft forward when its current gate passes. On the final
// step a passing gate marks the draft complete instead.
func (s *wizardService) Next(ctx context.Context, kind domain.WizardKind) (view *app.WizardView, err error) {
	fields := map[string]any{"kind": string(kind)}
	defer observe(ctx, s.observer, "wizard-next", time.Now().UTC(), fields, &err)

	state, err := s.load(ctx, kind)
	if err != nil {
		return nil, err
	}
	fields["from_step"] = state.CurrentStep

	next, done, err := wizard.Advance(*state)
	if err != nil {
		return nil, fmt.Errorf("step %d: %w", state.CurrentStep, err)
	}
	state.CurrentStep = next
	state.Completed = done
	fields["completed"] = done

	if err = s.save(ctx, state); err != nil {
		return nil, err
	}
	return viewOf(state), nil
}

func (s *wizardService) Back(ctx context.Context, kind domain.WizardKind) (*app.WizardView, error) {
	state, err := s.load(ctx, kind)
	if err != nil {
		return nil, err
	}
	prev, err := wizard.Retreat(state.CurrentStep)
	if err != nil {
		return nil, err
	}
	state.CurrentStep = prev
	state.Completed = false

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return viewOf(state), nil
}

func (s *wizardService) Reset(ctx context.Context, kind domain.WizardKind) error {
	kind, err := canonicalKind(kind)
	if err != nil {
		return err
	}
	return s.drafts.Delete(ctx, kind)
}

func canonicalKind(kind domain.WizardKind) (domain.WizardKind, error) {
	def, ok := wizard.DefinitionFor(kind)
	if !ok {
		return "", fmt.Errorf("%q: %w", kind, domain.ErrUnknownWizard)
	}
	return def.Kind, nil
}

func viewOf(state *domain.WizardState) *app.WizardView {
	def, _ := wizard.DefinitionFor(state.Kind)
	view := &app.WizardView{
		State:      state,
		StepCount:  def.StepCount(),
		CanAdvance: wizard.CanAdvance(*state),
		CanRetreat: wizard.CanRetreat(state.CurrentStep),
	}
	if step, ok := def.Step(state.CurrentStep); ok {
		view.StepTitle = step.Title
	}
	return view
}
