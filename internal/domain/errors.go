package domain

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrProofRequired indicates progress units were logged without an
	// adequate proof-of-work note.
	ErrProofRequired = errors.New("proof of work required for logged progress")

	// ErrInvalidEnergy indicates an energy level outside 1..5.
	ErrInvalidEnergy = errors.New("energy level must be between 1 and 5")

	// ErrInvalidRating indicates a dimension rating outside 1..10.
	ErrInvalidRating = errors.New("dimension rating must be between 1 and 10")

	// ErrNoActiveSprint indicates no sprint is currently active.
	ErrNoActiveSprint = errors.New("no active sprint")

	// ErrStepBlocked indicates the current wizard step's gate is not satisfied.
	ErrStepBlocked = errors.New("wizard step requirements not met")

	// ErrAtFirstStep indicates a backward move was requested on step 1.
	ErrAtFirstStep = errors.New("already at the first wizard step")

	// ErrUnknownWizard indicates an unsupported wizard kind.
	ErrUnknownWizard = errors.New("unknown wizard kind")
)
