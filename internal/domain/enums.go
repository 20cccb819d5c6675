package domain

type SprintStatus string

const (
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
	SprintAbandoned SprintStatus = "abandoned"
)

// ValidSprintStatuses is the canonical set of accepted sprint status strings.
var ValidSprintStatuses = map[string]bool{
	"active": true, "completed": true, "abandoned": true,
}

type PriorityType string

const (
	PriorityBuild    PriorityType = "build"
	PriorityMaintain PriorityType = "maintain"
)

// ValidPriorityTypes is the canonical set of accepted priority type strings.
var ValidPriorityTypes = map[string]bool{
	"build": true, "maintain": true,
}

type WizardKind string

const (
	WizardPlan   WizardKind = "plan"
	WizardReview WizardKind = "review"
)

// ValidWizardKinds is the canonical set of accepted wizard kind strings.
var ValidWizardKinds = map[string]bool{
	"plan": true, "review": true,
}

type ReportWindow string

const (
	WindowWeek   ReportWindow = "week"
	WindowSprint ReportWindow = "sprint"
)
