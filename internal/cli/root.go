package cli

import (
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Logs    service.DailyLogService
	Sprints service.SprintService
	Reports service.ReportService
	Reviews service.ReviewService
	Wizards service.WizardService
	Import  service.ImportService

	// DefaultWindow is used by report commands when --window is not given.
	DefaultWindow domain.ReportWindow

	// IsInteractive reports whether huh forms may prompt for missing input.
	IsInteractive func() bool

	// Now overrides the wall clock. Nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now().UTC()
	}
	return time.Now().UTC()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "shift" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "shift",
		Short:         "Daily logs, sprint priorities and yearly reviews, scored",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLogCmd(app),
		newSprintCmd(app),
		newPriorityCmd(app),
		newPromiseCmd(app),
		newReportCmd(app),
		newReviewCmd(app),
		newWizardCmd(app),
		newImportCmd(app),
		newScoreCmd(),
	)

	return root
}
