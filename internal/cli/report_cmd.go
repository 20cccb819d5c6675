package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/app"
	"github.com/alextm0/identity-shift-sub002/internal/cli/formatter"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/spf13/cobra"
)

func newReportCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Weekly summaries, integrity scores and alerts",
	}

	cmd.AddCommand(
		newReportWeeklyCmd(a),
		newReportHistoryCmd(a),
	)

	return cmd
}

func newReportWeeklyCmd(a *App) *cobra.Command {
	var sprintRef, window string
	var now dateFlag

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Summarize the current week or the whole sprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			req := app.NewWeeklyReportRequest()
			req.Window = domain.ReportWindow(domain.CoalesceStr(window, string(a.DefaultWindow), string(domain.WindowWeek)))
			req.Now = reportNow(a, &now)

			if sprintRef != "" {
				id, err := resolveSprintID(ctx, a, sprintRef)
				if err != nil {
					return err
				}
				req.SprintID = id
			}

			resp, err := a.Reports.WeeklyReport(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeeklyReport(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&sprintRef, "sprint", "", "Sprint ID or prefix (default the active sprint)")
	cmd.Flags().StringVar(&window, "window", "", "Window: week|sprint (default from config)")
	cmd.Flags().Var(&now, "now", "Report as of this day (YYYY-MM-DD)")

	return cmd
}

func newReportHistoryCmd(a *App) *cobra.Command {
	var sprintRef string
	var weeks int
	var now dateFlag

	cmd := &cobra.Command{
		Use:   "history",
		Short: "One row per week, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			req := app.NewHistoryRequest()
			req.Now = reportNow(a, &now)
			if cmd.Flags().Changed("weeks") {
				req.Weeks = weeks
			}

			if sprintRef != "" {
				id, err := resolveSprintID(ctx, a, sprintRef)
				if err != nil {
					return err
				}
				req.SprintID = id
			}

			resp, err := a.Reports.History(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&sprintRef, "sprint", "", "Sprint ID or prefix (default the active sprint)")
	cmd.Flags().IntVar(&weeks, "weeks", app.NewHistoryRequest().Weeks, "Number of weeks")
	cmd.Flags().Var(&now, "now", "Report as of this day (YYYY-MM-DD)")

	return cmd
}

// reportNow prefers --now, then the App clock. The service reads the wall
// clock only when both are absent.
func reportNow(a *App, flag *dateFlag) *time.Time {
	if p := flag.ptr(); p != nil {
		return p
	}
	if a.Now != nil {
		t := a.now()
		return &t
	}
	return nil
}
