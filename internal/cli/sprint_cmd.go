package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alextm0/identity-shift-sub002/internal/cli/formatter"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/spf13/cobra"
)

// defaultSprintDays is the length of a sprint created without --end.
const defaultSprintDays = 28

func newSprintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Manage sprints",
	}

	cmd.AddCommand(
		newSprintCreateCmd(app),
		newSprintListCmd(app),
		newSprintShowCmd(app),
		newSprintCompleteCmd(app),
	)

	return cmd
}

func newSprintCreateCmd(app *App) *cobra.Command {
	var start, end dateFlag

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Start a new sprint (completes the current active one)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startDay := start.Or(app.now())
			sp := &domain.Sprint{
				Name:      args[0],
				StartDate: startDay,
				EndDate:   end.Or(startDay.AddDate(0, 0, defaultSprintDays-1)),
				Status:    domain.SprintActive,
			}
			if err := app.Sprints.Create(context.Background(), sp); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created sprint %s (%s, %s)\n",
				formatter.Bold(sp.Name), formatter.DateRange(sp.StartDate, sp.EndDate), formatter.TruncID(sp.ID))
			return nil
		},
	}

	cmd.Flags().Var(&start, "start", "First day (YYYY-MM-DD, default today)")
	cmd.Flags().Var(&end, "end", "Last day (YYYY-MM-DD, default start + 27 days)")

	return cmd
}

func newSprintListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sprints, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sprints, err := app.Sprints.List(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sprints) == 0 {
				fmt.Fprintln(out, "No sprints yet.")
				return nil
			}

			headers := []string{"ID", "NAME", "STATUS", "START", "END"}
			rows := make([][]string, 0, len(sprints))
			for _, sp := range sprints {
				rows = append(rows, []string{
					formatter.Dim(formatter.TruncID(sp.ID)),
					formatter.Bold(sp.Name),
					formatter.SprintStatusPill(sp.Status),
					sp.StartDate.Format(domain.DateLayout),
					sp.EndDate.Format(domain.DateLayout),
				})
			}
			fmt.Fprint(out, formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newSprintShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a sprint and its priorities (default the active sprint)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSprintID(ctx, app, firstArg(args))
			if err != nil {
				return err
			}
			sp, err := app.Sprints.Get(ctx, id)
			if err != nil {
				return err
			}
			priorities, err := app.Sprints.ListPriorities(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(sp.Name))
			fmt.Fprintf(out, "%s  %s  %s\n",
				formatter.SprintStatusPill(sp.Status),
				formatter.DateRange(sp.StartDate, sp.EndDate),
				formatter.Dim(sp.ID))
			fmt.Fprintln(out)
			fmt.Fprint(out, priorityTable(priorities))
			return nil
		},
	}
}

func newSprintCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete [id]",
		Short: "Mark a sprint completed (default the active sprint)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSprintID(ctx, app, firstArg(args))
			if err != nil {
				return err
			}
			if err := app.Sprints.Complete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed sprint %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newPriorityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "priority",
		Short: "Manage a sprint's weekly priorities",
	}

	cmd.AddCommand(
		newPriorityAddCmd(app),
		newPriorityListCmd(app),
	)

	return cmd
}

func newPriorityAddCmd(app *App) *cobra.Command {
	var sprintRef, label, typ, unit string
	var target float64

	cmd := &cobra.Command{
		Use:   "add <key>",
		Short: "Add a weekly priority to a sprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sprintID, err := resolveSprintID(ctx, app, sprintRef)
			if err != nil {
				return err
			}
			existing, err := app.Sprints.ListPriorities(ctx, sprintID)
			if err != nil {
				return err
			}

			p := &domain.PriorityTarget{
				SprintID:          sprintID,
				Key:               args[0],
				Label:             label,
				Type:              domain.PriorityType(typ),
				WeeklyTargetUnits: target,
				UnitDefinition:    unit,
				Order:             len(existing),
			}
			if err := app.Sprints.AddPriority(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added priority %s: %s %s per week\n",
				formatter.Bold(p.Key), formatter.FormatUnits(p.WeeklyTargetUnits), domain.CoalesceStr(p.UnitDefinition, "units"))
			return nil
		},
	}

	cmd.Flags().StringVar(&sprintRef, "sprint", "", "Sprint ID or prefix (default the active sprint)")
	cmd.Flags().Float64Var(&target, "target", 0, "Weekly target units")
	cmd.Flags().StringVar(&label, "label", "", "Display label (default the key)")
	cmd.Flags().StringVar(&typ, "type", string(domain.PriorityBuild), "Priority type: build|maintain")
	cmd.Flags().StringVar(&unit, "unit", "", "What one unit means, e.g. \"45 min session\"")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newPriorityListCmd(app *App) *cobra.Command {
	var sprintRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a sprint's priorities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sprintID, err := resolveSprintID(ctx, app, sprintRef)
			if err != nil {
				return err
			}
			priorities, err := app.Sprints.ListPriorities(ctx, sprintID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), priorityTable(priorities))
			return nil
		},
	}

	cmd.Flags().StringVar(&sprintRef, "sprint", "", "Sprint ID or prefix (default the active sprint)")

	return cmd
}

func priorityTable(priorities []domain.PriorityTarget) string {
	if len(priorities) == 0 {
		return formatter.Dim("No priorities. Add one with `shift priority add`.") + "\n"
	}
	headers := []string{"KEY", "LABEL", "TYPE", "WEEKLY", "UNIT"}
	rows := make([][]string, 0, len(priorities))
	for _, p := range priorities {
		rows = append(rows, []string{
			formatter.Bold(p.Key),
			p.Label,
			string(p.Type),
			formatter.FormatUnits(p.WeeklyTargetUnits),
			domain.CoalesceStr(p.UnitDefinition, formatter.Dim("-")),
		})
	}
	return formatter.RenderNumericTable(headers, rows, 3)
}

func newPromiseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promise",
		Short: "Log units against sprint priorities",
	}
	cmd.AddCommand(newPromiseLogCmd(app))
	return cmd
}

func newPromiseLogCmd(app *App) *cobra.Command {
	var sprintRef, note string
	var date dateFlag

	cmd := &cobra.Command{
		Use:   "log <key> <units>",
		Short: "Record units toward a priority",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			units, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("units must be a number, got %q", args[1])
			}
			sprintID, err := resolveSprintID(ctx, app, sprintRef)
			if err != nil {
				return err
			}

			e := &domain.PromiseLogEntry{
				SprintID:  sprintID,
				Date:      date.Or(app.now()),
				PromiseID: args[0],
				Units:     units,
				Note:      note,
			}
			if err := app.Sprints.LogPromise(ctx, e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s %s on %s\n",
				formatter.FormatUnits(e.Units), formatter.Bold(e.PromiseID), e.Date.Format(domain.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&sprintRef, "sprint", "", "Sprint ID or prefix (default the active sprint)")
	cmd.Flags().Var(&date, "date", "Day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&note, "note", "", "Note")

	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
