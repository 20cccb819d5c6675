package cli

import (
	"context"
	"fmt"

	"github.com/alextm0/identity-shift-sub002/internal/cli/formatter"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record and browse daily logs",
	}

	cmd.AddCommand(
		newLogAddCmd(app),
		newLogListCmd(app),
		newLogDeleteCmd(app),
	)

	return cmd
}

func newLogAddCmd(app *App) *cobra.Command {
	var date dateFlag
	var energy, progress, motion int
	var sleep float64
	var focus bool
	var proof, note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log one day (replaces an existing log for the same date)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			entry := &domain.DailyLogEntry{
				Date:               date.Or(app.now()),
				EnergyLevel:        energy,
				SleepHours:         sleep,
				MainFocusCompleted: focus,
				ProgressUnits:      progress,
				MotionUnits:        motion,
				Proof:              proof,
				Note:               note,
			}

			if !cmd.Flags().Changed("energy") {
				if !app.interactive() {
					return fmt.Errorf("--energy is required when not running in a terminal")
				}
				in := &dailyLogInput{Energy: 3}
				if err := dailyLogForm(in).Run(); err != nil {
					return err
				}
				in.apply(entry)
			}

			if err := app.Logs.Log(ctx, entry); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: energy %d, %d action / %d motion units (%s)\n",
				entry.Date.Format(domain.DateLayout), entry.EnergyLevel,
				entry.ProgressUnits, entry.MotionUnits, formatter.TruncID(entry.ID))
			return nil
		},
	}

	cmd.Flags().Var(&date, "date", "Day to log (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&energy, "energy", 0, "Energy level 1-5")
	cmd.Flags().Float64Var(&sleep, "sleep", 0, "Hours slept")
	cmd.Flags().BoolVar(&focus, "focus", false, "Main focus completed")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress (action) units")
	cmd.Flags().IntVar(&motion, "motion", 0, "Motion (planning) units")
	cmd.Flags().StringVar(&proof, "proof", "", "Proof of work, required with progress units")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")

	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	var from, to dateFlag

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List daily logs in a date range (default the last 7 days)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			end := to.Or(app.now())
			start := from.Or(end.AddDate(0, 0, -6))

			logs, err := app.Logs.ListWindow(ctx, start, end)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No logs found.")
				return nil
			}

			headers := []string{"DATE", "ENERGY", "SLEEP", "FOCUS", "ACTION", "MOTION", "PROOF", "ID"}
			rows := make([][]string, 0, len(logs))
			for _, l := range logs {
				focusCell := formatter.Dim("-")
				if l.MainFocusCompleted {
					focusCell = formatter.StyleGreen.Render("✓")
				}
				proofCell := formatter.Dim("-")
				if l.Proof != "" {
					proofCell = formatter.Truncate(l.Proof, 30)
				}
				rows = append(rows, []string{
					l.Date.Format(domain.DateLayout),
					formatter.EnergyColor(float64(l.EnergyLevel)).Render(fmt.Sprint(l.EnergyLevel)),
					fmt.Sprintf("%.1f", l.SleepHours),
					focusCell,
					fmt.Sprint(l.ProgressUnits),
					fmt.Sprint(l.MotionUnits),
					proofCell,
					formatter.Dim(formatter.TruncID(l.ID)),
				})
			}
			fmt.Fprint(out, formatter.RenderNumericTable(headers, rows, 1, 2, 4, 5))
			return nil
		},
	}

	cmd.Flags().Var(&from, "from", "First day (YYYY-MM-DD)")
	cmd.Flags().Var(&to, "to", "Last day (YYYY-MM-DD, default today)")

	return cmd
}

func newLogDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a daily log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Logs.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted log %s\n", args[0])
			return nil
		},
	}
}
