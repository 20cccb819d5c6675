package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alextm0/identity-shift-sub002/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON snapshot (sprint, logs, review, plan draft) in one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.Import(context.Background(), args[0])
			if err != nil {
				return err
			}

			parts := []string{
				fmt.Sprintf("%d priorities", res.PriorityCount),
				fmt.Sprintf("%d daily logs", res.DailyLogCount),
				fmt.Sprintf("%d promise logs", res.PromiseLogCount),
			}
			if res.ReviewYear != 0 {
				parts = append(parts, fmt.Sprintf("review %d", res.ReviewYear))
			}
			if res.PlanDraft {
				parts = append(parts, "plan draft")
			}

			out := cmd.OutOrStdout()
			if res.Sprint != nil {
				fmt.Fprintf(out, "Imported sprint %s (%s)\n", formatter.Bold(res.Sprint.Name), formatter.TruncID(res.Sprint.ID))
			} else {
				fmt.Fprintln(out, "Imported snapshot")
			}
			fmt.Fprintf(out, "  %s\n", strings.Join(parts, ", "))
			return nil
		},
	}
}
