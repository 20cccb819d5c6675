package cli

import (
	"fmt"
	"strconv"

	"github.com/alextm0/identity-shift-sub002/internal/cli/formatter"
	"github.com/alextm0/identity-shift-sub002/internal/engine"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <motion> <action>",
		Short: "Compute the integrity score for motion and action unit counts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var units [2]int
			for i, raw := range args {
				n, err := strconv.Atoi(raw)
				if err != nil || n < 0 {
					return fmt.Errorf("units must be whole numbers, 0 or more, got %q", raw)
				}
				units[i] = n
			}
			motion, action := units[0], units[1]
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScore(motion, action, engine.CalculateIntegrityScore(motion, action)))
			return nil
		},
	}
}
