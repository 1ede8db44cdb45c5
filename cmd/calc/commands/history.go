package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
)

// history: print recorded calculations, or wipe them with --clear.
func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear recorded calculations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if historyClear {
				if err := appCtx.Calc.ClearHistory(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
				return nil
			}

			entries, err := appCtx.Calc.History(historyLimit)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s = %s\n",
					e.At.Format(time.DateTime), e.Expression, e.Result)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show at most n entries (0 = all)")
	cmd.Flags().BoolVar(&historyClear, "clear", false, "clear the recorded history")
	return cmd
}
