package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// eval <expression>: evaluate once, print the result, record it.
func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := appCtx.Calc.Evaluate(args[0])
			if err != nil {
				return err
			}
			if d.Text == "Error" {
				return fmt.Errorf("cannot evaluate %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Text)
			return nil
		},
	}
}
