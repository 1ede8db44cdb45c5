package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// repl: read expressions line by line until quit/exit or EOF.
func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive calculator prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			for {
				fmt.Fprint(out, cfg.Prompt)
				if !in.Scan() {
					fmt.Fprintln(out)
					return in.Err()
				}
				line := strings.TrimSpace(in.Text())
				switch line {
				case "":
					continue
				case "quit", "exit":
					return nil
				case "C":
					appCtx.Calc.Reset()
					fmt.Fprintln(out, "0")
					continue
				}

				d, err := appCtx.Calc.Evaluate(line)
				if err != nil {
					fmt.Fprintln(out, err)
					continue
				}
				fmt.Fprintf(out, "%s %s\n", d.History, d.Text)
			}
		},
	}
}
