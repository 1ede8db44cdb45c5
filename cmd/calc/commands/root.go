package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"calc/internal/app"
	"calc/internal/domain"
)

var (
	home   string
	policy string

	cfg    app.Config
	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "calc",
		Short: "Calculator with deferred and immediate evaluation engines",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".calc")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			var err error
			cfg, err = app.LoadConfig(home)
			if err != nil {
				return err
			}
			if policy != "" {
				cfg.Policy = domain.Policy(policy)
				if !cfg.Policy.Valid() {
					return fmt.Errorf("unknown policy %q (want deferred or immediate)", policy)
				}
			}
			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.calc)")
	root.PersistentFlags().StringVar(&policy, "policy", "", "engine policy: deferred or immediate (overrides config)")

	root.AddCommand(evalCmd(), replCmd(), historyCmd())
	return root.Execute()
}
