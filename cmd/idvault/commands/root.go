package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"idvault/internal/app"
)

var (
	home    string
	verbose bool
	wire    *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "idvault",
		Short: "Local store for cryptographic identities and social profiles",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".idvault")
			}

			log := zap.NewNop()
			if verbose {
				if log, err = zap.NewDevelopment(); err != nil {
					return err
				}
			}

			wire, err = app.NewWire(cfg, log)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			return wire.Close()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.idvault)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log store activity")

	root.AddCommand(initCmd(), keygenCmd(), importCmd(), adoptCmd(), listCmd(), showCmd(), profileCmd(), rmCmd())
	return root.Execute()
}
