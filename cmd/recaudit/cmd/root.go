package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"recaudit/internal/adapters/filesystem"
	"recaudit/internal/application"
	"recaudit/internal/config"
)

var (
	configPath string
	dataRoot   string

	cfg   *config.Config
	store *filesystem.Store
)

var rootCmd = &cobra.Command{
	Use:   "recaudit",
	Short: "Audit recording session files against their expected names",
	Long: `recaudit derives the full set of expected file names for a subject's
recording sessions from the lab's naming rules and reconciles it against
the files actually on disk.

It provides commands to verify sessions, search the file name tables,
inspect epoch naming, write session metadata, and query past audits.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if dataRoot != "" {
			cfg.Data.Root = dataRoot
		}
		store = filesystem.NewStore(cfg.Data.Root)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&dataRoot, "data-root", "d", "", "override the data root directory")
}

// newInventory builds an inventory for a subject and optional dates
func newInventory(subject string, dates []string) (*application.Inventory, error) {
	scheme, err := cfg.Scheme(subject)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		dates = nil
	}
	return application.NewInventory(scheme, store.Layout(), store, dates)
}
