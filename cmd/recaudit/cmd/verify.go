package cmd

import (
	"github.com/spf13/cobra"

	"recaudit/internal/adapters/report"
	"recaudit/internal/adapters/sqlite"
)

var (
	verifyVerbose bool
	verifyRecord  bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify <subject> [dates...]",
	Short: "Check a subject's files against their expected names",
	Long: `Verify reconciles the expected file name set for each file type and
path against the files on disk and prints a pass/fail summary per check.
Checks that fail do not stop the sweep.

Examples:
  recaudit verify rat1
  recaudit verify rat1 20230101 20230102 --verbose
  recaudit verify rat1 --record`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := newInventory(args[0], args[1:])
		if err != nil {
			return err
		}

		results, err := inv.Verify(report.NewConsole(verifyVerbose))
		if err != nil {
			return err
		}

		if verifyRecord {
			idx := sqlite.NewIndex()
			if err := idx.Open(cfg.Index.Path); err != nil {
				return err
			}
			defer idx.Close()
			if err := idx.RecordSweep(results); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().BoolVarP(&verifyVerbose, "verbose", "v", false, "list matching and missing file names")
	verifyCmd.Flags().BoolVar(&verifyRecord, "record", false, "record the sweep in the audit index")
	rootCmd.AddCommand(verifyCmd)
}
