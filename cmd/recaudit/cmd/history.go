package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"recaudit/internal/adapters/sqlite"
	"recaudit/internal/domain"
)

var historyFailures bool

var historyCmd = &cobra.Command{
	Use:   "history <subject>",
	Short: "Show recorded verification sweeps",
	Long: `History lists the checks recorded by "verify --record" for a subject,
newest first. With --failures only the failing checks from the most
recent sweep are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx := sqlite.NewIndex()
		if err := idx.Open(cfg.Index.Path); err != nil {
			return err
		}
		defer idx.Close()

		var records []domain.CheckRecord
		var err error
		if historyFailures {
			records, err = idx.LatestFailures(args[0])
		} else {
			records, err = idx.History(args[0])
		}
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No recorded checks")
			return nil
		}
		for _, r := range records {
			verdict := "PASS"
			if !r.Passed {
				verdict = "FAIL"
			}
			fmt.Printf("%s  %s  %-8s  %s  %d matching, %d missing  [%s]\n",
				r.CheckedAt.Format("2006-01-02 15:04:05"), r.Date, r.FileType,
				r.PathName, r.MatchingCount, r.MissingCount, verdict)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyFailures, "failures", false, "only failing checks from the latest sweep")
	rootCmd.AddCommand(historyCmd)
}
