package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"recaudit/internal/domain"
)

var searchTable string

var searchCmd = &cobra.Command{
	Use:   "search <subject> <pattern>...",
	Short: "Search a file name table",
	Long: `Search filters one of the file name tables by each pattern in turn
(AND across patterns). Patterns are regular expressions matched anywhere
in the file name.

Examples:
  recaudit search rat1 20230101
  recaudit search rat1 20230101 '\.rec$'
  recaudit search rat1 --table missing '\.yml$'`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := newInventory(args[0], nil)
		if err != nil {
			return err
		}

		var results domain.RecordSet
		patterns := args[1:]
		switch searchTable {
		case "actual":
			results, err = inv.SearchFileNames(patterns...)
		case "expected":
			results, err = inv.SearchExpectedFileNames(patterns...)
		case "matching":
			results, err = inv.SearchMatchingFileNames(patterns...)
		case "missing":
			results, err = inv.SearchMissingFileNames(patterns...)
		default:
			return fmt.Errorf("unknown table %q (want actual, expected, matching, or missing)", searchTable)
		}
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, r := range results {
			fmt.Printf("[%s] %s\n", r.FileType, r.FullName)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchTable, "table", "t", "actual", "table to search (actual, expected, matching, missing)")
	rootCmd.AddCommand(searchCmd)
}
