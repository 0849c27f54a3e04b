package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"recaudit/internal/adapters/metadata"
)

var metadataOverwrite bool

var metadataCmd = &cobra.Command{
	Use:   "metadata <subject> [dates...]",
	Short: "Write session metadata documents",
	Long: `Metadata writes one YAML document per session date into the subject's
yml directory, listing the session's epochs and the raw files found on
disk. Existing documents are kept unless --overwrite is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := newInventory(args[0], args[1:])
		if err != nil {
			return err
		}

		writer := metadata.NewWriter(inv, metadataOverwrite)
		written, err := writer.WriteAll()
		for _, path := range written {
			fmt.Printf("wrote %s\n", path)
		}
		return err
	},
}

func init() {
	metadataCmd.Flags().BoolVar(&metadataOverwrite, "overwrite", false, "replace existing metadata documents")
	rootCmd.AddCommand(metadataCmd)
}
