package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"recaudit/internal/domain"
)

var expectedCmd = &cobra.Command{
	Use:   "expected <subject> [dates...]",
	Short: "Print the expected file names per data path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := newInventory(args[0], args[1:])
		if err != nil {
			return err
		}

		paths, err := inv.PathNames()
		if err != nil {
			return err
		}
		expected, err := inv.ExpectedFileNames()
		if err != nil {
			return err
		}

		for _, p := range paths {
			fmt.Println(p.PathName)
			names := expected.WhereType(p.FileType).WherePath(p.PathName).FileNames()
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println()
		}
		return nil
	},
}

var datesCmd = &cobra.Command{
	Use:   "dates <subject>",
	Short: "List a subject's session dates and epoch counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := newInventory(args[0], nil)
		if err != nil {
			return err
		}

		epochs := inv.EpochCounts()
		for i, date := range inv.Dates() {
			fmt.Printf("%s  %d epochs\n", date, epochs[i])
		}
		return nil
	},
}

var epochCmd = &cobra.Command{
	Use:   "epoch <subject> <index>",
	Short: "Show the derived naming fragments for an epoch index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scheme, err := cfg.Scheme(args[0])
		if err != nil {
			return err
		}

		var idx int
		if _, err := fmt.Sscanf(args[1], "%d", &idx); err != nil {
			return fmt.Errorf("invalid epoch index %q", args[1])
		}
		info, err := scheme.EpochInfo(idx)
		if err != nil {
			return err
		}

		fmt.Printf("number: %s\n", info.Number)
		fmt.Printf("name:   %s\n", info.Name)
		fmt.Printf("camera: %s\n", info.Camera)
		prefix, err := scheme.FileNamePrefix("<date>", domain.PrefixOptions{
			EpochNumber: info.Number,
			EpochName:   info.Name,
			CameraName:  info.Camera,
		})
		if err != nil {
			return err
		}
		fmt.Printf("prefix: %s\n", prefix)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(expectedCmd)
	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(epochCmd)
}
