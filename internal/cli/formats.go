package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/tably"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the selectable input formats",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, f := range tably.Formats() {
			cmd.Println(f)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
