package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ideaindex/internal/application/commands"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the tag index from every idea",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRebuildIndexCommand(GetCatalog()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s in %s\n", result.Message, result.Duration)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}
