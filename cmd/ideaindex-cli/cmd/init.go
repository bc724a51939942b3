package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ideaindex/internal/application/commands"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the store, seeding the demo ideas on first use",
	Long: `Open the configured store. When no idea set has been written yet, the
demo dataset is stored together with an empty index; an existing store is
left as it is.

Examples:
  ideaindex-cli init
  ideaindex-cli init --backend sqlite`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := commands.NewStatsCommand(GetCatalog()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s store at %s: %d ideas, %d indexed tags\n",
			store.Backend, store.Location, stats.Ideas, stats.Tags)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
