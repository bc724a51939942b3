package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ideaindex/internal/application/commands"
)

var (
	searchMode string
	searchBoth bool
)

var searchCmd = &cobra.Command{
	Use:   "search <tag>",
	Short: "Search ideas by tag",
	Long: `Search ideas by tag and report how long the search took.

  slow  scans every idea for a tag containing the query
  fast  looks the query up as one exact tag in the index

Ideas published since the last rebuild reach the fast search only after the
index delay; ideas loaded from the store need a rebuild first.

Examples:
  ideaindex-cli search energ
  ideaindex-cli search ia --mode fast
  ideaindex-cli search iot --both`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		if searchBoth {
			result, err := commands.NewCompareCommand(GetCatalog(), query).Execute(cmd.Context())
			if err != nil {
				return err
			}
			printResult(result.Slow)
			fmt.Println()
			printResult(result.Fast)
			if only := result.OnlySlow(); len(only) > 0 {
				fmt.Printf("\nonly found by slow: %s\n", strings.Join(only, ", "))
			}
			return nil
		}

		mode, err := commands.ParseSearchMode(searchMode)
		if err != nil {
			return err
		}
		result, err := commands.NewSearchCommand(GetCatalog(), query, mode).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func printResult(r *commands.SearchResult) {
	fmt.Printf("%s search %q: %d results in %s\n", r.Mode, r.Query, r.Len(), r.Elapsed)
	for _, hit := range r.Hits() {
		fmt.Printf("  %-9s %s\n", hit.IdeaID, hit.Title)
	}
}

func init() {
	searchCmd.Flags().StringVarP(&searchMode, "mode", "m", "slow", "search mode: slow or fast")
	searchCmd.Flags().BoolVar(&searchBoth, "both", false, "run both modes and compare")
	rootCmd.AddCommand(searchCmd)
}
