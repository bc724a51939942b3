package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ideaindex/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every idea",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ideas, err := commands.NewListIdeasCommand(GetCatalog()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, idea := range ideas {
			fmt.Printf("%-9s %s [%s]\n", idea.ID, idea.Title, strings.Join(idea.Tags, ", "))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <idea-id>",
	Short: "Show one idea",
	Long: `Show the idea with the given ID. IDs are not guaranteed unique; the first
idea carrying the ID is shown.

Examples:
  ideaindex-cli show idea_101`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idea, err := commands.NewShowIdeaCommand(GetCatalog(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("id:     %s\n", idea.ID)
		fmt.Printf("title:  %s\n", idea.Title)
		fmt.Printf("tags:   %s\n", strings.Join(idea.Tags, ", "))
		if idea.Author != "" {
			fmt.Printf("author: %s\n", idea.Author)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show idea and index counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := commands.NewStatsCommand(GetCatalog()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("ideas:   %d\n", stats.Ideas)
		fmt.Printf("tags:    %d\n", stats.Tags)
		fmt.Printf("entries: %d\n", stats.Entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
}
