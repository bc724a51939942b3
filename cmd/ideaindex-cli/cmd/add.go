package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ideaindex/internal/application/commands"
)

var (
	addTitle  string
	addTags   string
	addAuthor string
	addWait   bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Publish a new idea",
	Long: `Publish a new idea. It is stored at once and added to the tag index after
the index delay. By default the command waits for that; with --wait=false it
exits right away and the pending index update is lost.

Examples:
  ideaindex-cli add --title "Huerto vertical" --tags "Agricultura, Urbano"
  ideaindex-cli add -t "Bot de trámites" -g "IA, Gobierno" --author "Ana"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		author := addAuthor
		if !cmd.Flags().Changed("author") {
			author = cfg.Author
		}

		result, err := commands.NewAddIdeaCommand(GetCatalog(), addTitle, addTags, author).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)

		if !addWait {
			return nil
		}
		if err := result.Pending.Wait(cmd.Context()); err != nil {
			return fmt.Errorf("idea stored but not indexed: %w", err)
		}
		fmt.Printf("Indexed %s\n", result.Idea.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "idea title")
	addCmd.Flags().StringVarP(&addTags, "tags", "g", "", "comma-separated tags")
	addCmd.Flags().StringVarP(&addAuthor, "author", "a", "", "author (defaults to IDEAINDEX_AUTHOR)")
	addCmd.Flags().BoolVarP(&addWait, "wait", "w", true, "wait until the idea is indexed")
	rootCmd.AddCommand(addCmd)
}
