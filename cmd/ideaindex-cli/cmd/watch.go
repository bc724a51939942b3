package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"ideaindex/internal/adapters/filesystem"
	"ideaindex/internal/application/commands"
	"ideaindex/internal/ports"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload and rebuild whenever the ideas document changes",
	Long: `Watch the data directory of the file backend. Each time the ideas
document is replaced, by an editor or another ideaindex process, the ideas are
reloaded and the index is rebuilt. Runs until interrupted.

Examples:
  ideaindex-cli watch
  ideaindex-cli watch --debounce 1s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if store.Files == nil {
			return fmt.Errorf("watch requires the file backend, not %s", store.Backend)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		watcher := filesystem.NewWatcher(store.Files, watchDebounce, logger, ports.KeyIdeas)
		fmt.Printf("Watching %s\n", store.Files.DocumentPath(ports.KeyIdeas))

		return watcher.Run(ctx, func(string) {
			if err := refresh(ctx); err != nil {
				logger.Error("refresh failed", "error", err)
			}
		})
	},
}

func refresh(ctx context.Context) error {
	if err := GetCatalog().Reload(ctx); err != nil {
		return err
	}
	result, err := commands.NewRebuildIndexCommand(GetCatalog()).Execute(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", time.Now().Format(time.TimeOnly), result.Message)
	return nil
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "quiet period before reacting to a change")
	rootCmd.AddCommand(watchCmd)
}
