package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ideaindex/internal/adapters"
	"ideaindex/internal/application"
	"ideaindex/internal/config"
	"ideaindex/internal/logging"
)

var (
	backendFlag string
	dataDirFlag string
	delayFlag   time.Duration

	cfg     config.Config
	logger  *slog.Logger
	catalog *application.Catalog
	store   *adapters.Store
)

var rootCmd = &cobra.Command{
	Use:   "ideaindex-cli",
	Short: "Search ideas by tag, linearly or through an index table",
	Long: `ideaindex-cli manages a small set of ideas and a tag index over them.

Searches run either as a linear scan over every idea (slow, substring match)
or as a single lookup in the tag index (fast, exact tag). The index is rebuilt
on demand and extended shortly after each new idea is published.

Configuration comes from IDEAINDEX_* environment variables or a .env file;
the flags below override them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("backend") {
			cfg.Backend = backendFlag
		}
		if flags.Changed("data-dir") {
			cfg.DataDir = dataDirFlag
		}
		if flags.Changed("delay") {
			cfg.IndexDelay = delayFlag
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger = logging.New(os.Stderr, cfg.LogLevel)
		catalog, store, err = adapters.OpenCatalog(cmd.Context(), cfg, logger)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return nil
		}
		return store.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&backendFlag, "backend", "b", config.DefaultBackend, "store backend: file, sqlite, postgres or memory")
	rootCmd.PersistentFlags().StringVarP(&dataDirFlag, "data-dir", "d", config.DefaultDataDir(), "directory for the file and sqlite backends")
	rootCmd.PersistentFlags().DurationVar(&delayFlag, "delay", config.DefaultIndexDelay, "delay before a new idea reaches the index")
}

// GetCatalog returns the initialized catalog
func GetCatalog() *application.Catalog {
	return catalog
}
