package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"ideaindex/internal/adapters"
	"ideaindex/internal/adapters/editor"
	"ideaindex/internal/adapters/filesystem"
	"ideaindex/internal/adapters/tui"
	"ideaindex/internal/config"
	"ideaindex/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "store backend: file, sqlite, postgres or memory")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for the file and sqlite backends")
	flag.DurationVar(&cfg.IndexDelay, "delay", cfg.IndexDelay, "delay before a new idea reaches the index")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The alt screen owns stdout, so logs go to a file next to the data
	dataDir := filesystem.ExpandHome(cfg.DataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	logFile, err := tea.LogToFile(filepath.Join(dataDir, "ideaindex.log"), "")
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := logging.New(logFile, cfg.LogLevel)

	catalog, store, err := adapters.OpenCatalog(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	appCfg := tui.Config{
		DefaultAuthor: cfg.Author,
		IndexDelay:    cfg.IndexDelay.String(),
	}
	if locator := store.Locator(); locator != nil {
		appCfg.Editor = editor.NewOpener()
		appCfg.Locator = locator
	}

	p := tea.NewProgram(tui.NewApp(catalog, appCfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
