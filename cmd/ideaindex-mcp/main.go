package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ideaindex/internal/adapters"
	mcpadapter "ideaindex/internal/adapters/mcp"
	"ideaindex/internal/config"
	"ideaindex/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("ideaindex-mcp: %v", err)
	}

	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "store backend: file, sqlite, postgres or memory")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for the file and sqlite backends")
	flag.DurationVar(&cfg.IndexDelay, "delay", cfg.IndexDelay, "delay before a new idea reaches the index")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("ideaindex-mcp: %v", err)
	}

	// stdout carries the protocol
	logger := logging.New(os.Stderr, cfg.LogLevel)

	catalog, store, err := adapters.OpenCatalog(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("ideaindex-mcp: %v", err)
	}
	defer store.Close()

	mcpServer := server.NewMCPServer(
		"ideaindex-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, catalog)
	mcpadapter.RegisterWriteTools(mcpServer, catalog, cfg.Author)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", "error", err)
		store.Close()
		os.Exit(1)
	}
}
