package commands

import (
	"context"
	"fmt"
	"time"

	"ideaindex/internal/application"
)

// RebuildResult contains the result of rebuilding the index
type RebuildResult struct {
	Tags     int
	Entries  int
	Duration time.Duration
	Message  string
}

// RebuildIndexCommand rebuilds the tag index from the full idea set
type RebuildIndexCommand struct {
	catalog *application.Catalog
}

// NewRebuildIndexCommand creates a new RebuildIndexCommand
func NewRebuildIndexCommand(catalog *application.Catalog) *RebuildIndexCommand {
	return &RebuildIndexCommand{catalog: catalog}
}

// Execute runs the rebuild
func (c *RebuildIndexCommand) Execute(ctx context.Context) (*RebuildResult, error) {
	start := time.Now()
	table, err := c.catalog.Rebuild(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild index: %w", err)
	}
	elapsed := time.Since(start)

	return &RebuildResult{
		Tags:     len(table),
		Entries:  table.EntryCount(),
		Duration: elapsed,
		Message:  fmt.Sprintf("Index rebuilt: %d tags, %d entries", len(table), table.EntryCount()),
	}, nil
}
