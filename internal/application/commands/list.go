package commands

import (
	"context"

	"ideaindex/internal/application"
	"ideaindex/internal/domain"
)

// ListIdeasCommand lists every idea in record order
type ListIdeasCommand struct {
	catalog *application.Catalog
}

// NewListIdeasCommand creates a new ListIdeasCommand
func NewListIdeasCommand(catalog *application.Catalog) *ListIdeasCommand {
	return &ListIdeasCommand{catalog: catalog}
}

// Execute runs the list command
func (c *ListIdeasCommand) Execute(ctx context.Context) ([]domain.Idea, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.catalog.Ideas(), nil
}

// ShowIdeaCommand looks up one idea by ID
type ShowIdeaCommand struct {
	catalog *application.Catalog
	IdeaID  string
}

// NewShowIdeaCommand creates a new ShowIdeaCommand
func NewShowIdeaCommand(catalog *application.Catalog, ideaID string) *ShowIdeaCommand {
	return &ShowIdeaCommand{catalog: catalog, IdeaID: ideaID}
}

// Validate checks that an ID was given
func (c *ShowIdeaCommand) Validate() error {
	return application.ValidateRequired("ideaID", c.IdeaID)
}

// Execute runs the show command
func (c *ShowIdeaCommand) Execute(ctx context.Context) (*domain.Idea, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	idea, err := c.catalog.Get(c.IdeaID)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// StatsCommand reports counts over the idea set and index
type StatsCommand struct {
	catalog *application.Catalog
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(catalog *application.Catalog) *StatsCommand {
	return &StatsCommand{catalog: catalog}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context) (application.Stats, error) {
	if err := ctx.Err(); err != nil {
		return application.Stats{}, err
	}
	return c.catalog.Stats(), nil
}
