package commands

import (
	"context"
	"fmt"
	"strings"

	"ideaindex/internal/application"
	"ideaindex/internal/domain"
)

// AddIdeaResult contains the result of publishing an idea
type AddIdeaResult struct {
	Idea    *domain.Idea
	Pending *application.PendingUpdate
	Message string
}

// AddIdeaCommand publishes a new idea. The idea is stored immediately; its
// index entries appear once Pending is done.
type AddIdeaCommand struct {
	catalog *application.Catalog
	Title   string
	Tags    string
	Author  string
}

// NewAddIdeaCommand creates a new AddIdeaCommand
func NewAddIdeaCommand(catalog *application.Catalog, title, tags, author string) *AddIdeaCommand {
	return &AddIdeaCommand{
		catalog: catalog,
		Title:   title,
		Tags:    tags,
		Author:  author,
	}
}

// Validate checks that title and tags are present
func (c *AddIdeaCommand) Validate() error {
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	return application.ValidateRequired("tags", c.Tags)
}

// Execute runs the add command
func (c *AddIdeaCommand) Execute(ctx context.Context) (*AddIdeaResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	idea, pending, err := c.catalog.Add(ctx, application.NewIdea{
		Title:  c.Title,
		Tags:   c.Tags,
		Author: c.Author,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add idea: %w", err)
	}

	return &AddIdeaResult{
		Idea:    idea,
		Pending: pending,
		Message: fmt.Sprintf("Published %s %q [%s]", idea.ID, idea.Title, strings.Join(idea.Tags, ", ")),
	}, nil
}
