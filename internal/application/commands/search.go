package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ideaindex/internal/application"
	"ideaindex/internal/domain"
)

// SearchMode selects the search strategy
type SearchMode int

const (
	// SearchModeSlow scans every idea's tags for a substring
	SearchModeSlow SearchMode = iota
	// SearchModeFast resolves the query as one key of the tag index
	SearchModeFast
)

func (m SearchMode) String() string {
	switch m {
	case SearchModeSlow:
		return "slow"
	case SearchModeFast:
		return "fast"
	default:
		return "unknown"
	}
}

// ParseSearchMode parses "slow"/"linear" or "fast"/"index"
func ParseSearchMode(s string) (SearchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "slow", "linear", "scan":
		return SearchModeSlow, nil
	case "fast", "index":
		return SearchModeFast, nil
	default:
		return 0, &application.ValidationError{
			Field:   "mode",
			Message: fmt.Sprintf("unknown search mode %q (expected slow or fast)", s),
		}
	}
}

// SearchResult holds the hits of one search and how long it took.
// Slow searches fill Ideas, fast searches fill Entries.
type SearchResult struct {
	Mode    SearchMode
	Query   string
	Ideas   []domain.Idea
	Entries []domain.IndexEntry
	Elapsed time.Duration
}

// Hits returns the result as id/title pairs regardless of mode
func (r *SearchResult) Hits() []domain.IndexEntry {
	if r.Mode == SearchModeFast {
		return r.Entries
	}
	hits := make([]domain.IndexEntry, len(r.Ideas))
	for i, idea := range r.Ideas {
		hits[i] = domain.IndexEntry{IdeaID: idea.ID, Title: idea.Title}
	}
	return hits
}

// Len returns the number of hits
func (r *SearchResult) Len() int {
	if r.Mode == SearchModeFast {
		return len(r.Entries)
	}
	return len(r.Ideas)
}

// SearchCommand runs a single timed search
type SearchCommand struct {
	catalog *application.Catalog
	Query   string
	Mode    SearchMode
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(catalog *application.Catalog, query string, mode SearchMode) *SearchCommand {
	return &SearchCommand{
		catalog: catalog,
		Query:   query,
		Mode:    mode,
	}
}

// Execute runs the search, timing only the search itself
func (c *SearchCommand) Execute(ctx context.Context) (*SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &SearchResult{Mode: c.Mode, Query: c.Query}

	switch c.Mode {
	case SearchModeSlow:
		start := time.Now()
		result.Ideas = c.catalog.SearchSlow(c.Query)
		result.Elapsed = time.Since(start)
	case SearchModeFast:
		start := time.Now()
		result.Entries = c.catalog.SearchFast(c.Query)
		result.Elapsed = time.Since(start)
	default:
		return nil, &application.ValidationError{
			Field:   "mode",
			Message: fmt.Sprintf("unknown search mode %d", c.Mode),
		}
	}

	return result, nil
}

// CompareResult pairs the two strategies for one query
type CompareResult struct {
	Slow *SearchResult
	Fast *SearchResult
}

// OnlySlow returns the IDs the linear scan found that the index did not
func (r *CompareResult) OnlySlow() []string {
	indexed := make(map[string]bool, len(r.Fast.Entries))
	for _, e := range r.Fast.Entries {
		indexed[e.IdeaID] = true
	}
	var out []string
	for _, idea := range r.Slow.Ideas {
		if !indexed[idea.ID] {
			out = append(out, idea.ID)
		}
	}
	return out
}

// CompareCommand runs the slow and the fast search for the same query
type CompareCommand struct {
	catalog *application.Catalog
	Query   string
}

// NewCompareCommand creates a new CompareCommand
func NewCompareCommand(catalog *application.Catalog, query string) *CompareCommand {
	return &CompareCommand{catalog: catalog, Query: query}
}

// Execute runs both searches
func (c *CompareCommand) Execute(ctx context.Context) (*CompareResult, error) {
	slow, err := NewSearchCommand(c.catalog, c.Query, SearchModeSlow).Execute(ctx)
	if err != nil {
		return nil, err
	}
	fast, err := NewSearchCommand(c.catalog, c.Query, SearchModeFast).Execute(ctx)
	if err != nil {
		return nil, err
	}
	return &CompareResult{Slow: slow, Fast: fast}, nil
}
