package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ideaindex/internal/application"
	"ideaindex/internal/application/commands"
)

// RegisterReadTools adds all read-only idea tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, catalog *application.Catalog) {
	s.AddTool(searchSlowTool(), searchHandler(catalog, commands.SearchModeSlow))
	s.AddTool(searchFastTool(), searchHandler(catalog, commands.SearchModeFast))
	s.AddTool(compareTool(), compareHandler(catalog))
	s.AddTool(listTool(), listHandler(catalog))
	s.AddTool(getIdeaTool(), getIdeaHandler(catalog))
	s.AddTool(statsTool(), statsHandler(catalog))
}

// --- search_slow / search_fast ---

func searchSlowTool() mcp.Tool {
	return mcp.NewTool("search_slow",
		mcp.WithDescription("Linear search: scan every idea for a tag containing the query (case-insensitive substring). Always sees the latest ideas."),
		mcp.WithString("query",
			mcp.Description("Tag fragment, e.g. energ"),
			mcp.Required(),
		),
	)
}

func searchFastTool() mcp.Tool {
	return mcp.NewTool("search_fast",
		mcp.WithDescription("Index search: look up the query as one exact tag (case-insensitive). Ideas added in the last index delay and ideas added since the last rebuild may be missing."),
		mcp.WithString("query",
			mcp.Description("Exact tag, e.g. ia"),
			mcp.Required(),
		),
	)
}

func searchHandler(catalog *application.Catalog, mode commands.SearchMode) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		result, err := commands.NewSearchCommand(catalog, query, mode).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s search %q: %d results in %s\n", result.Mode, result.Query, result.Len(), result.Elapsed)
		for _, hit := range result.Hits() {
			sb.WriteString(formatEntry(hit))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- compare ---

func compareTool() mcp.Tool {
	return mcp.NewTool("compare",
		mcp.WithDescription("Run the linear and the index search for the same query and report both timings and the ideas only the linear search found."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func compareHandler(catalog *application.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		result, err := commands.NewCompareCommand(catalog, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "slow: %d results in %s\n", result.Slow.Len(), result.Slow.Elapsed)
		fmt.Fprintf(&sb, "fast: %d results in %s\n", result.Fast.Len(), result.Fast.Elapsed)
		if only := result.OnlySlow(); len(only) > 0 {
			fmt.Fprintf(&sb, "only slow: %s\n", strings.Join(only, ", "))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_ideas ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_ideas",
		mcp.WithDescription("List every idea in record order with its tags."),
	)
}

func listHandler(catalog *application.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ideas, err := commands.NewListIdeasCommand(catalog).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(ideas, formatIdea)
	}
}

// --- get_idea ---

func getIdeaTool() mcp.Tool {
	return mcp.NewTool("get_idea",
		mcp.WithDescription("Get one idea by its ID."),
		mcp.WithString("id",
			mcp.Description("Idea ID (e.g. idea_101)"),
			mcp.Required(),
		),
	)
}

func getIdeaHandler(catalog *application.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		idea, err := commands.NewShowIdeaCommand(catalog, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "id: %s\ntitle: %s\ntags: %s\n", idea.ID, idea.Title, strings.Join(idea.Tags, ", "))
		if idea.Author != "" {
			fmt.Fprintf(&sb, "author: %s\n", idea.Author)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("stats",
		mcp.WithDescription("Report total ideas, indexed tags, index entries and pending index updates."),
	)
}

func statsHandler(catalog *application.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats, err := commands.NewStatsCommand(catalog).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("ideas: %d\ntags: %d\nentries: %d\npending: %d\n",
			stats.Ideas, stats.Tags, stats.Entries, stats.Pending)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatIdea(i application.Idea) string {
	return fmt.Sprintf("%s  %s  [%s]", i.ID, i.Title, strings.Join(i.Tags, ", "))
}

func formatEntry(e application.IndexEntry) string {
	return fmt.Sprintf("%s  %s", e.IdeaID, e.Title)
}
