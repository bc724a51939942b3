package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ideaindex/internal/application"
	"ideaindex/internal/application/commands"
)

// RegisterWriteTools adds the tools that change ideas or the index.
// defaultAuthor is used for add_idea calls that do not name one.
func RegisterWriteTools(s *server.MCPServer, catalog *application.Catalog, defaultAuthor string) {
	s.AddTool(addIdeaTool(), addIdeaHandler(catalog, defaultAuthor))
	s.AddTool(rebuildTool(), rebuildHandler(catalog))
}

// --- add_idea ---

func addIdeaTool() mcp.Tool {
	return mcp.NewTool("add_idea",
		mcp.WithDescription("Publish a new idea. It is visible to search_slow at once and reaches the tag index after the index delay."),
		mcp.WithString("title",
			mcp.Description("Idea title"),
			mcp.Required(),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags, e.g. \"IA, Salud\""),
			mcp.Required(),
		),
		mcp.WithString("author",
			mcp.Description("Author name"),
		),
		mcp.WithBoolean("wait",
			mcp.Description("Wait until the idea is in the index before returning"),
		),
	)
}

func addIdeaHandler(catalog *application.Catalog, defaultAuthor string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddIdeaCommand(catalog,
			req.GetString("title", ""),
			req.GetString("tags", ""),
			req.GetString("author", defaultAuthor),
		)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if !req.GetBool("wait", false) {
			return mcp.NewToolResultText(result.Message + " (indexing pending)"), nil
		}
		if err := result.Pending.Wait(ctx); err != nil {
			return toolError(fmt.Errorf("%s, but indexing failed: %w", result.Message, err))
		}
		return mcp.NewToolResultText(result.Message + " (indexed)"), nil
	}
}

// --- rebuild_index ---

func rebuildTool() mcp.Tool {
	return mcp.NewTool("rebuild_index",
		mcp.WithDescription("Rebuild the tag index from every idea and persist it."),
	)
}

func rebuildHandler(catalog *application.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewRebuildIndexCommand(catalog).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s in %s", result.Message, result.Duration)), nil
	}
}
