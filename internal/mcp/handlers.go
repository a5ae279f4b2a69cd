package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/devlog-hub/internal/modules"
)

// handleListModules returns the fixed module table.
func (s *Server) handleListModules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString("Known documentation modules:\n\n")
	for _, m := range modules.All() {
		fmt.Fprintf(&sb, "- %s: %s (branch %s)\n", m.ID, m.DisplayName, m.Locator)
	}
	sb.WriteString("\nUse get_module_content with a module identifier to fetch its document.")
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetModuleContent resolves and fetches one module's markdown. The
// failure semantics match the HTTP viewer: a missing remote document is a
// successful result carrying the placeholder payload, while a transport
// failure is a tool error.
func (s *Server) handleGetModuleContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("module")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: module"), nil
	}

	mod := modules.Resolve(id)
	state := s.fetcher.Load(ctx, mod)
	if !state.Ready() {
		return mcp.NewToolResultError(state.Err), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", mod.DisplayName)
	fmt.Fprintf(&sb, "Source: %s\nPDF: %s\n\n---\n\n", state.Bundle.SourceURL, state.Bundle.CompanionURL)
	sb.WriteString(state.Bundle.Markdown)
	return mcp.NewToolResultText(sb.String()), nil
}
