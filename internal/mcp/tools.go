package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listModulesTool defines the list_modules MCP tool.
var listModulesTool = mcp.NewTool("list_modules",
	mcp.WithDescription("List the known documentation modules with their identifiers, display names, and branch locators."),
)

// getModuleContentTool defines the get_module_content MCP tool.
var getModuleContentTool = mcp.NewTool("get_module_content",
	mcp.WithDescription("Fetch the markdown document for a module. Unknown identifiers are tried verbatim against the remote source."),
	mcp.WithString("module",
		mcp.Required(),
		mcp.Description("Module identifier, e.g. sql, dsa, networking-linux"),
	),
)
