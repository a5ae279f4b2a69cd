package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/devlog-hub/internal/content"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the module catalog and document
// fetching to AI agents.
type Server struct {
	fetcher *content.Fetcher
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(fetcher *content.Fetcher) *Server {
	s := &Server{fetcher: fetcher}

	s.mcp = server.NewMCPServer(
		"devlog",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listModulesTool, s.handleListModules)
	s.mcp.AddTool(getModuleContentTool, s.handleGetModuleContent)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
