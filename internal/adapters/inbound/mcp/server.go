package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewAIIFMCPServer creates a new MCP server with all aiifcheck tools and
// resources registered. workDir is the directory resolved for relative
// document paths and the .aiifcheck.yaml config.
func NewAIIFMCPServer(workDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"aiifcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, workDir)
	registerResources(s, workDir)

	return s
}
