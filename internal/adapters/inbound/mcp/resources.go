package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/aiif/aiifcheck/internal/adapters/outbound/config"
	"github.com/aiif/aiifcheck/internal/adapters/outbound/loader"
	"github.com/aiif/aiifcheck/internal/application"
)

// registerResources registers all aiifcheck MCP resources on the given server.
func registerResources(s *server.MCPServer, workDir string) {
	// aiif://checklist - the configured checklist's checks with severities
	s.AddResource(
		mcplib.NewResource(
			"aiif://checklist",
			"Conformance Checklist",
			mcplib.WithResourceDescription("Check ids and severity levels of the configured conformance checklist"),
			mcplib.WithMIMEType("application/json"),
		),
		handleChecklistResource(workDir),
	)
}

func handleChecklistResource(workDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := configAdapter.New().Load(workDir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		svc := application.NewValidateService(loader.New(), nil)
		entries, err := svc.ListChecks(resolvePath(workDir, cfg.Checklist))
		if err != nil {
			return nil, fmt.Errorf("listing checks failed: %w", err)
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling checklist: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "aiif://checklist",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
