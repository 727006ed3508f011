package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/aiif/aiifcheck/internal/adapters/outbound/config"
	"github.com/aiif/aiifcheck/internal/adapters/outbound/gitinfo"
	"github.com/aiif/aiifcheck/internal/adapters/outbound/loader"
	"github.com/aiif/aiifcheck/internal/adapters/outbound/openapi"
	"github.com/aiif/aiifcheck/internal/application"
	"github.com/aiif/aiifcheck/internal/domain"
)

// registerTools registers all aiifcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, workDir string) {
	// 1. aiif_validate
	s.AddTool(
		mcplib.NewTool("aiif_validate",
			mcplib.WithDescription("Validate an AIIF document against a conformance checklist and return the full report as JSON"),
			mcplib.WithString("aiif",
				mcplib.Required(),
				mcplib.Description("Path to the AIIF document to validate"),
			),
			mcplib.WithString("checklist",
				mcplib.Description("Path to the checklist (defaults to the configured checklist)"),
			),
			mcplib.WithBoolean("strict",
				mcplib.Description("Treat SHOULD failures as non-compliant"),
			),
		),
		handleValidate(workDir),
	)

	// 2. aiif_checklist
	s.AddTool(
		mcplib.NewTool("aiif_checklist",
			mcplib.WithDescription("List the check ids a checklist defines with their resolved severity levels"),
			mcplib.WithString("checklist",
				mcplib.Description("Path to the checklist (defaults to the configured checklist)"),
			),
		),
		handleChecklist(workDir),
	)

	// 3. aiif_import
	s.AddTool(
		mcplib.NewTool("aiif_import",
			mcplib.WithDescription("Convert an OpenAPI 3 document into an AIIF document skeleton"),
			mcplib.WithString("openapi",
				mcplib.Required(),
				mcplib.Description("Path to the OpenAPI document to import"),
			),
		),
		handleImport(workDir),
	)
}

func handleValidate(workDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		aiifPath, err := request.RequireString("aiif")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		checklistPath, _ := request.GetArguments()["checklist"].(string)
		strict, _ := request.GetArguments()["strict"].(bool)

		checklistPath, err = resolveChecklist(workDir, checklistPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewValidateService(loader.New(), gitinfo.New())
		report, err := svc.Validate(resolvePath(workDir, aiifPath), checklistPath)
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}

		type verdictReport struct {
			*domain.Report
			ExitStatus int `json:"exit_status"`
		}
		summary := report.Summary
		return jsonResult(verdictReport{
			Report:     report,
			ExitStatus: domain.ExitStatus(summary.MustFailures, summary.ShouldFailures, strict),
		})
	}
}

func handleChecklist(workDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		checklistPath, _ := request.GetArguments()["checklist"].(string)

		checklistPath, err := resolveChecklist(workDir, checklistPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewValidateService(loader.New(), nil)
		entries, err := svc.ListChecks(checklistPath)
		if err != nil {
			return errorResult(fmt.Sprintf("listing checks failed: %v", err)), nil
		}
		return jsonResult(entries)
	}
}

func handleImport(workDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		openapiPath, err := request.RequireString("openapi")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewImportService(openapi.New())
		doc, err := svc.ImportOpenAPI(resolvePath(workDir, openapiPath))
		if err != nil {
			return errorResult(fmt.Sprintf("import failed: %v", err)), nil
		}
		return jsonResult(doc)
	}
}

// resolveChecklist falls back to the configured checklist when none is
// given, resolving relative paths against the working directory.
func resolveChecklist(workDir, checklistPath string) (string, error) {
	if checklistPath != "" {
		return resolvePath(workDir, checklistPath), nil
	}
	cfg, err := configAdapter.New().Load(workDir)
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	return resolvePath(workDir, cfg.Checklist), nil
}

func resolvePath(workDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
