package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quill-labs/notedump/internal/core/domain"
)

// ListNotebooksOutput is the output schema for the list_notebooks tool.
type ListNotebooksOutput struct {
	Notebooks []string `json:"notebooks"`
	Count     int      `json:"count"`
}

// DumpInput is the input schema for the dump_notebook tool.
type DumpInput struct {
	Notebook  string `json:"notebook" jsonschema:"display name of the notebook to export"`
	Section   string `json:"section,omitempty" jsonschema:"limit export to sections with this display name"`
	OutputDir string `json:"output_dir,omitempty" jsonschema:"directory to write page files into (default output)"`
	StartPage int    `json:"start_page,omitempty" jsonschema:"1-indexed page to resume from"`
	MaxPages  int    `json:"max_pages,omitempty" jsonschema:"maximum number of pages to visit"`
}

// DumpOutput is the output schema for the dump_notebook tool.
type DumpOutput struct {
	RunID         string `json:"run_id"`
	PagesExported int    `json:"pages_exported"`
	PagesSkipped  int    `json:"pages_skipped"`
	OutputDir     string `json:"output_dir"`
	Duration      string `json:"duration"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_notebooks",
		Description: "List the OneNote notebooks available to the signed-in user",
	}, s.handleListNotebooks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "dump_notebook",
		Description: "Export a OneNote notebook's pages to HTML files on disk",
	}, s.handleDump)
}

// handleListNotebooks handles the list_notebooks tool invocation.
func (s *Server) handleListNotebooks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListNotebooksOutput, error) {
	notebooks, err := s.ports.Export.ListNotebooks(ctx, false)
	if err != nil {
		return nil, ListNotebooksOutput{}, err
	}

	output := ListNotebooksOutput{
		Notebooks: make([]string, len(notebooks)),
		Count:     len(notebooks),
	}
	for i := range notebooks {
		output.Notebooks[i] = notebooks[i].DisplayName
	}

	return nil, output, nil
}

// handleDump handles the dump_notebook tool invocation.
func (s *Server) handleDump(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DumpInput,
) (*mcp.CallToolResult, DumpOutput, error) {
	result, err := s.ports.Export.Export(ctx, domain.ExportOptions{
		Notebook:  input.Notebook,
		Section:   input.Section,
		OutputDir: input.OutputDir,
		StartPage: input.StartPage,
		MaxPages:  input.MaxPages,
	})
	if err != nil {
		return nil, DumpOutput{}, err
	}

	return nil, DumpOutput{
		RunID:         result.RunID,
		PagesExported: result.PagesExported,
		PagesSkipped:  result.PagesSkipped,
		OutputDir:     result.OutputDir,
		Duration:      result.Duration.String(),
	}, nil
}
