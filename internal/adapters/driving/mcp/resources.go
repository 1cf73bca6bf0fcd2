package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for notedump resources.
const uriScheme = "notedump://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for export run history.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "History of finished export runs",
		MIMEType:    "application/json",
	}, s.handleRunsResource)
}

// runEntry is the JSON shape of one run in the runs resource.
type runEntry struct {
	ID            string `json:"id"`
	Notebook      string `json:"notebook"`
	Section       string `json:"section,omitempty"`
	PagesExported int    `json:"pages_exported"`
	PagesSkipped  int    `json:"pages_skipped"`
	OutputDir     string `json:"output_dir"`
	Duration      string `json:"duration"`
	StartedAt     string `json:"started_at"`
}

// handleRunsResource returns the recorded export runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	runs, err := s.ports.Export.Runs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	entries := make([]runEntry, len(runs))
	for i := range runs {
		entries[i] = runEntry{
			ID:            runs[i].ID,
			Notebook:      runs[i].Notebook,
			Section:       runs[i].Section,
			PagesExported: runs[i].PagesExported,
			PagesSkipped:  runs[i].PagesSkipped,
			OutputDir:     runs[i].OutputDir,
			Duration:      runs[i].Duration.String(),
			StartedAt:     runs[i].StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encoding runs: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
