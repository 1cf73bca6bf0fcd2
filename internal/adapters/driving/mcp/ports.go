package mcp

import (
	"github.com/quill-labs/notedump/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Export lists notebooks and runs exports.
	Export driving.ExportService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Export == nil {
		return ErrMissingExportService
	}
	return nil
}
