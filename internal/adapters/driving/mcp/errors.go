// Package mcp provides an MCP (Model Context Protocol) server adapter
// for notedump. It lets AI assistants list OneNote notebooks and
// trigger exports through the same service layer the CLI uses.
package mcp

import "errors"

// ErrMissingExportService is returned when the export service is not provided.
var ErrMissingExportService = errors.New("mcp: export service is required")
