package domain

import "time"

// ExportOptions configures one export run.
type ExportOptions struct {
	// Notebook is the display name of the notebook to export. Matching
	// is exact and case-sensitive.
	Notebook string
	// Section optionally restricts the export to sections whose display
	// name matches exactly. The filter operates at section granularity:
	// a matching section's pages are exported in full.
	Section string
	// OutputDir is where page files are written.
	OutputDir string
	// StartPage is the 1-indexed position in the emitted page sequence
	// (after the section filter) at which writing begins. Earlier pages
	// are visited and counted but skipped. Zero means start at the
	// first page.
	StartPage int
	// MaxPages bounds the number of pages visited, counted with the
	// same convention as StartPage. Zero means no limit.
	MaxPages int
	// NewSession discards any saved token and forces interactive
	// re-authentication before the run.
	NewSession bool
}

// ExportResult summarises a completed export run.
type ExportResult struct {
	RunID         string
	Notebook      string
	Section       string
	PagesExported int
	PagesSkipped  int
	OutputDir     string
	Duration      time.Duration
}

// Run is the persisted record of an export run.
type Run struct {
	ID            string
	Notebook      string
	Section       string
	PagesExported int
	PagesSkipped  int
	OutputDir     string
	Duration      time.Duration
	StartedAt     time.Time
}
