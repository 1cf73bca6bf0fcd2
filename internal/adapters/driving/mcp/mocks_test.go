package mcp

import (
	"context"
	"time"

	"github.com/quill-labs/notedump/internal/core/domain"
)

// mockExportService is a configurable test double for the export port.
type mockExportService struct {
	notebooks []domain.Notebook
	listErr   error

	exportOpts   domain.ExportOptions
	exportResult *domain.ExportResult
	exportErr    error

	runs    []domain.Run
	runsErr error
}

func (m *mockExportService) ListNotebooks(_ context.Context, _ bool) ([]domain.Notebook, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.notebooks, nil
}

func (m *mockExportService) Export(_ context.Context, opts domain.ExportOptions) (*domain.ExportResult, error) {
	m.exportOpts = opts
	if m.exportErr != nil {
		return nil, m.exportErr
	}
	if m.exportResult != nil {
		return m.exportResult, nil
	}
	return &domain.ExportResult{
		RunID:     "run-1",
		Notebook:  opts.Notebook,
		OutputDir: opts.OutputDir,
		Duration:  time.Second,
	}, nil
}

func (m *mockExportService) Runs(_ context.Context) ([]domain.Run, error) {
	if m.runsErr != nil {
		return nil, m.runsErr
	}
	return m.runs, nil
}
