package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/pflag"

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

// mockConfigStore is an in-memory settings store.
type mockConfigStore struct {
	settings domain.Settings
	loadErr  error
	saveErr  error
}

func (m *mockConfigStore) Load() (*domain.Settings, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	settings := m.settings
	return &settings, nil
}

func (m *mockConfigStore) Save(settings *domain.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.settings = *settings
	return nil
}

func (m *mockConfigStore) Path() string {
	return "/tmp/notedump-test/config.toml"
}

// execute runs the root command with the given services and args,
// returning captured output.
func execute(t *testing.T, services Services, args ...string) (string, error) {
	t.Helper()

	SetServices(services)
	t.Cleanup(func() {
		SetServices(Services{})
		listNewSession = false
		dumpSection = ""
		dumpOutputDir = "output"
		dumpStartPage = 0
		dumpMaxPages = 0
		dumpNewSession = false
		// Cobra keeps Changed set after a parse, which would leak
		// into the next test's flag handling.
		for _, c := range rootCmd.Commands() {
			c.Flags().Visit(func(f *pflag.Flag) { f.Changed = false })
		}
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return buf.String(), err
}
