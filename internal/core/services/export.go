package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quill-labs/notedump/internal/core/domain"
	"github.com/quill-labs/notedump/internal/core/ports/driven"
	"github.com/quill-labs/notedump/internal/core/ports/driving"
)

// Ensure ExportService implements the driving port.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService orchestrates an export run: acquire a session, walk the
// notebook's page sequence, fetch each page's content, and hand the
// (descriptor, bytes) pairs to the sink. Page counting for StartPage
// and MaxPages is 1-indexed over the emitted sequence, i.e. after the
// section filter; skipped pages are still visited and counted.
type ExportService struct {
	sessions driving.SessionProvider
	clients  driven.NotebookClientFactory
	sinks    driven.ContentSinkFactory
	runs     driven.RunStore
	log      *slog.Logger
	now      func() time.Time
	newRunID func() string
}

// NewExportService creates an export service.
func NewExportService(
	sessions driving.SessionProvider,
	clients driven.NotebookClientFactory,
	sinks driven.ContentSinkFactory,
	runs driven.RunStore,
	log *slog.Logger,
) *ExportService {
	return &ExportService{
		sessions: sessions,
		clients:  clients,
		sinks:    sinks,
		runs:     runs,
		log:      log,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

// ListNotebooks returns the user's notebooks.
func (s *ExportService) ListNotebooks(ctx context.Context, newSession bool) ([]domain.Notebook, error) {
	session, err := s.sessions.Session(ctx, newSession)
	if err != nil {
		return nil, err
	}
	return s.clients(session).ListNotebooks(ctx)
}

// Export walks the named notebook and writes its pages through the
// sink. Authentication and notebook-resolution failures abort the run;
// so does any non-rate-limit HTTP failure, with no partial file for the
// page in flight. The sink's completion hook runs on every exit path.
func (s *ExportService) Export(ctx context.Context, opts domain.ExportOptions) (*domain.ExportResult, error) {
	if opts.Notebook == "" {
		return nil, fmt.Errorf("%w: notebook name required", domain.ErrInvalidInput)
	}

	started := s.now()

	session, err := s.sessions.Session(ctx, opts.NewSession)
	if err != nil {
		return nil, err
	}
	client := s.clients(session)

	pages, err := client.Pages(ctx, opts.Notebook, opts.Section)
	if err != nil {
		return nil, err
	}

	sink, err := s.sinks(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("create sink: %w", err)
	}
	defer func() {
		if err := sink.Done(); err != nil {
			s.log.Warn("sink completion hook failed", "error", err)
		}
	}()

	result := &domain.ExportResult{
		Notebook:  opts.Notebook,
		Section:   opts.Section,
		OutputDir: opts.OutputDir,
	}

	visited := 0
	for {
		if opts.MaxPages > 0 && visited >= opts.MaxPages {
			s.log.Debug("page limit reached", "max_pages", opts.MaxPages)
			break
		}

		page, err := pages.Next(ctx)
		if errors.Is(err, domain.ErrNoMorePages) {
			break
		}
		if err != nil {
			return nil, err
		}

		visited++
		if opts.StartPage > 0 && visited < opts.StartPage {
			s.log.Info("page skipped", "page", visited, "title", page.Title)
			result.PagesSkipped++
			continue
		}

		content, err := client.Content(ctx, page)
		if err != nil {
			return nil, err
		}
		if err := sink.Write(page, content); err != nil {
			return nil, fmt.Errorf("write page %q: %w", page.Title, err)
		}
		s.log.Info("page exported", "page", visited, "title", page.Title)
		result.PagesExported++
	}

	result.Duration = s.now().Sub(started)
	result.RunID = s.newRunID()

	run := domain.Run{
		ID:            result.RunID,
		Notebook:      opts.Notebook,
		Section:       opts.Section,
		PagesExported: result.PagesExported,
		PagesSkipped:  result.PagesSkipped,
		OutputDir:     opts.OutputDir,
		Duration:      result.Duration,
		StartedAt:     started,
	}
	if err := s.runs.Save(ctx, run); err != nil {
		// Run history is advisory; a failed write must not fail a
		// finished export.
		s.log.Warn("failed to record export run", "error", err)
	}

	s.log.Info("export finished",
		"notebook", opts.Notebook,
		"pages_exported", result.PagesExported,
		"pages_skipped", result.PagesSkipped,
		"duration", result.Duration.String())

	return result, nil
}

// Runs returns recorded export runs, most recent first.
func (s *ExportService) Runs(ctx context.Context) ([]domain.Run, error) {
	return s.runs.List(ctx)
}
