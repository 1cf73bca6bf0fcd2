package driving

import (
	"context"

	"github.com/quill-labs/notedump/internal/core/domain"
)

// ExportService exposes the user-facing operations: listing notebooks,
// exporting one notebook to local files, and reading run history.
type ExportService interface {
	// ListNotebooks returns the user's notebooks.
	ListNotebooks(ctx context.Context, newSession bool) ([]domain.Notebook, error)

	// Export walks the named notebook and writes its pages through the
	// configured sink.
	Export(ctx context.Context, opts domain.ExportOptions) (*domain.ExportResult, error)

	// Runs returns recorded export runs, most recent first.
	Runs(ctx context.Context) ([]domain.Run, error)
}
