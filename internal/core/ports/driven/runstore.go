package driven

import (
	"context"

	"github.com/quill-labs/notedump/internal/core/domain"
)

// RunStore persists export-run history.
type RunStore interface {
	// Save records a completed run.
	Save(ctx context.Context, run domain.Run) error

	// List returns all recorded runs, most recent first.
	List(ctx context.Context) ([]domain.Run, error)

	// Close releases the underlying storage.
	Close() error
}
