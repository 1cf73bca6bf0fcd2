package driven

import (
	"context"

	"github.com/quill-labs/notedump/internal/core/domain"
)

// PageSource is a lazily produced, one-pass sequence of pages. Next
// performs remote calls strictly on demand, one page-collection fetch
// at a time, and returns domain.ErrNoMorePages once the traversal is
// exhausted. A caller wanting early stop simply stops calling Next; no
// resources are held between calls.
type PageSource interface {
	Next(ctx context.Context) (*domain.Page, error)
}

// NotebookClient is the read-only notebook API surface the export core
// consumes. Implementations wrap an authenticated session and absorb
// rate limiting internally.
type NotebookClient interface {
	// ListNotebooks fetches the notebook collection root.
	ListNotebooks(ctx context.Context) ([]domain.Notebook, error)

	// Pages resolves notebookName and returns the lazy page sequence
	// over its section tree, depth-first. sectionName, when non-empty,
	// keeps only sections whose display name matches exactly. Fails
	// with *domain.NotebookNotFoundError when the notebook does not
	// resolve.
	Pages(ctx context.Context, notebookName, sectionName string) (PageSource, error)

	// Content fetches the raw content bytes of a page, or a fixed
	// placeholder marker when the page has no content URL.
	Content(ctx context.Context, page *domain.Page) ([]byte, error)
}

// NotebookClientFactory builds a NotebookClient bound to a session.
type NotebookClientFactory func(session *domain.Session) NotebookClient
