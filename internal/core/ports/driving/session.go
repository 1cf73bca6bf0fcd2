package driving

import (
	"context"

	"github.com/quill-labs/notedump/internal/core/domain"
)

// SessionProvider produces an authenticated session, reusing the saved
// token when it is still good for at least the safety margin and
// falling back to the interactive authorization flow otherwise.
type SessionProvider interface {
	// Session returns a ready-to-use session. When forceNew is set the
	// stored token is deleted first and authentication always runs.
	Session(ctx context.Context, forceNew bool) (*domain.Session, error)
}
