package driven

import "github.com/quill-labs/notedump/internal/core/domain"

// TokenStore persists the single OAuth token record between runs.
// There are no retry semantics: storage failures are local I/O errors
// surfaced directly.
type TokenStore interface {
	// Save writes the record, overwriting any existing one.
	Save(token domain.Token) error

	// Load returns the stored record. It fails with
	// domain.ErrTokenAbsent if no record exists, or with
	// domain.ErrTokenCorrupt if the stored bytes do not decode; on
	// corruption the bad file is deleted so future loads fail cleanly
	// with ErrTokenAbsent.
	Load() (*domain.Token, error)

	// Delete removes the record, succeeding silently if none exists.
	Delete() error
}
