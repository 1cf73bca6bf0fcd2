package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors form a closed set so callers can branch on failure kind
// with errors.Is / errors.As instead of matching message strings.
var (
	// ErrTokenAbsent indicates no token record exists on disk.
	ErrTokenAbsent = errors.New("auth token not found")

	// ErrTokenCorrupt indicates the stored token record could not be
	// decoded. The store deletes the bad file, so the next load fails
	// with ErrTokenAbsent.
	ErrTokenCorrupt = errors.New("auth token corrupt")

	// ErrAuthTimeout indicates the user never completed the browser
	// authorization flow within the redirect wait window.
	ErrAuthTimeout = errors.New("timed out waiting for authorization redirect")

	// ErrAuthExchangeFailed indicates the token endpoint rejected the
	// authorization code.
	ErrAuthExchangeFailed = errors.New("authorization code exchange failed")

	// ErrRateLimited indicates the API asked us to slow down. It is
	// absorbed by the fetcher's retry loop and never surfaces to callers.
	ErrRateLimited = errors.New("rate limited")

	// ErrNoMorePages is returned by a page iterator once the traversal
	// is exhausted.
	ErrNoMorePages = errors.New("no more pages")

	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// NotebookNotFoundError indicates the requested notebook display name
// matched nothing. Available carries the display names fetched in the
// same lookup as a best-effort hint for the user.
type NotebookNotFoundError struct {
	Name      string
	Available []string
}

func (e *NotebookNotFoundError) Error() string {
	msg := fmt.Sprintf("notebook %q not found", e.Name)
	if len(e.Available) > 0 {
		msg += "; available notebooks:\n  " + strings.Join(e.Available, "\n  ")
	}
	return msg
}

// IsNotebookNotFound reports whether err is a NotebookNotFoundError.
func IsNotebookNotFound(err error) bool {
	var nnf *NotebookNotFoundError
	return errors.As(err, &nnf)
}
