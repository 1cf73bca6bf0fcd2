// Package tokenstore persists the OAuth token record on local disk.
package tokenstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/quill-labs/notedump/internal/core/domain"
	"github.com/quill-labs/notedump/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.TokenStore = (*FileStore)(nil)

// FileStore stores the token as a single JSON file with 0600
// permissions. The file is protected only by last-writer-wins
// semantics; concurrent authenticating processes are out of scope.
type FileStore struct {
	path string
	log  *slog.Logger
}

// NewFileStore creates a token store at the given path. If path is
// empty it defaults to ~/.notedump/token.json.
func NewFileStore(path string, log *slog.Logger) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".notedump", "token.json")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating token directory: %w", err)
	}

	return &FileStore{path: path, log: log}, nil
}

// Save writes the token record, overwriting any existing one.
func (s *FileStore) Save(token domain.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	s.log.Debug("token saved", "path", s.path)
	return nil
}

// Load reads the stored token record. A missing file yields
// domain.ErrTokenAbsent. Undecodable bytes yield domain.ErrTokenCorrupt
// and the bad file is deleted so the next load fails cleanly.
func (s *FileStore) Load() (*domain.Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrTokenAbsent
		}
		return nil, fmt.Errorf("read token file: %w", err)
	}

	var token domain.Token
	if err := json.Unmarshal(data, &token); err != nil {
		s.log.Warn("stored token is corrupt, deleting", "path", s.path, "error", err)
		if rmErr := s.Delete(); rmErr != nil {
			return nil, fmt.Errorf("%w: removing corrupt file: %w", domain.ErrTokenCorrupt, rmErr)
		}
		return nil, domain.ErrTokenCorrupt
	}

	s.log.Debug("token loaded", "path", s.path)
	return &token, nil
}

// Delete removes the token record, succeeding silently if none exists.
func (s *FileStore) Delete() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete token file: %w", err)
	}
	return nil
}

// Path returns the location of the token file.
func (s *FileStore) Path() string {
	return s.path
}
