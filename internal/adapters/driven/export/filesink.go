// Package export writes exported page content to the local filesystem.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quill-labs/notedump/internal/core/domain"
	"github.com/quill-labs/notedump/internal/core/ports/driven"
)

// Ensure FileSink implements the interface.
var _ driven.ContentSink = (*FileSink)(nil)

// FileSink writes each page as an .html file named after its title.
// Titles are sanitized for the filesystem and deduplicated with a
// numeric suffix, so two pages called "Meeting notes" become
// "Meeting notes.html" and "Meeting notes (2).html".
type FileSink struct {
	dir  string
	seen map[string]int
}

// NewFileSink creates the output directory and returns a sink writing
// into it.
func NewFileSink(dir string) (*FileSink, error) {
	if dir == "" {
		dir = "output"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &FileSink{dir: dir, seen: make(map[string]int)}, nil
}

// NewFactory returns a ContentSinkFactory producing file sinks.
func NewFactory() driven.ContentSinkFactory {
	return func(dir string) (driven.ContentSink, error) {
		return NewFileSink(dir)
	}
}

// Write stores one page's content.
func (s *FileSink) Write(page *domain.Page, content []byte) error {
	name := s.filename(page.Title)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Done marks the export complete. Files are written eagerly, so there
// is nothing left to flush.
func (s *FileSink) Done() error {
	return nil
}

// Dir returns the output directory.
func (s *FileSink) Dir() string {
	return s.dir
}

// filename maps a page title to a unique, filesystem-safe name.
func (s *FileSink) filename(title string) string {
	base := sanitizeTitle(title)
	if base == "" {
		base = "Untitled"
	}

	s.seen[base]++
	if n := s.seen[base]; n > 1 {
		return fmt.Sprintf("%s (%d).html", base, n)
	}
	return base + ".html"
}

// sanitizeTitle strips characters that are unsafe in filenames on any
// supported platform.
func sanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|':
			b.WriteRune('_')
		case r < 0x20:
			// Control characters are dropped outright.
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
