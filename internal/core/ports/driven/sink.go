package driven

import "github.com/quill-labs/notedump/internal/core/domain"

// ContentSink receives exported pages. The core hands it a page
// descriptor and the raw content bytes and expects nothing back;
// conversion and file naming live entirely behind this boundary.
type ContentSink interface {
	// Write stores one page.
	Write(page *domain.Page, content []byte) error

	// Done is the completion hook, called exactly once when the run
	// finishes, on success and failure alike. It is for cleanup only;
	// the core makes no control decisions from it.
	Done() error
}

// ContentSinkFactory builds a sink writing into outputDir.
type ContentSinkFactory func(outputDir string) (ContentSink, error)
