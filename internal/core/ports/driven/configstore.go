package driven

import "github.com/quill-labs/notedump/internal/core/domain"

// ConfigStore persists user settings.
type ConfigStore interface {
	// Load reads the stored settings. A missing file is not an error;
	// it yields zero settings.
	Load() (*domain.Settings, error)

	// Save writes the settings, creating the file if needed.
	Save(settings *domain.Settings) error

	// Path returns the backing file's location, for display.
	Path() string
}
