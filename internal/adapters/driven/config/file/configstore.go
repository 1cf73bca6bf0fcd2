// Package file provides the TOML-backed settings store.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/quill-labs/notedump/internal/core/domain"
	"github.com/quill-labs/notedump/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore reads and writes settings as TOML. The default location
// is ~/.notedump/config.toml.
type ConfigStore struct {
	filePath string
}

// NewConfigStore creates a config store rooted at configDir. If
// configDir is empty, ~/.notedump is used.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		configDir = filepath.Join(home, ".notedump")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	return &ConfigStore{filePath: filepath.Join(configDir, "config.toml")}, nil
}

// Load reads the settings file. A missing file yields zero settings.
func (s *ConfigStore) Load() (*domain.Settings, error) {
	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return &domain.Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var settings domain.Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.filePath, err)
	}
	return &settings, nil
}

// Save writes the settings file with user-only permissions.
func (s *ConfigStore) Save(settings *domain.Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Path returns the settings file location.
func (s *ConfigStore) Path() string {
	return s.filePath
}
