package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/amterp/nids/internal/config"
	nidserr "github.com/amterp/nids/internal/errors"
	"github.com/amterp/nids/internal/model"
	"github.com/amterp/nids/internal/version"
)

// FileNamedIDStore implements NamedIDStore using the filesystem.
type FileNamedIDStore struct {
	paths *config.Paths
}

// NewNamedIDStore creates a new named ID store.
func NewNamedIDStore(paths *config.Paths) *FileNamedIDStore {
	return &FileNamedIDStore{paths: paths}
}

// Path returns the file the store reads and writes.
func (s *FileNamedIDStore) Path() string {
	return s.paths.NamedIDsPath()
}

// Load reads the named ID file from disk.
func (s *FileNamedIDStore) Load() (*model.NamedIDFile, error) {
	path := s.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &nidserr.NotInitializedError{Path: s.paths.ProjectRoot()}
		}
		return nil, fmt.Errorf("failed to read named IDs: %w", err)
	}

	var file model.NamedIDFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid named ID file: %w", err)
	}

	if err := version.NamedIDs.Check(path, file.NidsSchema); err != nil {
		return nil, err
	}

	return &file, nil
}

// Save writes the named ID file to disk. The write goes through a
// temporary file and a rename so readers never see a truncated file.
func (s *FileNamedIDStore) Save(file *model.NamedIDFile) error {
	// Stamp current schema version
	file.NidsSchema = version.CurrentNamedIDsSchema()

	path := s.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".named_ids-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create named ID file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := toml.NewEncoder(tmp).Encode(file); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to encode named IDs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write named IDs: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace named ID file: %w", err)
	}
	return nil
}

// Exists returns true if the named ID file exists.
func (s *FileNamedIDStore) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}
