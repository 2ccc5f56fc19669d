package store

import "github.com/amterp/nids/internal/model"

// NamedIDStore handles persistence of a project's named ID file.
type NamedIDStore interface {
	Load() (*model.NamedIDFile, error)
	Save(file *model.NamedIDFile) error
	Exists() bool
	Path() string
}

// GlobalStore handles global config persistence.
type GlobalStore interface {
	Load() (*model.GlobalConfig, error)
	Save(config *model.GlobalConfig) error
	EnsureExists() error
}
