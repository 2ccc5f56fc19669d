// Package settings supplies boolean feature flags to the registry.
package settings

import (
	"log"

	"github.com/amterp/nids/internal/model"
)

// BoolSource answers boolean setting lookups. Unknown keys read as false.
type BoolSource interface {
	Bool(key string) bool
}

// BoolSourceFunc adapts a plain function to BoolSource.
type BoolSourceFunc func(key string) bool

func (f BoolSourceFunc) Bool(key string) bool { return f(key) }

// Static is a fixed in-memory source.
type Static map[string]bool

func (s Static) Bool(key string) bool { return s[key] }

// GlobalConfigLoader loads the global config. store.FileGlobalStore
// implements it.
type GlobalConfigLoader interface {
	Load() (*model.GlobalConfig, error)
}

// FileSource reads settings from the global config on every lookup, so a
// refresh always sees the file's current contents.
type FileSource struct {
	loader GlobalConfigLoader
}

// NewFileSource creates a source backed by the global config.
func NewFileSource(loader GlobalConfigLoader) *FileSource {
	return &FileSource{loader: loader}
}

// Bool implements BoolSource. A config that fails to load reads as all
// defaults; the error is logged rather than surfaced.
func (s *FileSource) Bool(key string) bool {
	cfg, err := s.loader.Load()
	if err != nil {
		log.Printf("Warning: failed to load settings, using defaults: %v", err)
		return false
	}
	return cfg.Bool(key)
}
