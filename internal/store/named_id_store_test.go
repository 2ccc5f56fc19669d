package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/nids/internal/config"
	nidserr "github.com/amterp/nids/internal/errors"
	"github.com/amterp/nids/internal/model"
	"github.com/amterp/nids/internal/version"
)

func setupTestNamedIDStore(t *testing.T) (*FileNamedIDStore, string) {
	t.Helper()
	dir := t.TempDir()
	return NewNamedIDStore(config.NewPaths(dir)), dir
}

func TestFileNamedIDStore_SaveAndLoad(t *testing.T) {
	store, _ := setupTestNamedIDStore(t)

	file := &model.NamedIDFile{
		ID:   "p_test123",
		Name: "castle",
		Data: "door:4|wall:1|score:2|||",
	}
	if err := store.Save(file); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !store.Exists() {
		t.Error("Expected file to exist after Save")
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Data != file.Data {
		t.Errorf("Data mismatch: got %q, want %q", loaded.Data, file.Data)
	}
	if loaded.ID != file.ID || loaded.Name != file.Name {
		t.Errorf("Metadata mismatch: got %+v", loaded)
	}
	if loaded.NidsSchema != version.CurrentNamedIDsSchema() {
		t.Errorf("NidsSchema mismatch: got %q", loaded.NidsSchema)
	}
}

func TestFileNamedIDStore_SaveLeavesNoTempFiles(t *testing.T) {
	store, dir := setupTestNamedIDStore(t)

	for i := 0; i < 3; i++ {
		if err := store.Save(&model.NamedIDFile{Data: "||"}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := os.ReadDir(filepath.Join(dir, config.DefaultDataDir))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != config.NamedIDsFileName {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only %s, got %v", config.NamedIDsFileName, names)
	}
}

func TestFileNamedIDStore_LoadMissing(t *testing.T) {
	store, _ := setupTestNamedIDStore(t)

	if store.Exists() {
		t.Error("Expected file not to exist")
	}
	_, err := store.Load()
	if !errors.Is(err, nidserr.ErrNotInitialized) {
		t.Errorf("Expected not initialized error, got %v", err)
	}
}

func TestFileNamedIDStore_LoadSchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing schema", "data = \"||\"\n"},
		{"future schema", "nids_schema = \"named_ids/99\"\ndata = \"||\"\n"},
		{"wrong prefix", "nids_schema = \"board/1\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := setupTestNamedIDStore(t)
			if err := os.MkdirAll(filepath.Dir(store.Path()), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(store.Path(), []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := store.Load()
			var sve *version.SchemaVersionError
			if !errors.As(err, &sve) {
				t.Errorf("Expected SchemaVersionError, got %v", err)
			}
		})
	}
}

func TestFileNamedIDStore_LoadInvalidToml(t *testing.T) {
	store, _ := setupTestNamedIDStore(t)
	os.MkdirAll(filepath.Dir(store.Path()), 0755)
	os.WriteFile(store.Path(), []byte("this is = = not toml"), 0644)

	if _, err := store.Load(); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}
