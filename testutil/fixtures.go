package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/nids/internal/config"
	"github.com/amterp/nids/internal/model"
	"github.com/amterp/nids/internal/store"
)

// TestNamedIDFile returns a named ID file with sensible test defaults.
func TestNamedIDFile(data string) *model.NamedIDFile {
	return &model.NamedIDFile{
		ID:   "p_test",
		Name: "test-level",
		Data: data,
	}
}

// TempNidsDir creates a temporary project with an empty .nids directory.
// The directory is removed when the test ends.
func TempNidsDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, config.DefaultDataDir), 0755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}
	return dir
}

// TempProject creates a temporary project whose named ID file holds data.
func TempProject(t *testing.T, data string) string {
	t.Helper()

	dir := TempNidsDir(t)
	WriteNamedIDs(t, dir, data)
	return dir
}

// WriteNamedIDs saves data as the project's named ID file.
func WriteNamedIDs(t *testing.T, projectRoot, data string) {
	t.Helper()

	st := store.NewNamedIDStore(NewTestPaths(projectRoot))
	if err := st.Save(TestNamedIDFile(data)); err != nil {
		t.Fatalf("failed to write named IDs: %v", err)
	}
}

// NewTestPaths creates a Paths for testing with the given temp directory.
func NewTestPaths(baseDir string) *config.Paths {
	return config.NewPaths(baseDir)
}
