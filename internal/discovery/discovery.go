package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/nids/internal/config"
)

// DiscoverProject finds the project root by walking up from cwd.
// A project root is a directory containing .nids/named_ids.toml.
//
// Returns "" if no project found (not initialized).
func DiscoverProject() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return DiscoverProjectFrom(cwd)
}

// DiscoverProjectFrom finds the project root starting from a given directory.
func DiscoverProjectFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	for {
		dataFile := filepath.Join(dir, config.DefaultDataDir, config.NamedIDsFileName)
		if info, err := os.Stat(dataFile); err == nil && !info.IsDir() {
			return dir, nil
		}

		// Move up to parent
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, no project found
			return "", nil
		}
		dir = parent
	}
}
