package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultDataDir     = ".nids"
	NamedIDsFileName   = "named_ids.toml"
	ConfigFileName     = "config.toml"
	GlobalConfigDir    = ".config/nids"
	GlobalConfigEnvVar = "NIDS_CONFIG"
)

// Paths provides path resolution for nids data files.
type Paths struct {
	projectRoot string
}

// NewPaths creates a new Paths resolver for the given project.
func NewPaths(projectRoot string) *Paths {
	return &Paths{projectRoot: projectRoot}
}

// ProjectRoot returns the directory that contains the data directory.
func (p *Paths) ProjectRoot() string {
	return p.projectRoot
}

// DataRoot returns the root directory for nids data.
func (p *Paths) DataRoot() string {
	return filepath.Join(p.projectRoot, DefaultDataDir)
}

// NamedIDsPath returns the file holding the project's named IDs.
func (p *Paths) NamedIDsPath() string {
	return filepath.Join(p.DataRoot(), NamedIDsFileName)
}

// GlobalConfigPath returns the path to the global config file.
// NIDS_CONFIG overrides the default location.
func GlobalConfigPath() string {
	if override := os.Getenv(GlobalConfigEnvVar); override != "" {
		return override
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, ConfigFileName)
}
