package config

import (
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	p := NewPaths("/work/level")

	if got, want := p.DataRoot(), filepath.Join("/work/level", ".nids"); got != want {
		t.Errorf("DataRoot() = %q, want %q", got, want)
	}
	if got, want := p.NamedIDsPath(), filepath.Join("/work/level", ".nids", "named_ids.toml"); got != want {
		t.Errorf("NamedIDsPath() = %q, want %q", got, want)
	}
	if p.ProjectRoot() != "/work/level" {
		t.Errorf("ProjectRoot() = %q", p.ProjectRoot())
	}
}

func TestGlobalConfigPath_EnvOverride(t *testing.T) {
	t.Setenv(GlobalConfigEnvVar, "/tmp/custom.toml")
	if got := GlobalConfigPath(); got != "/tmp/custom.toml" {
		t.Errorf("GlobalConfigPath() = %q, want override", got)
	}
}
