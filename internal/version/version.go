// Package version stamps and checks the schema marker carried by every
// file nids writes.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Bump a version only for changes older builds cannot read, and teach the
// matching store to migrate the previous one.
const (
	CurrentNamedIDsVersion = 1
	CurrentGlobalVersion   = 1
)

// Schema describes one kind of versioned file.
type Schema struct {
	Prefix  string // "named_ids/"
	Kind    string // human name used in errors
	Current int
}

// Schemas of the project data file and the global config.
var (
	NamedIDs = Schema{Prefix: "named_ids/", Kind: "named IDs", Current: CurrentNamedIDsVersion}
	Global   = Schema{Prefix: "global/", Kind: "global config", Current: CurrentGlobalVersion}
)

// Format renders version v, e.g. "named_ids/1".
func (s Schema) Format(v int) string {
	return s.Prefix + strconv.Itoa(v)
}

// String returns the current schema marker.
func (s Schema) String() string {
	return s.Format(s.Current)
}

// Parse extracts the version number from a schema marker.
func (s Schema) Parse(marker string) (int, error) {
	rest, ok := strings.CutPrefix(marker, s.Prefix)
	if !ok {
		return 0, fmt.Errorf("invalid %s schema %q (expected %sN)", s.Kind, marker, s.Prefix)
	}
	v, err := strconv.Atoi(rest)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("invalid %s schema version %q", s.Kind, rest)
	}
	return v, nil
}

// Check returns nil when marker is the current schema and a
// *SchemaVersionError otherwise.
func (s Schema) Check(path, marker string) error {
	if marker == s.String() {
		return nil
	}
	e := &SchemaVersionError{Kind: s.Kind, Path: path, Found: marker, Expected: s.String()}
	if marker == "" {
		e.Found = "missing"
	} else if v, err := s.Parse(marker); err == nil && v > s.Current {
		e.Newer = true
	}
	return e
}

// CurrentNamedIDsSchema returns the marker written into named ID files.
func CurrentNamedIDsSchema() string { return NamedIDs.String() }

// CurrentGlobalSchema returns the marker written into the global config.
func CurrentGlobalSchema() string { return Global.String() }
