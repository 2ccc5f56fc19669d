package version

import "fmt"

// SchemaVersionError reports a file whose schema marker this build can't read.
type SchemaVersionError struct {
	Kind     string
	Path     string
	Found    string // "missing" when the marker is absent
	Expected string
	Newer    bool // written by a later nids
}

func (e *SchemaVersionError) Error() string {
	switch {
	case e.Newer:
		return fmt.Sprintf("%s schema %s was written by a newer nids, upgrade to read %s", e.Kind, e.Found, e.Path)
	case e.Found == "missing":
		return fmt.Sprintf("%s has no schema version (file: %s)", e.Kind, e.Path)
	default:
		return fmt.Sprintf("%s has invalid schema version: found %s, expected %s (file: %s)",
			e.Kind, e.Found, e.Expected, e.Path)
	}
}
