package model

// NamedIDFile represents the persisted named ID data for a project.
// Stored at .nids/named_ids.toml
// Schema changes require a version bump, see internal/version/version.go.
type NamedIDFile struct {
	NidsSchema string `toml:"nids_schema"`
	ID         string `toml:"id"`
	Name       string `toml:"name,omitempty"`

	// Data is the registry export string: six `|`-joined category segments.
	Data string `toml:"data"`
}
