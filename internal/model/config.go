package model

// GlobalConfig represents the user's global nids configuration.
// Stored at ~/.config/nids/config.toml
// Schema changes require a version bump, see internal/version/version.go.
type GlobalConfig struct {
	NidsSchema     string `toml:"nids_schema"`
	MoreNumericIDs bool   `toml:"more_numeric_ids,omitempty"`
	LabelWidth     int    `toml:"label_width,omitempty"` // Display cells for name labels, 0 = default
}

// Bool returns the boolean setting stored under key.
// Unknown keys read as false.
func (g *GlobalConfig) Bool(key string) bool {
	if g == nil {
		return false
	}
	switch key {
	case SettingMoreNumericIDs:
		return g.MoreNumericIDs
	default:
		return false
	}
}

// SettingMoreNumericIDs is the key of the "allow IDs above the normal cap" flag.
const SettingMoreNumericIDs = "more-numeric-ids"
