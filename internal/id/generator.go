// Package id mints the identifiers stamped into named ID files.
package id

import (
	"strings"
	"time"

	fid "github.com/amterp/flexid"
)

// ProjectPrefix marks a project ID so it can't be mistaken for a numeric
// named ID in logs or JSON output.
const ProjectPrefix = "p_"

var projects *fid.Generator

func init() {
	// IDs sort by creation time from this epoch
	epoch := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	config := fid.NewConfig().
		WithEpoch(epoch).
		WithTickSize(10 * time.Millisecond).
		WithNumRandomChars(3)

	projects = fid.MustNewGenerator(config)
}

// Generate returns a new unique project ID.
func Generate() string {
	return ProjectPrefix + projects.MustGenerate()
}

// IsProjectID reports whether s looks like a Generate result.
func IsProjectID(s string) bool {
	return strings.HasPrefix(s, ProjectPrefix) && len(s) > len(ProjectPrefix)
}
