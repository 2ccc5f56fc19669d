package model

// IDs are signed 16-bit values. Only positive IDs can carry a name.
const (
	MinID = 1
	MaxID = 32767

	// MaxStandardID is the normal editor cap. IDs above it are only
	// offered when the more-numeric-ids setting is enabled.
	MaxStandardID = 9999
)

// NamedID is a single name binding within a category.
type NamedID struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	ID       int16    `json:"id"`
}

// MaxAllowedID returns the highest ID the editor should offer.
func MaxAllowedID(moreNumericIDs bool) int {
	if moreNumericIDs {
		return MaxID
	}
	return MaxStandardID
}
