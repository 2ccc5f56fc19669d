package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amterp/nids/internal/model"
	"github.com/amterp/nids/internal/util"
)

// ValidateName rejects names the registry would refuse.
func ValidateName(s string) error {
	return util.SanitizeName(util.NormalizeName(s))
}

// ParseID parses s as an ID in the range 1..maxID.
func ParseID(s string, maxID int) (int16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("ID is required")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("ID must be a number")
	}
	if maxID > model.MaxID {
		maxID = model.MaxID
	}
	if n < model.MinID || n > maxID {
		return 0, fmt.Errorf("ID must be between %d and %d", model.MinID, maxID)
	}
	return int16(n), nil
}

// IDValidator returns an input validator for ParseID.
func IDValidator(maxID int) func(string) error {
	return func(s string) error {
		_, err := ParseID(s, maxID)
		return err
	}
}
