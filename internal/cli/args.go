package cli

import (
	"strconv"
	"strings"

	"github.com/amterp/nids/internal/model"
	"github.com/amterp/nids/internal/util"
)

// target is a command argument that names a binding either by name or by ID.
type target struct {
	Name string
	ID   int16
	IsID bool
}

// parseTarget reads arg as an ID when it is a whole number that fits in
// 16 bits, otherwise as a name. forceName skips the ID reading, for names
// that look like numbers.
func parseTarget(arg string, forceName bool) target {
	trimmed := strings.TrimSpace(arg)
	if !forceName {
		if n, err := strconv.ParseInt(trimmed, 10, 16); err == nil {
			return target{ID: int16(n), IsID: true}
		}
	}
	return target{Name: util.NormalizeName(arg)}
}

// parseCategoryArg parses a category argument, keeping the alias so
// messages echo what the user typed.
func parseCategoryArg(arg string) model.Category {
	c, err := model.ParseCategory(arg)
	if err != nil {
		Fatal(err)
	}
	return c
}
