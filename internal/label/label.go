// Package label renders the text shown next to an object that references
// named IDs: the bound name, and the raw number when the more-numeric-ids
// setting asks for it.
package label

import (
	"fmt"
	"strconv"

	"github.com/amterp/nids/internal/model"
	"github.com/mattn/go-runewidth"
)

const (
	// DefaultWidth is the name label width in terminal cells.
	DefaultWidth = 16

	// Unnamed stands in for an unbound ID inside a paired label.
	Unnamed = "Unnamed"

	ellipsis = "…"
)

// Resolver is the read side of the registry a Formatter needs.
type Resolver interface {
	ResolveName(c model.Category, id int16) (string, error)
	MoreNumericIDs() bool
}

// Label is the rendered pair of strings for one reference.
type Label struct {
	Name   string `json:"name"`
	Number string `json:"number,omitempty"`
}

// Ref points at one ID in a category.
type Ref struct {
	Category model.Category
	ID       int16
}

// Formatter renders labels against a Resolver.
type Formatter struct {
	res   Resolver
	width int
}

// NewFormatter creates a formatter. A width of zero or less uses DefaultWidth.
func NewFormatter(res Resolver, width int) *Formatter {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Formatter{res: res, width: width}
}

// Width returns the name label width in cells.
func (f *Formatter) Width() int {
	return f.width
}

// Name returns the bound name of id, cut to the label width. Unset (zero
// or negative) and unbound IDs give "".
func (f *Formatter) Name(c model.Category, id int16) string {
	if id <= 0 {
		return ""
	}
	name, err := f.res.ResolveName(c, id)
	if err != nil {
		return ""
	}
	return f.truncate(name)
}

// For renders the label of a single reference.
func (f *Formatter) For(c model.Category, id int16) Label {
	l := Label{Name: f.Name(c, id)}
	if id > 0 && f.res.MoreNumericIDs() {
		l.Number = strconv.Itoa(int(id))
	}
	return l
}

// Pair renders the two-line label of an object that targets two IDs,
// such as a collision check between two blocks.
func (f *Formatter) Pair(a, b Ref) Label {
	l := Label{
		Name: fmt.Sprintf("a|%s\nb|%s", f.orUnnamed(a), f.orUnnamed(b)),
	}
	if f.res.MoreNumericIDs() {
		l.Number = fmt.Sprintf("%d/%d", a.ID, b.ID)
	}
	return l
}

func (f *Formatter) orUnnamed(r Ref) string {
	if name := f.Name(r.Category, r.ID); name != "" {
		return name
	}
	return Unnamed
}

func (f *Formatter) truncate(s string) string {
	if runewidth.StringWidth(s) <= f.width {
		return s
	}
	return runewidth.Truncate(s, f.width, ellipsis)
}
