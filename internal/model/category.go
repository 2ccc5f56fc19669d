package model

import (
	"fmt"
	"strings"
)

// Category is one of the named ID domains. Each category has its own
// independent name <-> ID mapping.
type Category int

const (
	CategoryGroup Category = iota
	CategoryCollision
	CategoryCounter
	CategoryTimer
	CategoryEffect
	CategoryColor

	// CategoryDynamicCounterTimer is a legacy alias. It is never stored;
	// Normalize routes it to CategoryCounter.
	CategoryDynamicCounterTimer
)

// NumCategories is the number of stored categories.
const NumCategories = 6

// Categories lists the stored categories in their fixed serialization order.
var Categories = [NumCategories]Category{
	CategoryGroup,
	CategoryCollision,
	CategoryCounter,
	CategoryTimer,
	CategoryEffect,
	CategoryColor,
}

var categoryNames = map[Category]string{
	CategoryGroup:               "group",
	CategoryCollision:           "collision",
	CategoryCounter:             "counter",
	CategoryTimer:               "timer",
	CategoryEffect:              "effect",
	CategoryColor:               "color",
	CategoryDynamicCounterTimer: "dynamic",
}

// Normalize maps aliases onto their stored category.
// Panics on a value outside the enumeration.
func (c Category) Normalize() Category {
	switch c {
	case CategoryGroup, CategoryCollision, CategoryCounter,
		CategoryTimer, CategoryEffect, CategoryColor:
		return c
	case CategoryDynamicCounterTimer:
		return CategoryCounter
	default:
		panic(fmt.Sprintf("invalid category value %d", int(c)))
	}
}

// Index returns the position of the normalized category in Categories.
func (c Category) Index() int {
	return int(c.Normalize())
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Title returns the capitalized display name, e.g. "Group".
func (c Category) Title() string {
	s := c.String()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// CategoryNames returns every accepted category argument, aliases included.
func CategoryNames() []string {
	names := make([]string, 0, len(categoryNames))
	for _, c := range Categories {
		names = append(names, c.String())
	}
	return append(names, CategoryDynamicCounterTimer.String())
}

// ParseCategory parses a category name. Matching is case-insensitive.
// The result is not normalized, so "dynamic" yields the alias.
func ParseCategory(s string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for c, name := range categoryNames {
		if name == needle {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q (expected one of: %s)", s, strings.Join(CategoryNames(), ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
