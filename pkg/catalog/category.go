package catalog

import (
	"fmt"
	"strings"
)

// Category is one of the fixed pattern groupings.
type Category int

const (
	Creational Category = iota
	Structural
	Behavioural
)

// numCategories is the size of the closed category set.
const numCategories = 3

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{Creational, Structural, Behavioural}
}

// String returns the display name of the category
func (c Category) String() string {
	switch c {
	case Creational:
		return "Creational"
	case Structural:
		return "Structural"
	case Behavioural:
		return "Behavioural"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	return c >= Creational && c <= Behavioural
}

// Slug returns the lowercase identifier used in definition files and
// directory names.
func (c Category) Slug() string {
	return strings.ToLower(c.String())
}

// ParseCategory resolves a category name case-insensitively. The US spelling
// "behavioral" is accepted as an alias.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "creational":
		return Creational, nil
	case "structural":
		return Structural, nil
	case "behavioural", "behavioral":
		return Behavioural, nil
	default:
		return 0, &UnknownCategoryError{Name: name}
	}
}
