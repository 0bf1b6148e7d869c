package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when registering an entry without a name.
	ErrEmptyName = errors.New("pattern name cannot be empty")

	// ErrInvalidStatus is returned for a status outside complete/planned.
	ErrInvalidStatus = errors.New("invalid pattern status")

	// ErrInvalidName is returned for a name containing control characters,
	// line breaks included.
	ErrInvalidName = errors.New("pattern name contains control characters")

	// ErrInvalidReference is returned for a reference containing control
	// characters.
	ErrInvalidReference = errors.New("pattern reference contains control characters")
)

// DuplicateNameError reports a name registered twice in the same category.
type DuplicateNameError struct {
	Category Category
	Name     string
}

// Error returns a formatted error message
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("pattern %q already registered in category %s", e.Name, e.Category)
}

// UnknownCategoryError reports a category outside the fixed set. Name holds
// the rejected spelling when the category came from text.
type UnknownCategoryError struct {
	Name     string
	Category Category
}

// Error returns a formatted error message
func (e *UnknownCategoryError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown category %q (want creational, structural or behavioural)", e.Name)
	}
	return fmt.Sprintf("unknown category %s", e.Category)
}
