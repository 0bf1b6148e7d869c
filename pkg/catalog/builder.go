package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Builder populates a Catalog. The zero value is ready to use. It is not
// safe for concurrent use.
type Builder struct {
	entries [numCategories][]Entry
	names   [numCategories]map[string]struct{}
	err     error
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Register appends a pattern to the end of its category.
//
// Surrounding whitespace is trimmed from name before it is stored, so
// "Facade " and "Facade" are the same pattern. Names and references may not
// contain control characters.
//
// The first failed registration poisons the builder: Build will return
// that error.
func (b *Builder) Register(category Category, name string, status Status, reference string) error {
	return b.Add(Entry{
		Category:  category,
		Name:      name,
		Status:    status,
		Reference: reference,
	})
}

// Add registers a fully populated entry. See Register.
func (b *Builder) Add(e Entry) error {
	if err := b.add(e); err != nil {
		if b.err == nil {
			b.err = err
		}
		return err
	}
	return nil
}

func (b *Builder) add(e Entry) error {
	if !e.Category.Valid() {
		return &UnknownCategoryError{Category: e.Category}
	}
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return fmt.Errorf("%w (category %s)", ErrEmptyName, e.Category)
	}
	if strings.ContainsFunc(e.Name, unicode.IsControl) {
		return fmt.Errorf("%w: %q", ErrInvalidName, e.Name)
	}
	if strings.ContainsFunc(e.Reference, unicode.IsControl) {
		return fmt.Errorf("%w: %q for %q", ErrInvalidReference, e.Reference, e.Name)
	}
	if !e.Status.Valid() {
		return fmt.Errorf("%w: %s for %q", ErrInvalidStatus, e.Status, e.Name)
	}

	if b.names[e.Category] == nil {
		b.names[e.Category] = make(map[string]struct{})
	}
	names := b.names[e.Category]
	if _, exists := names[e.Name]; exists {
		return &DuplicateNameError{Category: e.Category, Name: e.Name}
	}
	names[e.Name] = struct{}{}
	b.entries[e.Category] = append(b.entries[e.Category], e)
	return nil
}

// Err returns the first registration error, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the populated catalog. If any registration failed, Build
// returns that error and a nil catalog.
func (b *Builder) Build() (*Catalog, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building catalog: %w", b.err)
	}

	c := &Catalog{}
	for i, entries := range b.entries {
		c.entries[i] = append([]Entry(nil), entries...)
	}
	return c, nil
}

// New builds a catalog from entries in order. It stops at the first
// registration error.
func New(entries ...Entry) (*Catalog, error) {
	b := NewBuilder()
	for _, e := range entries {
		if err := b.Add(e); err != nil {
			return nil, fmt.Errorf("building catalog: %w", err)
		}
	}
	return b.Build()
}

// IsRegistrationError reports whether err came from a rejected registration.
func IsRegistrationError(err error) bool {
	var dup *DuplicateNameError
	var unknown *UnknownCategoryError
	return errors.As(err, &dup) ||
		errors.As(err, &unknown) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrInvalidStatus)
}
