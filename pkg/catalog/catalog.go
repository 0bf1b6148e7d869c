package catalog

import "strings"

// Catalog is an immutable collection of pattern entries grouped by category.
// It is safe for concurrent reads.
type Catalog struct {
	entries [numCategories][]Entry
}

// List returns the entries of a category in registration order. An unknown
// or empty category yields an empty slice.
func (c *Catalog) List(category Category) []Entry {
	if !category.Valid() {
		return []Entry{}
	}
	out := make([]Entry, len(c.entries[category]))
	copy(out, c.entries[category])
	return out
}

// Lookup finds an entry by category and name. The name is trimmed the same
// way Register trims it.
func (c *Catalog) Lookup(category Category, name string) (Entry, bool) {
	if !category.Valid() {
		return Entry{}, false
	}
	name = strings.TrimSpace(name)
	for _, e := range c.entries[category] {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Len returns the number of entries across all categories.
func (c *Catalog) Len() int {
	n := 0
	for _, entries := range c.entries {
		n += len(entries)
	}
	return n
}

// Entries returns every entry, categories in display order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, c.Len())
	for _, category := range Categories() {
		out = append(out, c.entries[category]...)
	}
	return out
}
