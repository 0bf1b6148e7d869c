package catalog

import (
	"fmt"
	"strings"
)

// Status is the implementation status of a pattern entry.
type Status int

const (
	StatusPlanned Status = iota
	StatusComplete
)

// String returns the definition-file spelling of the status
func (s Status) String() string {
	switch s {
	case StatusPlanned:
		return "planned"
	case StatusComplete:
		return "complete"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusPlanned || s == StatusComplete
}

// ParseStatus resolves "complete" or "planned", case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "complete":
		return StatusComplete, nil
	case "planned":
		return StatusPlanned, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Entry is a single cataloged pattern.
type Entry struct {
	Category  Category
	Name      string
	Status    Status
	Reference string // path or URL; empty when absent
	Summary   string // one-line description; not part of the rendered index
}

// Linked reports whether the entry renders as a link.
// Planned entries are never linked, even when a reference is set.
func (e Entry) Linked() bool {
	return e.Status == StatusComplete && e.Reference != ""
}
