package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/simonhull/wren/pkg/catalog"
	"gopkg.in/yaml.v3"
)

const (
	// APIVersion is the only supported definition version.
	APIVersion = "v1"
	// Kind is the expected kind of a catalog definition.
	Kind = "Catalog"
)

// ErrMultipleDocuments is returned when a definition file holds more than
// one YAML document.
var ErrMultipleDocuments = errors.New("definition must be a single YAML document")

// Definition represents a parsed catalog definition file
type Definition struct {
	APIVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
	Name       string `yaml:"name"`
	Spec       Spec   `yaml:"spec"`

	// lines maps dotted YAML paths (spec.categories.0.patterns.1.name) to
	// source lines. Nil for definitions not read from YAML.
	lines map[string]int
}

// Spec lists category blocks in registration order.
type Spec struct {
	Categories []CategoryBlock `yaml:"categories"`
}

// CategoryBlock groups patterns under a category name. A category may
// appear in more than one block; its patterns are appended in order.
type CategoryBlock struct {
	Category string    `yaml:"category"`
	Patterns []Pattern `yaml:"patterns"`
}

// Pattern is one catalog entry as written in the definition.
type Pattern struct {
	Name    string `yaml:"name"`
	Status  string `yaml:"status,omitempty"`
	Ref     string `yaml:"ref,omitempty"`
	Summary string `yaml:"summary,omitempty"`
}

// ValidationError represents a definition validation error with context
type ValidationError struct {
	Field      string // Field path (e.g., "spec.categories[0].patterns[2].status")
	Message    string
	Suggestion string
	Line       int // Line number in YAML (0 if unknown)
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	var msg string
	if e.Line > 0 {
		msg = fmt.Sprintf("validation error at %s (line %d): %s", e.Field, e.Line, e.Message)
	} else {
		msg = fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "found %d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&buf, "  %d. %s\n", i+1, err.Error())
	}
	return buf.String()
}

// Parse reads and validates a definition file
func Parse(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes reads and validates a definition from bytes
func ParseBytes(data []byte) (*Definition, error) {
	// First pass: node API for line numbers
	var root yaml.Node
	nodes := yaml.NewDecoder(bytes.NewReader(data))
	if err := nodes.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	var extra yaml.Node
	switch err := nodes.Decode(&extra); {
	case err == nil:
		return nil, fmt.Errorf("failed to parse YAML: %w (another document starts at line %d)", ErrMultipleDocuments, extra.Line)
	case !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	lines := make(map[string]int)
	extractLineNumbers(&root, "", lines)

	// Second pass: strict decode so misspelled keys are caught
	var def Definition
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to parse definition (check for unknown/misspelled fields): %w", err)
	}
	def.lines = lines

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the document structure. Category names and duplicate
// pattern names are left to Build, which reports them as catalog errors.
func (d *Definition) Validate() error {
	var errs ValidationErrors

	if d.APIVersion == "" {
		errs = append(errs, ValidationError{
			Field:   "apiVersion",
			Message: "apiVersion is required",
			Line:    d.line("apiVersion"),
		})
	} else if d.APIVersion != APIVersion {
		errs = append(errs, ValidationError{
			Field:      "apiVersion",
			Message:    fmt.Sprintf("invalid apiVersion '%s'", d.APIVersion),
			Suggestion: "use 'v1'",
			Line:       d.line("apiVersion"),
		})
	}

	if d.Kind == "" {
		errs = append(errs, ValidationError{
			Field:   "kind",
			Message: "kind is required",
			Line:    d.line("kind"),
		})
	} else if d.Kind != Kind {
		errs = append(errs, ValidationError{
			Field:      "kind",
			Message:    fmt.Sprintf("invalid kind '%s'", d.Kind),
			Suggestion: "use 'Catalog'",
			Line:       d.line("kind"),
		})
	}

	for i, block := range d.Spec.Categories {
		if strings.TrimSpace(block.Category) == "" {
			errs = append(errs, ValidationError{
				Field:      fmt.Sprintf("spec.categories[%d].category", i),
				Message:    "category is required",
				Suggestion: "use creational, structural or behavioural",
				Line:       d.line(fmt.Sprintf("spec.categories.%d", i)),
			})
		}

		for j, p := range block.Patterns {
			path := fmt.Sprintf("spec.categories.%d.patterns.%d", i, j)
			field := fmt.Sprintf("spec.categories[%d].patterns[%d]", i, j)

			if strings.TrimSpace(p.Name) == "" {
				errs = append(errs, ValidationError{
					Field:   field + ".name",
					Message: "pattern name is required",
					Line:    d.line(path),
				})
			}
			if p.Status != "" {
				if _, err := catalog.ParseStatus(p.Status); err != nil {
					errs = append(errs, ValidationError{
						Field:      field + ".status",
						Message:    fmt.Sprintf("invalid status '%s'", p.Status),
						Suggestion: "use 'complete' or 'planned'",
						Line:       d.line(path + ".status"),
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Build registers every pattern in document order and returns the
// resulting catalog. The first registration failure aborts the build; the
// returned error wraps the catalog error so errors.As still matches it.
func (d *Definition) Build() (*catalog.Catalog, error) {
	b := catalog.NewBuilder()

	for i, block := range d.Spec.Categories {
		category, err := catalog.ParseCategory(block.Category)
		if err != nil {
			return nil, d.wrap(fmt.Sprintf("spec.categories.%d.category", i), err)
		}

		for j, p := range block.Patterns {
			status := catalog.StatusComplete
			if p.Status != "" {
				if status, err = catalog.ParseStatus(p.Status); err != nil {
					return nil, d.wrap(fmt.Sprintf("spec.categories.%d.patterns.%d.status", i, j), err)
				}
			}

			err := b.Add(catalog.Entry{
				Category:  category,
				Name:      p.Name,
				Status:    status,
				Reference: strings.TrimSpace(p.Ref),
				Summary:   strings.TrimSpace(p.Summary),
			})
			if err != nil {
				return nil, d.wrap(fmt.Sprintf("spec.categories.%d.patterns.%d.name", i, j), err)
			}
		}
	}

	return b.Build()
}

// Marshal encodes the definition as YAML with two-space indentation.
func (d *Definition) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to marshal definition: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal definition: %w", err)
	}
	return buf.Bytes(), nil
}

// PatternCount returns the number of patterns across all blocks.
func (d *Definition) PatternCount() int {
	n := 0
	for _, block := range d.Spec.Categories {
		n += len(block.Patterns)
	}
	return n
}

func (d *Definition) wrap(path string, err error) error {
	if line := d.line(path); line > 0 {
		return fmt.Errorf("line %d: %w", line, err)
	}
	return err
}

func (d *Definition) line(path string) int {
	if d.lines == nil {
		return 0
	}
	return d.lines[path]
}

// extractLineNumbers records the source line of every node under its
// dotted path. Sequence items use their index as the path segment.
func extractLineNumbers(node *yaml.Node, path string, lines map[string]int) {
	if node == nil {
		return
	}
	if path != "" {
		lines[path] = node.Line
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) > 0 {
			extractLineNumbers(node.Content[0], path, lines)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			next := key
			if path != "" {
				next = path + "." + key
			}
			extractLineNumbers(node.Content[i+1], next, lines)
		}
	case yaml.SequenceNode:
		for i, child := range node.Content {
			extractLineNumbers(child, fmt.Sprintf("%s.%d", path, i), lines)
		}
	}
}
