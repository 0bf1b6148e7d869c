package catalog

import (
	"strings"
	"unicode"
)

// Render returns the Markdown index of the catalog.
//
// Each category is a top-level bullet with a bold name, always in the order
// Creational, Structural, Behavioural; each entry is a nested bullet in
// registration order. An empty catalog renders the three headers only.
func (c *Catalog) Render() string {
	var sb strings.Builder
	for _, category := range Categories() {
		sb.WriteString("- **")
		sb.WriteString(category.String())
		sb.WriteString("**\n")

		for _, e := range c.entries[category] {
			sb.WriteString("  - ")
			sb.WriteString(renderEntry(e))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func renderEntry(e Entry) string {
	name := escapeName(e.Name)
	if !e.Linked() {
		return name
	}
	return "[" + name + "](" + linkDestination(e.Reference) + ")"
}

// inlineSpecial holds the characters that could start emphasis, code, a
// link, raw HTML or an entity inside a name.
const inlineSpecial = "\\`*_[]<>&!"

// escapeName backslash-escapes Markdown syntax in a name so it always reads
// as plain text on its own bullet.
func escapeName(name string) string {
	var sb strings.Builder
	for i, r := range name {
		switch {
		case strings.ContainsRune(inlineSpecial, r):
			sb.WriteByte('\\')
		case i == 0 && strings.ContainsRune("-+#=~|", r):
			sb.WriteByte('\\')
		case (r == '.' || r == ')') && isDigits(name[:i]):
			// "1." or "1)" would open an ordered list.
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// linkDestination returns ref as a link destination. References with
// spaces, parentheses, angle brackets or backslashes are wrapped in angle
// brackets.
func linkDestination(ref string) string {
	if !strings.ContainsFunc(ref, needsAngle) {
		return ref
	}
	var sb strings.Builder
	sb.WriteByte('<')
	for _, r := range ref {
		if r == '<' || r == '>' || r == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('>')
	return sb.String()
}

func needsAngle(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune("()<>\\", r)
}
