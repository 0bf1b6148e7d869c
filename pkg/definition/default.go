package definition

import (
	_ "embed"
	"fmt"
)

//go:embed default.yml
var defaultYAML []byte

// DefaultSource names the built-in definition in logs and messages.
const DefaultSource = "<built-in>"

// Default returns the built-in definition: the Python pattern examples
// grouped by category.
func Default() (*Definition, error) {
	def, err := ParseBytes(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in definition: %w", err)
	}
	return def, nil
}
