// Package definition loads the static catalog definition that wren builds
// its pattern catalog from.
//
// # File Format
//
// Definitions use the apiVersion/kind/name/spec schema layout:
//
//	apiVersion: v1
//	kind: Catalog
//	name: python-patterns
//	spec:
//	  categories:
//	    - category: creational
//	      patterns:
//	        - name: Singleton
//	          status: complete
//	          ref: creational/singleton.py
//	        - name: Builder
//	          status: planned
//
// Patterns are registered in document order. status defaults to complete.
//
// # Loading
//
//	def, err := definition.Parse("patterns.yml")
//	if err != nil {
//	    return err // syntax or ValidationErrors, with line numbers
//	}
//	cat, err := def.Build() // *catalog.DuplicateNameError, *catalog.UnknownCategoryError
//
// Default returns the built-in definition. Scan derives a definition from a
// directory of pattern scripts laid out as <category>/<file>.
package definition
