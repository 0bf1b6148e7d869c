package definition

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/simonhull/wren/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	def, err := Parse(filepath.Join("testdata", "valid.yml"))
	require.NoError(t, err)

	assert.Equal(t, "v1", def.APIVersion)
	assert.Equal(t, "Catalog", def.Kind)
	assert.Equal(t, "scenario", def.Name)
	require.Len(t, def.Spec.Categories, 2)
	assert.Equal(t, 3, def.PatternCount())

	singleton := def.Spec.Categories[1].Patterns[0]
	assert.Equal(t, "Singleton", singleton.Name)
	assert.Equal(t, "singleton.py", singleton.Ref)
	assert.Equal(t, "One instance only.", singleton.Summary)
}

func TestBuildValid(t *testing.T) {
	def, err := Parse(filepath.Join("testdata", "valid.yml"))
	require.NoError(t, err)

	cat, err := def.Build()
	require.NoError(t, err)

	want := `- **Creational**
  - [Singleton](singleton.py)
  - Builder
- **Structural**
  - Facade
- **Behavioural**
`
	assert.Equal(t, want, cat.Render())

	e, ok := cat.Lookup(catalog.Creational, "Singleton")
	require.True(t, ok)
	assert.Equal(t, "One instance only.", e.Summary)
	assert.Equal(t, catalog.Progress{Complete: 1, Planned: 1}, cat.Completeness()[catalog.Creational])
}

func TestBuildDuplicate(t *testing.T) {
	def, err := Parse(filepath.Join("testdata", "duplicate.yml"))
	require.NoError(t, err)

	cat, err := def.Build()
	assert.Nil(t, cat)

	var dup *catalog.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Observer", dup.Name)
	assert.Equal(t, catalog.Behavioural, dup.Category)
	assert.Contains(t, err.Error(), "line 12")
}

func TestBuildUnknownCategory(t *testing.T) {
	def, err := Parse(filepath.Join("testdata", "unknown_category.yml"))
	require.NoError(t, err)

	cat, err := def.Build()
	assert.Nil(t, cat)

	var unknown *catalog.UnknownCategoryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "concurrency", unknown.Name)
	assert.Contains(t, err.Error(), "line 9")
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse(filepath.Join("testdata", "invalid.yml"))
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 4)

	assert.Equal(t, "apiVersion", verrs[0].Field)
	assert.Equal(t, 1, verrs[0].Line)
	assert.Equal(t, "kind", verrs[1].Field)
	assert.Equal(t, "spec.categories[0].patterns[0].status", verrs[2].Field)
	assert.Equal(t, 9, verrs[2].Line)
	assert.Equal(t, "spec.categories[0].patterns[1].name", verrs[3].Field)
	assert.Equal(t, 10, verrs[3].Line)

	assert.Contains(t, err.Error(), "found 4 validation errors")
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse(filepath.Join("testdata", "unknown_field.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown/misspelled")
}

func TestParseBytes_RejectsTrailingDocument(t *testing.T) {
	_, err := ParseBytes([]byte("apiVersion: v1\nkind: Catalog\n---\nbogus: 1\n"))
	require.ErrorIs(t, err, ErrMultipleDocuments)

	_, err = ParseBytes([]byte("apiVersion: v1\nkind: Catalog\n---\n[unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")

	def, err := ParseBytes([]byte("---\napiVersion: v1\nkind: Catalog\nname: leading-marker\n"))
	require.NoError(t, err)
	assert.Equal(t, "leading-marker", def.Name)
}

func TestBuild_RejectsMultilineName(t *testing.T) {
	def, err := ParseBytes([]byte(`
apiVersion: v1
kind: Catalog
name: forged
spec:
  categories:
    - category: creational
      patterns:
        - name: "Single\n- **Structural**"
          ref: s.py
`))
	require.NoError(t, err)

	cat, err := def.Build()
	assert.Nil(t, cat)
	require.ErrorIs(t, err, catalog.ErrInvalidName)
	assert.True(t, catalog.IsRegistrationError(err))
	assert.Contains(t, err.Error(), "line 9")
}

func TestBuild_LinkSyntaxInNameAndRef(t *testing.T) {
	def, err := ParseBytes([]byte(`
apiVersion: v1
kind: Catalog
name: brackets
spec:
  categories:
    - category: creational
      patterns:
        - name: "A]B"
          ref: "x y).py"
`))
	require.NoError(t, err)

	cat, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, "- **Creational**\n  - [A\\]B](<x y).py>)\n- **Structural**\n- **Behavioural**\n", cat.Render())
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join("testdata", "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read definition file")
}

func TestParseBytes_Empty(t *testing.T) {
	def, err := ParseBytes([]byte("apiVersion: v1\nkind: Catalog\nname: empty\n"))
	require.NoError(t, err)

	cat, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())
	assert.Equal(t, "- **Creational**\n- **Structural**\n- **Behavioural**\n", cat.Render())
}

func TestParseBytes_StatusDefaultsToComplete(t *testing.T) {
	def, err := ParseBytes([]byte(`
apiVersion: v1
kind: Catalog
name: defaults
spec:
  categories:
    - category: Behavioral
      patterns:
        - name: Strategy
          ref: strategy.py
`))
	require.NoError(t, err)

	cat, err := def.Build()
	require.NoError(t, err)
	assert.Contains(t, cat.Render(), "[Strategy](strategy.py)")
}

func TestBuild_WithoutLineInfo(t *testing.T) {
	def := &Definition{
		APIVersion: APIVersion,
		Kind:       Kind,
		Spec: Spec{Categories: []CategoryBlock{
			{Category: "structural", Patterns: []Pattern{{Name: "Proxy"}, {Name: "Proxy"}}},
		}},
	}

	_, err := def.Build()
	var dup *catalog.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.NotContains(t, err.Error(), "line")
}

func TestMarshalRoundTrip(t *testing.T) {
	def, err := Parse(filepath.Join("testdata", "valid.yml"))
	require.NoError(t, err)

	data, err := def.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  categories:\n")

	again, err := ParseBytes(data)
	require.NoError(t, err)
	assert.Equal(t, def.Spec, again.Spec)
}

func TestValidationError_Error(t *testing.T) {
	e := &ValidationError{Field: "kind", Message: "invalid kind 'X'", Suggestion: "use 'Catalog'", Line: 2}
	assert.Equal(t, "validation error at kind (line 2): invalid kind 'X'. Suggestion: use 'Catalog'", e.Error())

	e = &ValidationError{Field: "kind", Message: "kind is required"}
	assert.Equal(t, "validation error at kind: kind is required", e.Error())
}
