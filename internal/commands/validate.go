package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/simonhull/wren/pkg/catalog"
	"github.com/simonhull/wren/pkg/logger"
	"github.com/simonhull/wren/pkg/output"
	"github.com/spf13/cobra"
)

// ValidateCmd creates and returns the 'validate' command
func ValidateCmd() *cobra.Command {
	var checkRefs bool
	var root string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the definition builds a valid catalog",
		Long: `Parse the definition and populate the catalog without rendering it.
Fails on syntax errors, unknown fields, unknown categories, invalid statuses
and names registered twice in one category.

With --check-refs, the references of complete patterns are also checked
against the local filesystem. URLs are not fetched.

Example:
  wren validate -d patterns.yml
  wren validate -d patterns.yml --check-refs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			cat, err := s.loadCatalog()
			if err != nil {
				return err
			}

			if checkRefs {
				if root == "" {
					root = s.baseDir()
				}
				missing := missingReferences(cat, root)
				for _, e := range missing {
					output.Step(fmt.Sprintf("%s/%s → %s", e.Category, e.Name, e.Reference))
				}
				if len(missing) > 0 {
					return fmt.Errorf("%d missing reference(s) under %s", len(missing), root)
				}
				s.log.Debug("references checked", logger.F("root", root))
			}

			output.Success(fmt.Sprintf("%s is valid: %d patterns", s.source(), cat.Len()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkRefs, "check-refs", false, "Check that local references exist")
	cmd.Flags().StringVar(&root, "root", "", "Directory references are relative to (default: the definition's directory)")

	return cmd
}

// missingReferences returns complete entries whose local reference does not
// exist under root. URLs are skipped.
func missingReferences(cat *catalog.Catalog, root string) []catalog.Entry {
	var missing []catalog.Entry
	for _, e := range cat.Entries() {
		if !e.Linked() || strings.Contains(e.Reference, "://") {
			continue
		}
		path := e.Reference
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, filepath.FromSlash(path))
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			missing = append(missing, e)
		}
	}
	return missing
}
