package commands

import (
	"fmt"

	"github.com/simonhull/wren/pkg/output"
	"github.com/spf13/cobra"
)

// StatusCmd creates and returns the 'status' command
func StatusCmd() *cobra.Command {
	var failUnder float64

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show how much of the catalog is complete",
		Long: `Count complete and planned patterns per category.

With --fail-under the command exits non-zero when the overall completion
percentage is below the given value, which is handy in CI.

Example:
  wren status
  wren status -d roadmap.yml --fail-under 80`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if failUnder < 0 || failUnder > 100 {
				return fmt.Errorf("--fail-under must be between 0 and 100, got %g", failUnder)
			}

			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			cat, err := s.loadCatalog()
			if err != nil {
				return err
			}

			report := cat.Completeness()
			fmt.Fprintln(cmd.OutOrStdout(), output.CompletenessTable(report))

			done := report.Overall().Ratio() * 100
			if failUnder > 0 && done < failUnder {
				return fmt.Errorf("catalog is %.1f%% complete, below %.1f%%", done, failUnder)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&failUnder, "fail-under", 0, "Fail when overall completion is below this percentage")

	return cmd
}
