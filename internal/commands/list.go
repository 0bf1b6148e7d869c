package commands

import (
	"fmt"
	"io"

	"github.com/simonhull/wren/pkg/catalog"
	"github.com/spf13/cobra"
)

// ListCmd creates and returns the 'list' command
func ListCmd() *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "list [category]",
		Short: "List patterns, optionally for one category",
		Long: `List the patterns of every category, or of one category, in
registration order.

Example:
  wren list
  wren list structural --summary`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := catalog.Categories()
			if len(args) == 1 {
				c, err := catalog.ParseCategory(args[0])
				if err != nil {
					return err
				}
				categories = []catalog.Category{c}
			}

			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			cat, err := s.loadCatalog()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range categories {
				printCategory(out, c, cat.List(c), summary)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "Show each pattern's summary")

	return cmd
}

func printCategory(out io.Writer, c catalog.Category, entries []catalog.Entry, summary bool) {
	fmt.Fprintf(out, "%s (%d)\n", c, len(entries))
	if len(entries) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}

	for _, e := range entries {
		mark := "✓"
		if e.Status == catalog.StatusPlanned {
			mark = "○"
		}

		line := fmt.Sprintf("  %s %s", mark, e.Name)
		if e.Status == catalog.StatusPlanned {
			line += " (planned)"
		} else if e.Reference != "" {
			line += "  " + e.Reference
		}
		fmt.Fprintln(out, line)

		if summary && e.Summary != "" {
			fmt.Fprintf(out, "      %s\n", e.Summary)
		}
	}
}
