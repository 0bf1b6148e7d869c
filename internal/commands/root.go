package commands

import (
	"fmt"

	"github.com/simonhull/wren"
	"github.com/simonhull/wren/pkg/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the wren CLI
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wren",
		Short: "Catalog of classic software design patterns",
		Long: `Wren keeps an ordered catalog of design patterns grouped into
Creational, Structural and Behavioural categories, and renders it as a
Markdown index.

The catalog comes from a YAML definition (--definition, the "definition"
key in wren.yaml, or WREN_DEFINITION). Without one, the built-in catalog
of Python pattern examples is used.`,
		Version:       wren.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetWriter(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default: ./wren.yaml if present)")
	cmd.PersistentFlags().StringP("definition", "d", "", "Path to catalog definition (default: built-in)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wren v%s\n", wren.Version)
		},
	})

	return cmd
}
