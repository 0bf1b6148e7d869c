package commands

import (
	"fmt"
	"os"

	"github.com/simonhull/wren/pkg/definition"
	"github.com/simonhull/wren/pkg/logger"
	"github.com/simonhull/wren/pkg/output"
	"github.com/spf13/cobra"
)

// ScanCmd creates and returns the 'scan' command
func ScanCmd() *cobra.Command {
	var outPath, name string
	var extensions []string

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Generate a definition from a directory of pattern scripts",
		Long: `Walk a directory laid out as <category>/<pattern file> and emit a
catalog definition. Pattern names come from each script's docstring title
("The Facade Pattern" → Facade) or from the file name. Directories that are
not a category name are skipped.

Example:
  wren scan ./patterns > patterns.yml
  wren scan ./patterns -o patterns.yml --ext .py --ext .go`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if len(extensions) == 0 {
				extensions = s.cfg.Scan.Extensions
			}

			def, err := definition.Scan(args[0], definition.ScanOptions{
				Name:       name,
				Extensions: extensions,
				Logger:     s.log,
			})
			if err != nil {
				return err
			}

			// A scan can still collide, e.g. two files with the same title.
			if _, err := def.Build(); err != nil {
				output.Warn(fmt.Sprintf("scanned definition will not build: %v", err))
			}

			data, err := def.Marshal()
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("writing definition: %w", err)
			}
			s.log.Info("definition written", logger.F("file", outPath), logger.F("patterns", def.PatternCount()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the definition to a file instead of stdout")
	cmd.Flags().StringVar(&name, "name", "", "Definition name (default: directory name)")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "File extensions to include (default from config: .py)")

	return cmd
}
