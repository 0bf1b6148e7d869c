package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/simonhull/wren/internal/watch"
	"github.com/simonhull/wren/pkg/logger"
	"github.com/simonhull/wren/pkg/output"
	"github.com/spf13/cobra"
)

// RenderCmd creates and returns the 'render' command
func RenderCmd() *cobra.Command {
	var outPath string
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the catalog as a Markdown index",
		Long: `Render the catalog as a nested Markdown list: one bold bullet per
category (Creational, Structural, Behavioural, always in that order) and one
bullet per pattern in definition order. Complete patterns with a reference
are rendered as links; planned patterns never are.

Example:
  wren render
  wren render -d patterns.yml -o INDEX.md
  wren render -d patterns.yml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			if err := renderOnce(s, cmd.OutOrStdout(), outPath); err != nil {
				return err
			}
			if !watchMode {
				return nil
			}

			if s.definition == "" {
				return errors.New("--watch needs a definition file (use --definition)")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := watch.New(s.definition, s.cfg.Watch.Debounce, func(context.Context) error {
				return renderOnce(s, cmd.OutOrStdout(), outPath)
			}, s.log)
			if err != nil {
				return err
			}
			return w.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the index to a file instead of stdout")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-render whenever the definition file changes")

	return cmd
}

// renderOnce builds a fresh catalog and writes its index. On failure
// nothing is written, so a previous good index stays in place.
func renderOnce(s *settings, stdout io.Writer, outPath string) error {
	cat, err := s.loadCatalog()
	if err != nil {
		return err
	}
	index := cat.Render()

	if outPath == "" {
		_, err := io.WriteString(stdout, index)
		return err
	}

	if err := os.WriteFile(outPath, []byte(index), 0644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	s.log.Info("index written", logger.F("file", outPath), logger.F("patterns", cat.Len()))
	output.Verbose(fmt.Sprintf("Rendered %d patterns from %s", cat.Len(), s.source()))
	return nil
}
