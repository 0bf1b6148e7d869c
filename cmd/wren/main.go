package main

import (
	"os"

	"github.com/simonhull/wren/internal/commands"
	"github.com/simonhull/wren/pkg/output"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.RenderCmd())
	rootCmd.AddCommand(commands.ListCmd())
	rootCmd.AddCommand(commands.StatusCmd())
	rootCmd.AddCommand(commands.ValidateCmd())
	rootCmd.AddCommand(commands.ScanCmd())

	if err := rootCmd.Execute(); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
