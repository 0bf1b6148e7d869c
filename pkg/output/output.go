// Package output provides styled terminal output for the wren CLI.
//
// Status messages go to a configurable writer (stderr by default) so that
// the rendered index on stdout can be redirected into a file untouched.
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	mu          sync.Mutex
	writer      io.Writer = os.Stderr
	verboseMode bool
)

// SetWriter redirects status output. A nil writer restores stderr.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	writer = w
}

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verboseMode = v
}

func emit(style lipgloss.Style, msg string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(writer, style.Render(msg))
}

// Success prints a success message with a check mark in green.
//
// Example:
//
//	output.Success("Catalog is valid: 21 patterns")
func Success(msg string) {
	emit(successStyle, "✅ "+msg)
}

// Error prints an error message in red.
func Error(msg string) {
	emit(errorStyle, "❌ "+msg)
}

// Warn prints a warning in yellow.
func Warn(msg string) {
	emit(warnStyle, "⚠️  "+msg)
}

// Info prints an informational message in cyan.
func Info(msg string) {
	emit(infoStyle, "ℹ️  "+msg)
}

// Step prints an indented sub-item in gray.
//
// Example:
//
//	output.Step("creational/singleton.py")
func Step(msg string) {
	emit(stepStyle, "   "+msg)
}

// Verbose prints a debug message only if verbose mode is enabled.
func Verbose(msg string) {
	mu.Lock()
	enabled := verboseMode
	mu.Unlock()
	if enabled {
		emit(stepStyle, "🔍 "+msg)
	}
}
