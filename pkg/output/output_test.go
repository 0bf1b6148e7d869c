package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/simonhull/wren/pkg/catalog"
)

// capture redirects status output for the duration of f.
func capture(f func()) string {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)
	f()
	return buf.String()
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name   string
		print  func(string)
		marker string
	}{
		{"success", Success, "✅"},
		{"error", Error, "❌"},
		{"warn", Warn, "⚠️"},
		{"info", Info, "ℹ️"},
		{"step", Step, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := capture(func() { tt.print("catalog message") })

			if !strings.Contains(out, tt.marker) {
				t.Errorf("%s output should contain %q, got %q", tt.name, tt.marker, out)
			}
			if !strings.Contains(out, "catalog message") {
				t.Errorf("%s output should contain the message, got %q", tt.name, out)
			}
		})
	}
}

func TestVerbose(t *testing.T) {
	out := capture(func() { Verbose("Debug message") })
	if out != "" {
		t.Error("Verbose output should be empty when verbose mode is off")
	}

	SetVerbose(true)
	defer SetVerbose(false)

	out = capture(func() { Verbose("Debug message") })
	if !strings.Contains(out, "🔍") || !strings.Contains(out, "Debug message") {
		t.Errorf("Verbose output should contain marker and message when enabled, got %q", out)
	}
}

func TestCompletenessTable(t *testing.T) {
	report := catalog.Completeness{
		catalog.Creational:  {Complete: 1, Planned: 1},
		catalog.Structural:  {Complete: 1},
		catalog.Behavioural: {},
	}

	out := CompletenessTable(report)

	for _, want := range []string{"Category", "Creational", "Structural", "Behavioural", "Overall", "50%", "100%", "67%"} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q:\n%s", want, out)
		}
	}

	c := strings.Index(out, "Creational")
	s := strings.Index(out, "Structural")
	b := strings.Index(out, "Behavioural")
	o := strings.Index(out, "Overall")
	if !(c < s && s < b && b < o) {
		t.Errorf("rows out of order:\n%s", out)
	}
}
