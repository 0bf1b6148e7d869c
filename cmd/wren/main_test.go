package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runMainEnv makes the test binary behave as the wren binary.
const runMainEnv = "GO_WANT_WREN_MAIN"

func TestMain(m *testing.M) {
	if os.Getenv(runMainEnv) == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// wren runs the binary with args and returns stdout, stderr and the exit code.
func wren(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	cmd := exec.Command(os.Args[0], args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), runMainEnv+"=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.String(), stderr.String(), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return stdout.String(), stderr.String(), 0
}

func writeDefinition(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRender_ExitCodes(t *testing.T) {
	tests := []struct {
		name       string
		definition string
		wantCode   int
		wantOut    string
		wantErr    string
	}{
		{
			name: "valid definition",
			definition: `apiVersion: v1
kind: Catalog
name: scenario
spec:
  categories:
    - category: creational
      patterns:
        - name: Singleton
          ref: singleton.py
        - name: Builder
          status: planned
    - category: structural
      patterns:
        - name: Facade
`,
			wantCode: 0,
			wantOut:  "- **Creational**\n  - [Singleton](singleton.py)\n  - Builder\n- **Structural**\n  - Facade\n- **Behavioural**\n",
		},
		{
			name: "duplicate name",
			definition: `apiVersion: v1
kind: Catalog
name: duplicate
spec:
  categories:
    - category: behavioural
      patterns:
        - name: Observer
        - name: Observer
`,
			wantCode: 1,
			wantErr:  `pattern "Observer" already registered in category Behavioural`,
		},
		{
			name: "unknown category",
			definition: `apiVersion: v1
kind: Catalog
name: unknown
spec:
  categories:
    - category: concurrency
      patterns:
        - name: Reactor
`,
			wantCode: 1,
			wantErr:  `unknown category "concurrency"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDefinition(t, tt.definition)

			stdout, stderr, code := wren(t, "render", "--definition", path)
			assert.Equal(t, tt.wantCode, code, "stderr: %s", stderr)
			if tt.wantCode == 0 {
				assert.Equal(t, tt.wantOut, stdout)
				return
			}
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestValidate_MissingDefinitionExitsNonZero(t *testing.T) {
	_, stderr, code := wren(t, "validate", "--definition", filepath.Join(t.TempDir(), "missing.yml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to read definition file")
}
