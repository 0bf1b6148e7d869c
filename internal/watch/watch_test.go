package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/simonhull/wren/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsNonPositiveDebounce(t *testing.T) {
	_, err := New("patterns.yml", 0, func(context.Context) error { return nil }, logger.NewSilentLogger())
	assert.Error(t, err)
}

func TestWatcher_DebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yml")
	require.NoError(t, os.WriteFile(path, []byte("v0"), 0644))

	var calls atomic.Int32
	w, err := New(path, 50*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("still logged, not fatal")
	}, logger.NewSilentLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to subscribe.
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("v"+string(rune('1'+i))), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yml"), []byte("x"), 0644))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	// The burst collapses into one call.
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
