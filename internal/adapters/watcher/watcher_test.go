package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/adapters/fs"
	"go.trai.ch/pack/internal/adapters/watcher"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/pack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsWritesInNewDirectories(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	root := t.TempDir()
	w, err := watcher.NewWatcher(fs.NewWalker(), log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	defer w.Stop() //nolint:errcheck // Best effort cleanup in test

	events := make(chan ports.WatchEvent, 64)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
		close(events)
	}()

	dir := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(dir, 0o750))
	waitFor(t, events, dir)

	// Give the watcher a moment to register the new directory.
	time.Sleep(50 * time.Millisecond)

	file := filepath.Join(dir, "a-item.js")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0o600))
	waitFor(t, events, file)
}

func waitFor(t *testing.T, events <-chan ports.WatchEvent, path string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed before %s was seen", path)
			if ev.Path == path {
				assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, ev.Operation)
				return
			}
		case <-timeout:
			t.Fatalf("no event for %s", path)
		}
	}
}
