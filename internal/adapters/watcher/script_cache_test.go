package watcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/adapters/fs"
	"go.trai.ch/pack/internal/adapters/watcher"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestScriptCache_Changed(t *testing.T) {
	root := t.TempDir()
	script := filepath.Join(root, "src", "my-button.js")
	style := filepath.Join(root, "src", "my-button.css")
	write(t, script, "v1")
	write(t, style, ":host{}")

	cache := watcher.NewScriptCache(fs.NewHasher(), fs.NewWalker())
	cache.Seed(root)

	// Saved without changes.
	write(t, script, "v1")
	assert.False(t, cache.Changed([]string{script}))

	// Style edits never count.
	write(t, style, ":host{color:red}")
	assert.False(t, cache.Changed([]string{style}))

	write(t, script, "v2")
	assert.True(t, cache.Changed([]string{script, style}))
	assert.False(t, cache.Changed([]string{script}), "the new content is remembered")

	added := filepath.Join(root, "src", "my-card.ts")
	write(t, added, "card")
	assert.True(t, cache.Changed([]string{added}))

	require.NoError(t, os.Remove(script))
	assert.True(t, cache.Changed([]string{script}))
	assert.False(t, cache.Changed([]string{script}), "a removal is reported once")
}
