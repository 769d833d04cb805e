package watcher

import (
	"sync"
	"unique"

	"go.trai.ch/pack/internal/adapters/fs"
	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
)

// ScriptCache remembers the content hash of every script file in a project so that saves
// which leave a script unchanged do not count as script changes.
type ScriptCache struct {
	hasher ports.Hasher
	walker *fs.Walker

	mu     sync.Mutex
	hashes map[unique.Handle[string]]string
}

// NewScriptCache creates an empty ScriptCache.
func NewScriptCache(hasher ports.Hasher, walker *fs.Walker) *ScriptCache {
	return &ScriptCache{
		hasher: hasher,
		walker: walker,
		hashes: make(map[unique.Handle[string]]string),
	}
}

// Seed records the current hash of every script file below root.
func (c *ScriptCache) Seed(root string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for path := range c.walker.WalkFiles(root, nil) {
		if !domain.IsScriptFile(path) {
			continue
		}
		if hash, err := c.hasher.ComputeFileHash(path); err == nil {
			c.hashes[unique.Make(path)] = hash
		}
	}
}

// Changed updates the cache for paths and reports whether the content of any script file
// among them changed. Scripts that appeared or disappeared count as changed.
func (c *ScriptCache) Changed(paths []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := false
	for _, path := range paths {
		if !domain.IsScriptFile(path) {
			continue
		}

		key := unique.Make(path)
		old, known := c.hashes[key]

		hash, err := c.hasher.ComputeFileHash(path)
		if err != nil {
			if known {
				delete(c.hashes, key)
				changed = true
			}
			continue
		}

		if !known || old != hash {
			c.hashes[key] = hash
			changed = true
		}
	}
	return changed
}
