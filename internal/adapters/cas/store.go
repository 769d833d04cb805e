// Package cas implements the output manifest store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputStore = (*Store)(nil)

// Store implements ports.OutputStore with one flat JSON manifest per project root.
// Manifests are loaded on first use and written through on every Put.
type Store struct {
	mu     sync.Mutex
	caches map[string]map[string]domain.OutputRecord
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{
		caches: make(map[string]map[string]domain.OutputRecord),
	}
}

// Get retrieves the record for an output path.
func (s *Store) Get(root, path string) (*domain.OutputRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cache, err := s.load(root)
	if err != nil {
		return nil, err
	}

	rec, ok := cache[path]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores the record and saves the manifest.
func (s *Store) Put(root string, record domain.OutputRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cache, err := s.load(root)
	if err != nil {
		return err
	}
	cache[record.Path] = record

	return s.save(root, cache)
}

// All returns every record, ordered by path.
func (s *Store) All(root string) ([]domain.OutputRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cache, err := s.load(root)
	if err != nil {
		return nil, err
	}

	records := make([]domain.OutputRecord, 0, len(cache))
	for _, path := range slices.Sorted(maps.Keys(cache)) {
		records = append(records, cache[path])
	}
	return records, nil
}

// Clear removes every record and deletes the manifest file.
func (s *Store) Clear(root string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.caches, root)

	path := domain.ManifestPath(root)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}

// load returns the cached manifest for root, reading it from disk on first use.
// The caller must hold s.mu.
func (s *Store) load(root string) (map[string]domain.OutputRecord, error) {
	if cache, ok := s.caches[root]; ok {
		return cache, nil
	}

	cache := make(map[string]domain.OutputRecord)
	path := domain.ManifestPath(root)

	//nolint:gosec // Path is derived from the project root
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	case len(data) > 0:
		if err := json.Unmarshal(data, &cache); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
		}
	}

	s.caches[root] = cache
	return cache, nil
}

// save writes the manifest for root. The caller must hold s.mu.
func (s *Store) save(root string, cache map[string]domain.OutputRecord) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	path := domain.ManifestPath(root)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is derived from the project root
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}
