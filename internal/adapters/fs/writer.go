package fs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileWriter = (*Writer)(nil)

// Writer writes bundles atomically and records them in the output manifest.
// A file whose manifest hash and on-disk content both match the new text is left untouched.
type Writer struct {
	hasher ports.Hasher
	store  ports.OutputStore
}

// NewWriter creates a new Writer.
func NewWriter(hasher ports.Hasher, store ports.OutputStore) *Writer {
	return &Writer{
		hasher: hasher,
		store:  store,
	}
}

// WriteFile writes text to path via a temporary file in the same directory.
func (w *Writer) WriteFile(ctx context.Context, root, path, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	hash := w.hasher.HashText(text)
	if w.unchanged(root, path, hash) {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "dir", dir)
	}

	if err := writeAtomic(dir, path, text); err != nil {
		return err
	}

	return w.store.Put(root, domain.OutputRecord{
		Path:      path,
		Hash:      hash,
		Timestamp: time.Now(),
	})
}

func (w *Writer) unchanged(root, path, hash string) bool {
	rec, err := w.store.Get(root, path)
	if err != nil || rec == nil || rec.Hash != hash {
		return false
	}
	onDisk, err := w.hasher.ComputeFileHash(path)
	return err == nil && onDisk == hash
}

func writeAtomic(dir, path, text string) error {
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary file"), "dir", dir)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Already renamed on success

	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write temporary file"), "path", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close temporary file"), "path", tmpName)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set file permissions"), "path", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to move file into place"), "path", path)
	}
	return nil
}
