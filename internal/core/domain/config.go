package domain

import (
	"os"
	"path/filepath"
	"runtime"
)

// MinForLazyLoad is the component count from which www and dist builds switch to lazy
// loading. Below it they receive bundled output from this stage.
const MinForLazyLoad = 6

const (
	// DirPerm is the default permission for directories created by pack.
	DirPerm = 0o750
	// FilePerm is the default permission for files written by pack.
	FilePerm = 0o644
	// StateDir is the directory, relative to the project root, that holds pack's own state.
	StateDir = ".pack"
	// ManifestFile is the name of the emitted-output manifest inside StateDir.
	ManifestFile = "manifest.json"
)

// Config is the global build configuration. It is read-only during emission.
type Config struct {
	Namespace     string
	RootDir       string
	OutputTargets []OutputTarget
	// Parallelism bounds the number of concurrent generation and write operations per
	// pipeline. Zero means runtime.NumCPU.
	Parallelism int
}

// Workers returns the effective concurrency bound.
func (c *Config) Workers() int {
	if c.Parallelism > 0 {
		return c.Parallelism
	}
	return runtime.NumCPU()
}

// ManifestPath returns the location of the output manifest for a project root.
func ManifestPath(root string) string {
	return filepath.Join(root, StateDir, ManifestFile)
}

// IsScriptFile reports whether path has an extension that affects script bundles.
func IsScriptFile(path string) bool {
	switch filepath.Ext(path) {
	case ".js", ".mjs", ".jsx", ".ts", ".tsx":
		return true
	default:
		return false
	}
}

// ResolvePath resolves p against root when p is relative. An empty root resolves against the
// current working directory.
func ResolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	if root == "" {
		if wd, err := os.Getwd(); err == nil {
			root = wd
		}
	}
	return filepath.Join(root, p)
}
