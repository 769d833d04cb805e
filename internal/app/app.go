// Package app implements the application layer for pack.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"go.trai.ch/pack/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pack/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/pack/internal/engine/emitter"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	emitter      *emitter.Emitter
	store        ports.OutputStore
	watcher      ports.Watcher
	scripts      *watcher.ScriptCache
	logger       ports.Logger
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	em *emitter.Emitter,
	store ports.OutputStore,
	w ports.Watcher,
	scripts *watcher.ScriptCache,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		emitter:      em,
		store:        store,
		watcher:      w,
		scripts:      scripts,
		logger:       log,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithDebounce sets the window used to batch file changes in watch mode.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// BuildOptions configuration for the Build and Watch methods.
type BuildOptions struct {
	// ConfigPath is the configuration file. Empty means pack.yaml in the working directory.
	ConfigPath string
	// Parallelism overrides the configured concurrency bound when positive.
	Parallelism int
}

// Result describes a finished build.
type Result struct {
	emitter.Summary
	// Skipped is set when the build emitted nothing because no script changed.
	Skipped bool
}

// Build loads the configuration and emits every bundle it describes.
func (a *App) Build(ctx context.Context, opts BuildOptions) (Result, error) {
	cfg, modules, err := a.load(opts)
	if err != nil {
		return Result{}, err
	}
	return a.emit(ctx, cfg, domain.NewBuildContext(modules))
}

func (a *App) load(opts BuildOptions) (*domain.Config, []*domain.Module, error) {
	cfg, modules, err := a.configLoader.Load(configPath(opts))
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Parallelism > 0 {
		cfg.Parallelism = opts.Parallelism
	}
	return cfg, modules, nil
}

// emit runs the emission stage and turns the build error flag into ErrBuildFailed.
// Diagnostics are logged here, so callers can report ErrBuildFailed without detail.
func (a *App) emit(ctx context.Context, cfg *domain.Config, bc *domain.BuildContext) (Result, error) {
	if bc.SkipsScriptOutput() {
		a.logger.Info("no script changes, skipping bundle output")
		return Result{Skipped: true}, nil
	}

	summary, err := a.emitter.Run(ctx, cfg, bc, nil)
	result := Result{Summary: summary}

	if buildErr := bc.Errors.Err(); buildErr != nil {
		a.logger.Error(buildErr)
		if err != nil {
			a.logger.Error(err)
		}
		return result, domain.ErrBuildFailed
	}
	if err != nil {
		return result, err
	}

	a.logger.Info(fmt.Sprintf("emitted %d file(s) from %d bundle(s)", summary.Written, summary.Generated))
	return result, nil
}

// Watch builds once and then rebuilds whenever files below the project root change.
// Changes are batched over the debounce window and processed one batch at a time.
// A failed build is logged and does not stop watching. Watch returns when ctx is done.
func (a *App) Watch(ctx context.Context, opts BuildOptions) error {
	cfg, modules, err := a.load(opts)
	if err != nil {
		return err
	}

	if _, err := a.emit(ctx, cfg, domain.NewBuildContext(modules)); err != nil {
		a.report(err)
	}

	a.scripts.Seed(cfg.RootDir)

	if err := a.watcher.Start(ctx, cfg.RootDir); err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	var current atomic.Pointer[domain.Config]
	current.Store(cfg)

	batches := make(chan []string)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})

	go func() {
		for event := range a.watcher.Events() {
			if ignoredPath(current.Load(), event.Path) {
				continue
			}
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info("watching " + cfg.RootDir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-batches:
			if next := a.rebuild(ctx, opts, paths); next != nil {
				current.Store(next)
			}
		}
	}
}

// rebuild handles one batch of changed paths. It returns the reloaded configuration, or nil
// when the configuration could not be loaded.
func (a *App) rebuild(ctx context.Context, opts BuildOptions, paths []string) *domain.Config {
	cfg, modules, err := a.load(opts)
	if err != nil {
		a.logger.Error(err)
		return nil
	}

	bc := domain.NewBuildContext(modules)
	bc.IsRebuild = true
	bc.RequiresFullBuild = slices.Contains(paths, configPath(opts))
	bc.HasScriptChanges = a.scripts.Changed(paths)

	if _, err := a.emit(ctx, cfg, bc); err != nil {
		a.report(err)
	}
	return cfg
}

func (a *App) report(err error) {
	if errors.Is(err, domain.ErrBuildFailed) {
		return
	}
	a.logger.Error(err)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
}

// Clean removes every file recorded in the output manifest, then the manifest itself.
// Files that no longer exist are skipped.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, _, err := a.load(BuildOptions{ConfigPath: opts.ConfigPath})
	if err != nil {
		return err
	}

	records, err := a.store.All(cfg.RootDir)
	if err != nil {
		return err
	}

	var errs error
	removed := 0
	for _, record := range records {
		if err := os.Remove(record.Path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			errs = errors.Join(errs, zerr.With(
				zerr.Wrap(err, domain.ErrFailedToCleanOutput.Error()), "path", record.Path,
			))
			continue
		}
		removed++
	}
	if errs != nil {
		return errs
	}

	if err := a.store.Clear(cfg.RootDir); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("removed %d file(s)", removed))
	return nil
}

func configPath(opts BuildOptions) string {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultFilename
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// ignoredPath reports whether a change to path must not trigger a rebuild: pack's own state
// and everything below an output directory.
func ignoredPath(cfg *domain.Config, path string) bool {
	dirs := []string{filepath.Join(cfg.RootDir, domain.StateDir)}
	for _, t := range cfg.OutputTargets {
		switch t := t.(type) {
		case domain.WebComponentTarget:
			dirs = append(dirs, t.Dir)
		case domain.BuildTarget:
			dirs = append(dirs, t.BuildDir)
		case domain.AuxTarget:
			dirs = append(dirs, t.Dir)
		}
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
