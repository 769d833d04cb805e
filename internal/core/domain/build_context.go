package domain

import (
	"errors"
	"sync"
	"sync/atomic"
)

// BuildContext is the per-build state shared by every branch of the emission stage.
type BuildContext struct {
	RequiresFullBuild bool
	IsRebuild         bool
	HasScriptChanges  bool

	// Modules is every compiled component in the build.
	Modules []*Module

	// Errors is the build-wide failure flag. It is never nil for a context built by
	// NewBuildContext.
	Errors *BuildErrors
}

// NewBuildContext returns a full-build context for modules with a clear error flag.
func NewBuildContext(modules []*Module) *BuildContext {
	return &BuildContext{
		RequiresFullBuild: true,
		Modules:           modules,
		Errors:            &BuildErrors{},
	}
}

// SkipsScriptOutput reports whether the build is an incremental rebuild in which no script
// changed, so script bundles do not need to be regenerated.
func (b *BuildContext) SkipsScriptOutput() bool {
	return !b.RequiresFullBuild && b.IsRebuild && !b.HasScriptChanges
}

// BuildErrors is a monotonic failure flag: any goroutine may set it, nothing clears it.
// The zero value is ready to use.
type BuildErrors struct {
	failed atomic.Bool

	mu    sync.Mutex
	diags []error
}

// Fail sets the flag and records err as a diagnostic. A nil err only sets the flag.
func (e *BuildErrors) Fail(err error) {
	if err != nil {
		e.mu.Lock()
		e.diags = append(e.diags, err)
		e.mu.Unlock()
	}
	e.failed.Store(true)
}

// IsSet reports whether any branch has failed.
func (e *BuildErrors) IsSet() bool {
	return e.failed.Load()
}

// Err returns the recorded diagnostics joined together, or ErrBuildFailed when the flag is
// set without diagnostics. It returns nil while the flag is clear.
func (e *BuildErrors) Err() error {
	if !e.IsSet() {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.diags) == 0 {
		return ErrBuildFailed
	}
	return errors.Join(e.diags...)
}
