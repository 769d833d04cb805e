// Package emitter writes the script bundles of a component build to its output targets.
package emitter

import (
	"context"
	"strings"
	"sync/atomic"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Span names recorded for each pipeline.
const (
	SpanSelfContained = "generate self-contained web components"
	SpanBundled       = "generate bundled web components"
)

// Summary counts what a run produced.
type Summary struct {
	// Generated is the number of bundle texts produced by the code generator.
	Generated int
	// Written is the number of files handed to the writer.
	Written int
}

// Emitter runs the self-contained and bundled pipelines of the emission stage.
type Emitter struct {
	features ports.FeatureDetector
	codegen  ports.CodeGenerator
	styles   ports.StyleSubstituter
	writer   ports.FileWriter
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates an Emitter over its collaborators.
func New(
	features ports.FeatureDetector,
	codegen ports.CodeGenerator,
	styles ports.StyleSubstituter,
	writer ports.FileWriter,
	tracer ports.Tracer,
	logger ports.Logger,
) *Emitter {
	return &Emitter{
		features: features,
		codegen:  codegen,
		styles:   styles,
		writer:   writer,
		tracer:   tracer,
		logger:   logger,
	}
}

// Run emits the script bundles for bc.Modules to every eligible target in cfg.
//
// The stage is skipped entirely on a rebuild without script changes. Otherwise it waits for
// styles to be closed (a nil channel does not wait) and runs both pipelines concurrently.
// Generation failures are recorded on bc.Errors and suppress the affected writes; a write
// failure is returned and stops further writes. Files written before a failure stay on disk.
func (e *Emitter) Run(
	ctx context.Context,
	cfg *domain.Config,
	bc *domain.BuildContext,
	styles <-chan struct{},
) (Summary, error) {
	if bc.SkipsScriptOutput() {
		return Summary{}, nil
	}

	plan := SelectTargets(cfg.OutputTargets, len(bc.Modules))
	if plan.Empty() {
		return Summary{}, nil
	}

	if styles != nil {
		select {
		case <-styles:
		case <-ctx.Done():
			return Summary{}, ctx.Err()
		}
	}

	r := &run{
		Emitter: e,
		cfg:     cfg,
		bc:      bc,
	}

	g, gctx := errgroup.WithContext(ctx)
	if len(plan.SelfContained) > 0 {
		g.Go(func() error {
			return r.selfContained(gctx, plan.SelfContained)
		})
	}
	if len(plan.Bundled) > 0 {
		g.Go(func() error {
			return r.bundled(gctx, plan.Bundled)
		})
	}
	err := g.Wait()

	return Summary{
		Generated: int(r.generated.Load()),
		Written:   int(r.written.Load()),
	}, err
}

// run holds the state of a single Run call.
type run struct {
	*Emitter

	cfg *domain.Config
	bc  *domain.BuildContext

	generated atomic.Int64
	written   atomic.Int64
}

// generate produces the bundle text for participating, which must already be ordered.
// It reports false when no file should be written: the generator failed, the build error
// flag is set, or there is no text.
func (r *run) generate(ctx context.Context, participating []*domain.Module) (string, bool) {
	flags := BuildFlagsFor(r.features, r.bc.Modules, participating)

	// A generation call is never interrupted once started.
	text, err := r.codegen.Generate(context.WithoutCancel(ctx), r.bc, participating, flags)
	if err != nil {
		r.bc.Errors.Fail(zerr.With(
			zerr.Wrap(err, domain.ErrGenerationFailed.Error()),
			"components", tagNames(participating),
		))
		return "", false
	}
	if r.bc.Errors.IsSet() || text == "" {
		return "", false
	}

	r.generated.Add(1)
	return text, true
}

// write hands text to the writer unless the build has already failed.
func (r *run) write(ctx context.Context, path, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.bc.Errors.IsSet() {
		return nil
	}

	if err := r.writer.WriteFile(ctx, r.cfg.RootDir, path, text); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWriteFailed.Error()), "path", path)
	}

	r.written.Add(1)
	r.logger.Info("wrote " + path)
	return nil
}

func tagNames(modules []*domain.Module) string {
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.TagName
	}
	return strings.Join(names, ",")
}
