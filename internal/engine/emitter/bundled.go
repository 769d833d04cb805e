package emitter

import (
	"context"

	"go.trai.ch/pack/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// bundled generates a single bundle for every module and writes one variant per style mode
// to every target.
func (r *run) bundled(ctx context.Context, targets []domain.BuildTarget) (err error) {
	ctx, span := r.tracer.Start(ctx, SpanBundled)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	modules := domain.SortByTagName(r.bc.Modules)

	text, ok := r.generate(ctx, modules)
	if !ok {
		return nil
	}

	modes := domain.StyleModes(modules)
	variants := make(map[string]string, len(modes))
	for _, mode := range modes {
		variants[mode] = r.styles.Replace(modules, mode, text)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers())

	for _, t := range targets {
		for _, mode := range modes {
			g.Go(func() error {
				return r.write(gctx, t.FilePath(mode), variants[mode])
			})
		}
	}

	return g.Wait()
}
