package emitter

import (
	"context"

	"go.trai.ch/pack/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// selfContained generates one bundle per module and writes it to every target.
// Each module is generated in isolation and handled by its own goroutine.
func (r *run) selfContained(ctx context.Context, targets []domain.WebComponentTarget) (err error) {
	ctx, span := r.tracer.Start(ctx, SpanSelfContained)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers())

	for _, m := range r.bc.Modules {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			text, ok := r.generate(gctx, []*domain.Module{m})
			if !ok {
				return nil
			}

			for _, t := range targets {
				if err := r.write(gctx, t.FilePath(m.TagName), text); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
