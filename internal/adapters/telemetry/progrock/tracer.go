// Package progrock records build spans as progrock vertices.
package progrock

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/pack/internal/core/ports"
)

// Tracer implements ports.Tracer on a progrock recorder. Every span becomes a vertex.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
	seq atomic.Uint64
}

// New creates a new Tracer that sends vertex updates to w.
func New(w progrock.Writer) *Tracer {
	return &Tracer{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// NewTape creates a Tracer that keeps vertex updates in memory.
func NewTape() *Tracer {
	return New(progrock.NewTape())
}

// Start records a new vertex named name.
func (t *Tracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var vopts []progrock.VertexOpt
	if cfg.Internal {
		vopts = append(vopts, progrock.Internal())
	}

	// Spans with the same name recur across watch rebuilds; each one needs its own vertex.
	d := digest.FromString(name + "#" + strconv.FormatUint(t.seq.Add(1), 10))
	return ctx, &Span{vertex: t.rec.Vertex(d, name, vopts...)}
}

// Close flushes and closes the recording session.
func (t *Tracer) Close() error {
	return t.w.Close()
}
