package progrock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	adapter "go.trai.ch/pack/internal/adapters/telemetry/progrock"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/pack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// captureWriter keeps every status update it receives.
type captureWriter struct {
	mu      sync.Mutex
	updates []*progrock.StatusUpdate
	closed  bool
}

func (w *captureWriter) WriteStatus(u *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates = append(w.updates, u)
	return nil
}

func (w *captureWriter) Close() error {
	w.closed = true
	return nil
}

func (w *captureWriter) completed() map[string]*progrock.Vertex {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string]*progrock.Vertex)
	for _, u := range w.updates {
		for _, v := range u.Vertexes {
			if v.GetCompleted() != nil {
				out[v.GetName()] = v
			}
		}
	}
	return out
}

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*adapter.Tracer)(nil)
	var _ ports.Span = (*adapter.Span)(nil)
	var _ progrock.Writer = (*adapter.LogWriter)(nil)
}

func TestTracer_SpanLifecycle(t *testing.T) {
	w := &captureWriter{}
	tracer := adapter.New(w)

	_, ok := tracer.Start(context.Background(), "generate bundled web components")
	n, err := ok.Write([]byte("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	ok.End()

	_, failed := tracer.Start(context.Background(), "generate self-contained web components")
	failed.RecordError(errors.New("disk full"))
	failed.RecordError(errors.New("second"))
	failed.End()

	require.NoError(t, tracer.Close())
	assert.True(t, w.closed)

	done := w.completed()
	require.Contains(t, done, "generate bundled web components")
	assert.Empty(t, done["generate bundled web components"].GetError())
	require.Contains(t, done, "generate self-contained web components")
	assert.Equal(t, "disk full", done["generate self-contained web components"].GetError())
}

func TestTracer_InternalSpan(t *testing.T) {
	w := &captureWriter{}
	tracer := adapter.New(w)

	_, span := tracer.Start(context.Background(), "hidden", ports.WithInternal())
	span.End()

	done := w.completed()
	require.Contains(t, done, "hidden")
	assert.True(t, done["hidden"].GetInternal())
}

func TestNewTape(t *testing.T) {
	tracer := adapter.NewTape()
	_, span := tracer.Start(context.Background(), "task")
	span.End()
	assert.NoError(t, tracer.Close())
}

func TestLogWriter_LogsCompletedVertexes(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "generate bundled web components")
	}).Times(1)
	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "generate self-contained web components failed")
		assert.Contains(t, msg, "boom")
	}).Times(1)

	tracer := adapter.New(adapter.NewLogWriter(logger))

	_, span := tracer.Start(context.Background(), "generate bundled web components")
	span.End()

	_, span = tracer.Start(context.Background(), "generate self-contained web components")
	span.RecordError(errors.New("boom"))
	span.End()

	_, span = tracer.Start(context.Background(), "internal", ports.WithInternal())
	span.End()

	require.NoError(t, tracer.Close())
}
