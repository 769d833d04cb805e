package progrock

import (
	"fmt"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/pack/internal/core/ports"
)

// LogWriter is a progrock.Writer that logs each completed vertex with its duration.
type LogWriter struct {
	logger ports.Logger
}

// NewLogWriter creates a LogWriter that reports to logger.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{logger: logger}
}

// WriteStatus logs the vertexes of update that have completed. Internal vertexes are skipped.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	for _, v := range update.Vertexes {
		if v.GetInternal() || v.GetCompleted() == nil {
			continue
		}

		elapsed := v.GetCompleted().AsTime().Sub(v.GetStarted().AsTime()).Round(time.Millisecond)
		if msg := v.GetError(); msg != "" {
			w.logger.Warn(fmt.Sprintf("%s failed after %s: %s", v.GetName(), elapsed, msg))
			continue
		}
		w.logger.Info(fmt.Sprintf("%s (%s)", v.GetName(), elapsed))
	}
	return nil
}

// Close implements progrock.Writer.
func (w *LogWriter) Close() error {
	return nil
}
