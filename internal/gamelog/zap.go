package gamelog

import "go.uber.org/zap"

// ZapSink writes every event as a structured log entry.
type ZapSink struct {
	Logger *zap.Logger
}

// NewZapSink returns a sink logging to l at info level.
func NewZapSink(l *zap.Logger) *ZapSink {
	return &ZapSink{Logger: l}
}

// Emit implements Sink.
func (s *ZapSink) Emit(e Event) {
	s.Logger.Info("game event",
		zap.Stringer("kind", e.Kind),
		zap.Int("turn", e.Turn),
		zap.Uint64("source", uint64(e.Source)),
		zap.String("source_name", e.SourceName),
		zap.Uint64("target", uint64(e.Target)),
		zap.String("target_name", e.TargetName),
		zap.Int("amount", e.Amount),
	)
}
