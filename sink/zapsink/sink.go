// Package zapsink forwards plog events to a go.uber.org/zap logger.
package zapsink

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/plog"
	"github.com/trickstertwo/plog/internal/bridge"
)

// Sink renders each event with its pipeline and writes the text as the
// message of a zap entry, with the plog logger name under "logger" and the
// event time under the timestamp key.
//
// Checking the entry first keeps disabled levels free of field
// construction. FATAL maps to zap's error level; zap.Fatal would exit.
type Sink struct {
	*plog.BaseSink
	l     *zap.Logger
	tsKey string
}

// New returns a sink named "zap" writing to l. A nil l discards.
func New(l *zap.Logger) *Sink {
	return NewWithTimestampKey(l, "ts")
}

// NewWithTimestampKey lets callers override the timestamp field key
// (default "ts").
func NewWithTimestampKey(l *zap.Logger, tsKey string) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Sink{BaseSink: plog.NewBaseSink("zap"), l: l, tsKey: tsKey}
}

func (s *Sink) Log(l *plog.Logger, level plog.Level, ev *plog.Event) error {
	zlvl := toZapLevel(level)
	return s.Emit(l, level, ev, func(p []byte) (int, error) {
		ce := s.l.Check(zlvl, bridge.Message(p))
		if ce == nil {
			return len(p), nil
		}
		ce.Write(
			zap.String(bridge.LoggerKey, bridge.LoggerName(l, ev)),
			zap.String(s.tsKey, ev.Time().UTC().Format(time.RFC3339Nano)),
		)
		return len(p), nil
	})
}

// Sync flushes the zap logger.
func (s *Sink) Sync() error { return s.l.Sync() }

func toZapLevel(l plog.Level) zapcore.Level {
	switch {
	case l <= plog.LevelDebug:
		return zapcore.DebugLevel
	case l == plog.LevelInfo:
		return zapcore.InfoLevel
	case l == plog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
