// Package slogsink forwards plog events to a log/slog handler.
package slogsink

import (
	"context"
	"log/slog"

	"github.com/trickstertwo/plog"
	"github.com/trickstertwo/plog/internal/bridge"
)

// Sink renders each event with its pipeline and hands the text to a
// slog.Handler as the record message. The record time is the event time
// and the plog logger name is attached under "logger".
//
// Unlike the zerolog and zap sinks, handler errors are returned and so
// reach the logger's observers.
type Sink struct {
	*plog.BaseSink
	h slog.Handler
}

// New returns a sink named "slog" for h. A nil h uses the handler of
// slog.Default().
func New(h slog.Handler) *Sink {
	if h == nil {
		h = slog.Default().Handler()
	}
	return &Sink{BaseSink: plog.NewBaseSink("slog"), h: h}
}

func (s *Sink) Log(l *plog.Logger, level plog.Level, ev *plog.Event) error {
	slvl := toSlog(level)
	return s.Emit(l, level, ev, func(p []byte) (int, error) {
		ctx := context.Background()
		if !s.h.Enabled(ctx, slvl) {
			return len(p), nil
		}
		r := slog.NewRecord(ev.Time(), slvl, bridge.Message(p), 0)
		r.AddAttrs(slog.String(bridge.LoggerKey, bridge.LoggerName(l, ev)))
		if err := s.h.Handle(ctx, r); err != nil {
			return 0, err
		}
		return len(p), nil
	})
}

func toSlog(l plog.Level) slog.Level {
	switch {
	case l <= plog.LevelDebug:
		return slog.LevelDebug
	case l == plog.LevelInfo:
		return slog.LevelInfo
	case l == plog.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
