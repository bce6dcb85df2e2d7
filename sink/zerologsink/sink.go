// Package zerologsink forwards plog events to an rs/zerolog logger.
package zerologsink

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/plog"
	"github.com/trickstertwo/plog/internal/bridge"
)

// Sink renders each event with its pipeline and emits the text as the
// message of a zerolog entry.
//
// The entry carries the plog logger name under "logger" and the event time
// as an RFC3339Nano string under "ts". FATAL is emitted at error level so
// zerolog never exits the process.
type Sink struct {
	*plog.BaseSink
	l zerolog.Logger
}

// New returns a sink named "zerolog" writing to l.
func New(l zerolog.Logger) *Sink {
	return &Sink{BaseSink: plog.NewBaseSink("zerolog"), l: l}
}

func (s *Sink) Log(l *plog.Logger, level plog.Level, ev *plog.Event) error {
	zlvl := mapLevel(level)
	return s.Emit(l, level, ev, func(p []byte) (int, error) {
		// below zerolog's own level; not a failure
		if zlvl < s.l.GetLevel() || zlvl < zerolog.GlobalLevel() {
			return len(p), nil
		}
		s.l.WithLevel(zlvl).
			Str(bridge.LoggerKey, bridge.LoggerName(l, ev)).
			Str("ts", ev.Time().UTC().Format(time.RFC3339Nano)).
			Msg(bridge.Message(p))
		return len(p), nil
	})
}

// Use routes the root logger of the default registry to l alone and
// returns the attached sink.
func Use(l zerolog.Logger) *Sink {
	s := New(l)
	root := plog.Root()
	root.ClearSinks()
	root.Attach(s)
	return s
}

func mapLevel(l plog.Level) zerolog.Level {
	switch {
	case l <= plog.LevelDebug:
		return zerolog.DebugLevel
	case l == plog.LevelInfo:
		return zerolog.InfoLevel
	case l == plog.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
