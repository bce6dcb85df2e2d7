package plog

import (
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
)

// Logger is a named severity gate that fans accepted events out to its
// sinks, in attachment order.
type Logger struct {
	name     string
	level    atomic.Int32
	pipeline atomic.Pointer[Pipeline]

	// Sinks and observers: lock-free reads via atomic.Value; synchronized updates via mu.
	// Stored values are []Sink and []Observer and MUST be treated as immutable by readers.
	sinks     atomic.Value // holds []Sink
	observers atomic.Value // holds []Observer
	mu        sync.Mutex
}

// NewLogger returns a logger with level DEBUG, the DefaultPattern pipeline
// and no sinks.
func NewLogger(name string) *Logger {
	return newLogger(Config{Name: name, Level: LevelDebug})
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{name: cfg.Name}
	l.level.Store(int32(cfg.Level))
	if cfg.Pattern == "" || cfg.Pattern == DefaultPattern {
		l.pipeline.Store(defaultPipeline())
	} else {
		l.pipeline.Store(NewPipeline(cfg.Pattern))
	}
	l.sinks.Store(([]Sink)(nil))
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		l.observers.Store(obs)
	} else {
		l.observers.Store(([]Observer)(nil))
	}
	for _, s := range cfg.Sinks {
		l.Attach(s)
	}
	return l
}

func (l *Logger) Name() string { return l.name }

func (l *Logger) Level() Level { return Level(l.level.Load()) }

func (l *Logger) SetLevel(level Level) { l.level.Store(int32(level)) }

// Enabled reports whether events at level pass this logger's floor.
// Use to avoid building messages in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.Level()
}

// Pipeline returns the logger's default pipeline.
func (l *Logger) Pipeline() *Pipeline { return l.pipeline.Load() }

// SetPipeline replaces the default pipeline. Sinks already attached keep
// the pipeline they were given at attach time. A nil p is ignored.
func (l *Logger) SetPipeline(p *Pipeline) {
	if p == nil {
		return
	}
	l.pipeline.Store(p)
}

// SetPattern compiles template and makes it the default pipeline.
func (l *Logger) SetPattern(template string) { l.SetPipeline(NewPipeline(template)) }

// Attach appends s to the sink list. A sink without a pipeline of its own
// is bound to the logger's current default pipeline.
func (l *Logger) Attach(s Sink) {
	if s == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if s.Pipeline() == nil {
		s.SetPipeline(l.Pipeline())
	}
	cur := l.snapshotSinks()
	cur = append(cur, s)
	l.sinks.Store(cur)
}

// Detach removes the first occurrence of s. It is a no-op when s is not
// attached.
func (l *Logger) Detach(s Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.loadSinks()
	for i := range cur {
		if cur[i] == s {
			next := make([]Sink, 0, len(cur)-1)
			next = append(next, cur[:i]...)
			next = append(next, cur[i+1:]...)
			l.sinks.Store(next)
			return
		}
	}
}

// ClearSinks detaches every sink.
func (l *Logger) ClearSinks() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks.Store(([]Sink)(nil))
}

// Sinks returns a copy of the sink list.
func (l *Logger) Sinks() []Sink { return l.snapshotSinks() }

func (l *Logger) loadSinks() []Sink {
	v := l.sinks.Load()
	if v == nil {
		return nil
	}
	return v.([]Sink)
}

func (l *Logger) snapshotSinks() []Sink {
	cur := l.loadSinks()
	if len(cur) == 0 {
		return nil
	}
	out := make([]Sink, len(cur))
	copy(out, cur)
	return out
}

// AddObserver registers o for sink failures of this logger.
func (l *Logger) AddObserver(o Observer) {
	if o == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.snapshotObservers()
	cur = append(cur, o)
	l.observers.Store(cur)
}

func (l *Logger) snapshotObservers() []Observer {
	v := l.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

// Log dispatches ev at level to every attached sink, unless level is below
// the logger's floor. A failing sink does not stop dispatch to the next
// one; all failures are reported to the observers and returned combined
// (see multierr.Errors).
func (l *Logger) Log(level Level, ev *Event) error {
	if !l.Enabled(level) {
		return nil
	}
	var errs error
	for _, s := range l.loadSinks() {
		if err := s.Log(l, level, ev); err != nil {
			var se *SinkError
			if !errors.As(err, &se) {
				se = &SinkError{Logger: l.name, Sink: s.Name(), Level: level, Err: err}
			}
			l.notify(se)
			errs = multierr.Append(errs, se)
		}
	}
	return errs
}

func (l *Logger) notify(err *SinkError) {
	var obs []Observer
	if v := l.observers.Load(); v != nil {
		obs = v.([]Observer)
	}
	if len(obs) == 0 {
		fallbackObserver.OnSinkError(err)
		return
	}
	for _, o := range obs {
		o.OnSinkError(err)
	}
}

// Level entry points over Log.

func (l *Logger) Debug(ev *Event) error { return l.Log(LevelDebug, ev) }
func (l *Logger) Info(ev *Event) error  { return l.Log(LevelInfo, ev) }
func (l *Logger) Warn(ev *Event) error  { return l.Log(LevelWarn, ev) }
func (l *Logger) Error(ev *Event) error { return l.Log(LevelError, ev) }
func (l *Logger) Fatal(ev *Event) error { return l.Log(LevelFatal, ev) }
