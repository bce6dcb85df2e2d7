package plog

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Sink is an output destination. A sink drops events below its own level
// floor and renders the rest with its own pipeline, or with the logger's
// when it has none.
//
// Log must be safe for concurrent use and reports medium failures as
// errors, preferably *SinkError.
type Sink interface {
	Name() string
	Level() Level
	SetLevel(Level)
	Pipeline() *Pipeline
	SetPipeline(*Pipeline)
	Log(l *Logger, level Level, ev *Event) error
}

// SinkError is a failure of one sink to deliver one event.
type SinkError struct {
	Logger string
	Sink   string
	Level  Level
	Err    error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("plog: sink %q of logger %q failed at %s: %v", e.Sink, e.Logger, e.Level, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// BaseSink carries the state every sink shares: name, level floor, private
// pipeline, counters and an optional metrics hook. Sinks embed *BaseSink and
// implement Log by calling Emit with their medium's write function.
type BaseSink struct {
	name     string
	level    atomic.Int32
	pipeline atomic.Pointer[Pipeline]
	metrics  atomic.Value // holds MetricsCollector
	measure  atomic.Bool
	st       stats
}

// NewBaseSink returns a BaseSink with floor LevelUnknown, which accepts
// every event, and no private pipeline.
func NewBaseSink(name string) *BaseSink {
	b := &BaseSink{name: name}
	b.metrics.Store(MetricsCollector(&NoopMetricsCollector{}))
	return b
}

func (b *BaseSink) Name() string { return b.name }

func (b *BaseSink) Level() Level { return Level(b.level.Load()) }

func (b *BaseSink) SetLevel(l Level) { b.level.Store(int32(l)) }

// Accepts reports whether an event at level passes the sink's floor.
func (b *BaseSink) Accepts(level Level) bool { return level >= b.Level() }

// Pipeline returns the sink's private pipeline, or nil.
func (b *BaseSink) Pipeline() *Pipeline { return b.pipeline.Load() }

func (b *BaseSink) SetPipeline(p *Pipeline) { b.pipeline.Store(p) }

// SetMetricsCollector installs a collector; when not Noop, write durations
// are measured too.
func (b *BaseSink) SetMetricsCollector(c MetricsCollector) {
	if c == nil {
		c = &NoopMetricsCollector{}
	}
	b.metrics.Store(c)
	_, isNoop := c.(*NoopMetricsCollector)
	b.measure.Store(!isNoop)
}

// Stats returns a snapshot of the sink's counters.
func (b *BaseSink) Stats() StatsSnapshot { return b.st.snapshot() }

// ResetStats zeroes the sink's counters.
func (b *BaseSink) ResetStats() { b.st.reset() }

// Emit applies the level floor, renders ev and passes the bytes to write.
// write must not retain p. Failures, including panics raised while
// rendering or writing, are counted and returned as *SinkError.
func (b *BaseSink) Emit(l *Logger, level Level, ev *Event, write func(p []byte) (int, error)) (err error) {
	if !b.Accepts(level) {
		return nil
	}
	measure := b.measure.Load()
	mc := b.metrics.Load().(MetricsCollector)

	var start time.Time
	if measure {
		start = time.Now()
	}
	buf := getBuf()
	defer putBuf(buf)

	var n int
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during log rendering: %v", r)
		}
		var dur time.Duration
		if measure {
			dur = time.Since(start)
		}
		mc.LoggedMessage(b.name, level, dur, n, err)
		if err == nil {
			b.st.written.Add(1)
			return
		}
		b.st.failed.Add(1)
		err = &SinkError{Logger: loggerName(l, ev), Sink: b.name, Level: level, Err: err}
	}()

	buf.b = b.pipelineFor(l).AppendTo(buf.b, l, level, ev)
	n, err = write(buf.b)
	return err
}

// pipelineFor picks the private pipeline, else the logger's current one.
func (b *BaseSink) pipelineFor(l *Logger) *Pipeline {
	if p := b.Pipeline(); p != nil {
		return p
	}
	if l != nil {
		return l.Pipeline()
	}
	return defaultPipeline()
}

func loggerName(l *Logger, ev *Event) string {
	if l == nil && ev != nil {
		l = ev.Logger()
	}
	if l == nil {
		return ""
	}
	return l.Name()
}
