package plog

import "sync/atomic"

// Scope is the write handle of one log call. It owns an Event that is not
// yet submitted; Close submits it to the logger exactly once. Copies of a
// Scope share that state, so closing any copy closes them all.
//
//	s := logger.At(plog.LevelInfo)
//	defer s.Close()
//	fmt.Fprintf(s, "loaded %d rows", n)
//
// Writes to a Scope are meant for a single goroutine. The zero Scope is disabled: it
// discards writes and Close does nothing.
type Scope struct {
	st *scopeState
}

type scopeState struct {
	logger *Logger
	level  Level
	ev     *Event
	closed atomic.Bool
}

// Begin opens a scope for an event at level on l. When level is below the
// logger's floor no Event is built and the returned Scope is disabled.
func Begin(l *Logger, level Level, loc Location) Scope {
	if l == nil || !l.Enabled(level) {
		return Scope{}
	}
	return Scope{st: &scopeState{logger: l, level: level, ev: NewEvent(l, level, loc)}}
}

// At opens a scope at level located at the caller.
func (l *Logger) At(level Level) Scope {
	if !l.Enabled(level) {
		return Scope{}
	}
	return Begin(l, level, Caller(1))
}

// Enabled reports whether writes to the scope will be dispatched.
func (s Scope) Enabled() bool { return s.st != nil && !s.st.closed.Load() }

// Event returns the pending event, or nil for a disabled scope.
func (s Scope) Event() *Event {
	if s.st == nil {
		return nil
	}
	return s.st.ev
}

func (s Scope) Write(p []byte) (int, error) {
	if !s.Enabled() {
		return len(p), nil
	}
	return s.st.ev.Write(p)
}

func (s Scope) WriteString(str string) (int, error) {
	if !s.Enabled() {
		return len(str), nil
	}
	return s.st.ev.WriteString(str)
}

func (s Scope) Printf(format string, args ...any) {
	if s.Enabled() {
		s.st.ev.Printf(format, args...)
	}
}

func (s Scope) Print(args ...any) {
	if s.Enabled() {
		s.st.ev.Print(args...)
	}
}

// Close submits the event to the logger. Only the first Close of a scope
// dispatches; later calls return nil.
func (s Scope) Close() error {
	if s.st == nil || !s.st.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.st.logger.Log(s.st.level, s.st.ev)
}

// logf is the shared body of the printf-style helpers. The event location
// is the caller of the helper.
func (l *Logger) logf(level Level, format string, args []any) {
	if !l.Enabled(level) {
		return
	}
	s := Begin(l, level, Caller(2))
	s.Printf(format, args...)
	// failures already went to the observers
	_ = s.Close()
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args) }

// Fatalf logs at FATAL. It does not exit the process.
func (l *Logger) Fatalf(format string, args ...any) { l.logf(LevelFatal, format, args) }
