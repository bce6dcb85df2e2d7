package plog

import (
	"sync"
	"testing"
	"time"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xclock/adapter/frozen"
)

// freezeClock pins xclock for the duration of the test.
func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	old := xclock.Default()
	xclock.SetDefault(frozen.New(at))
	t.Cleanup(func() { xclock.SetDefault(old) })
}

// fixedIDs pins the thread and task ids stamped on new events.
func fixedIDs(t *testing.T, thread, task uint64) {
	t.Helper()
	SetIDProvider(IDProviderFuncs{
		Thread: func() uint64 { return thread },
		Task:   func() uint64 { return task },
	})
	t.Cleanup(func() { SetIDProvider(nil) })
}

func newTestEvent(l *Logger, level Level, msg string) *Event {
	ev := NewEvent(l, level, Location{File: "main.go", Line: 42})
	_, _ = ev.WriteString(msg)
	return ev
}

// recordingSink keeps every rendered line; when err is set it fails instead.
type recordingSink struct {
	*BaseSink

	mu    sync.Mutex
	lines []string
	err   error
}

func newRecordingSink(name string) *recordingSink {
	return &recordingSink{BaseSink: NewBaseSink(name)}
}

func (s *recordingSink) Log(l *Logger, level Level, ev *Event) error {
	return s.Emit(l, level, ev, func(p []byte) (int, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.err != nil {
			return 0, s.err
		}
		s.lines = append(s.lines, string(p))
		return len(p), nil
	})
}

func (s *recordingSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

func (s *recordingSink) failWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }
