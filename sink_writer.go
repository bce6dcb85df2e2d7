package plog

import (
	"io"
	"os"
	"sync"
)

// WriterSink writes each rendered event to an io.Writer in a single Write
// call, serialized by its own lock.
type WriterSink struct {
	*BaseSink

	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink named name that writes to w.
func NewWriterSink(name string, w io.Writer) *WriterSink {
	return &WriterSink{BaseSink: NewBaseSink(name), w: w}
}

// NewConsoleSink returns a sink writing to standard output.
func NewConsoleSink() *WriterSink { return NewWriterSink("console", os.Stdout) }

func (s *WriterSink) Log(l *Logger, level Level, ev *Event) error {
	return s.Emit(l, level, ev, s.write)
}

func (s *WriterSink) write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}
