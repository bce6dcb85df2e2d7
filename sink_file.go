package plog

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/multierr"
)

// FileSink writes to a single file. The file is truncated whenever it is
// (re)opened; rotation is left to an external operator that moves the file
// away and calls Reopen.
type FileSink struct {
	*BaseSink

	path string

	// mu orders writes against Reopen and Close.
	mu sync.Mutex
	f  *os.File
}

// NewFileSink opens path for writing and returns a sink named after it.
func NewFileSink(path string) (*FileSink, error) {
	s := &FileSink{BaseSink: NewBaseSink(path), path: path}
	if err := s.Reopen(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the file path the sink (re)opens.
func (s *FileSink) Path() string { return s.path }

// Reopen closes the current file, if any, and opens the path again. When
// the open fails the sink stays closed and writes report ErrSinkClosed
// until a later Reopen succeeds.
//
// The new file is in use whenever the error is nil or matches
// ErrStaleClose; the latter only reports that closing the previous file
// failed.
func (s *FileSink) Reopen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var closeErr error
	if s.f != nil {
		if err := s.f.Close(); err != nil {
			closeErr = fmt.Errorf("%w: %w", ErrStaleClose, err)
		}
		s.f = nil
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return multierr.Append(closeErr, err)
	}
	s.f = f
	return closeErr
}

// Close closes the file. Closing a closed sink is a no-op.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

// Sync flushes the file to stable storage.
func (s *FileSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return ErrSinkClosed
	}
	return s.f.Sync()
}

func (s *FileSink) Log(l *Logger, level Level, ev *Event) error {
	return s.Emit(l, level, ev, s.write)
}

func (s *FileSink) write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return 0, ErrSinkClosed
	}
	return s.f.Write(p)
}
