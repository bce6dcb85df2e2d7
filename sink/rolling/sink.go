// Package rolling provides a file sink that rotates by size and prunes old
// files by count and age, backed by lumberjack.
package rolling

import (
	"errors"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/trickstertwo/plog"
)

// ErrNoPath is returned by New when Options.Path is empty.
var ErrNoPath = errors.New("plog/rolling: path is required")

// Options configures rotation. Zero values fall back to lumberjack's
// defaults: 100 MB files, every backup kept, no age limit.
type Options struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	LocalTime  bool // name backups with local instead of UTC time
}

// Sink writes rendered events to Options.Path. The file is opened on the
// first write and rotated once a write would push it past MaxSizeMB.
type Sink struct {
	*plog.BaseSink

	mu     sync.Mutex
	lj     *lumberjack.Logger
	closed bool
}

// New returns a sink named after the path.
func New(opts Options) (*Sink, error) {
	if opts.Path == "" {
		return nil, ErrNoPath
	}
	return &Sink{
		BaseSink: plog.NewBaseSink(opts.Path),
		lj: &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
			LocalTime:  opts.LocalTime,
		},
	}, nil
}

// Path returns the active file path.
func (s *Sink) Path() string { return s.lj.Filename }

func (s *Sink) Log(l *plog.Logger, level plog.Level, ev *plog.Event) error {
	return s.Emit(l, level, ev, s.write)
}

func (s *Sink) write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, plog.ErrSinkClosed
	}
	return s.lj.Write(p)
}

// Reopen moves the current file to a timestamped backup and starts a new
// one. It also revives a closed sink.
func (s *Sink) Reopen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = false
	return s.lj.Rotate()
}

// Close closes the current file. Later writes fail with
// plog.ErrSinkClosed until Reopen.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.lj.Close()
}
