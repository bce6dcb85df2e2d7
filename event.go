package plog

import (
	"fmt"
	"runtime"
	"time"

	"github.com/trickstertwo/xclock"
)

// processStart anchors the elapsed counter rendered by %r.
var processStart = xclock.Now()

// Location is the source position of a log call.
type Location struct {
	File string
	Line int
}

// Caller reports the Location of the function skip frames above the caller
// of Caller; Caller(0) is the line that calls Caller.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???"}
	}
	return Location{File: file, Line: line}
}

// Event is the snapshot of a single log call. Its context is fixed at
// construction; only the message content grows, and only until the event
// is handed to Logger.Log. An Event is not safe for concurrent writes.
type Event struct {
	logger   *Logger
	level    Level
	loc      Location
	at       time.Time
	elapsed  time.Duration
	threadID uint64
	taskID   uint64
	content  []byte
}

// NewEvent captures the context of a log call: wall-clock time from xclock,
// time elapsed since process start, and the current thread and task ids.
func NewEvent(logger *Logger, level Level, loc Location) *Event {
	at := xclock.Now()
	elapsed := at.Sub(processStart)
	if elapsed < 0 {
		elapsed = 0
	}
	ids := currentIDs()
	return &Event{
		logger:   logger,
		level:    level,
		loc:      loc,
		at:       at,
		elapsed:  elapsed,
		threadID: ids.ThreadID(),
		taskID:   ids.TaskID(),
	}
}

func (e *Event) Logger() *Logger        { return e.logger }
func (e *Event) Level() Level           { return e.level }
func (e *Event) File() string           { return e.loc.File }
func (e *Event) Line() int              { return e.loc.Line }
func (e *Event) Location() Location     { return e.loc }
func (e *Event) Time() time.Time        { return e.at }
func (e *Event) Elapsed() time.Duration { return e.elapsed }
func (e *Event) ThreadID() uint64       { return e.threadID }
func (e *Event) TaskID() uint64         { return e.taskID }

// Content returns the message written so far.
func (e *Event) Content() string { return string(e.content) }

// Write appends p to the message. It never fails.
func (e *Event) Write(p []byte) (int, error) {
	e.content = append(e.content, p...)
	return len(p), nil
}

// WriteString appends s to the message. It never fails.
func (e *Event) WriteString(s string) (int, error) {
	e.content = append(e.content, s...)
	return len(s), nil
}

// Printf appends a fmt-formatted string to the message.
func (e *Event) Printf(format string, args ...any) {
	e.content = fmt.Appendf(e.content, format, args...)
}

// Print appends the fmt.Sprint rendering of args to the message.
func (e *Event) Print(args ...any) {
	e.content = fmt.Append(e.content, args...)
}

// appendContent lets renderers copy the message without an intermediate string.
func (e *Event) appendContent(dst []byte) []byte { return append(dst, e.content...) }
