package plog

import "errors"

var (
	// ErrNoName is returned by Builder.Build when no logger name was set.
	ErrNoName = errors.New("plog: logger name is required")
	// ErrReservedName is returned when registering a logger under the root name.
	ErrReservedName = errors.New("plog: logger name is reserved")
	// ErrSinkClosed is reported by sinks whose medium has been closed.
	ErrSinkClosed = errors.New("plog: sink closed")
	// ErrStaleClose is reported by FileSink.Reopen when the new file is open
	// but the previous one failed to close.
	ErrStaleClose = errors.New("plog: closing previous file failed")
	// ErrUnknownLevel matches errors returned by ParseLevel.
	ErrUnknownLevel = errors.New("plog: unknown level")
)
