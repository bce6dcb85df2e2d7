// Package bridge holds the helpers shared by the sinks that forward plog
// events to another logging library.
package bridge

import (
	"bytes"

	"github.com/trickstertwo/plog"
)

// LoggerKey is the attribute carrying the plog logger name.
const LoggerKey = "logger"

// Message returns the rendered line without its trailing line break. Target
// libraries terminate records themselves.
func Message(p []byte) string {
	p = bytes.TrimSuffix(p, []byte("\n"))
	p = bytes.TrimSuffix(p, []byte("\r"))
	return string(p)
}

// LoggerName is the name of the logger dispatching ev.
func LoggerName(l *plog.Logger, ev *plog.Event) string {
	if l == nil && ev != nil {
		l = ev.Logger()
	}
	if l == nil {
		return ""
	}
	return l.Name()
}
