package plog

import (
	"strings"
)

// Level is the severity of a log call. Levels are totally ordered and
// compared numerically.
type Level int8

const (
	LevelUnknown Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the upper-case name of the level. Values outside the known
// range render as "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to its Level, ignoring case and surrounding
// space. "warning" is accepted as an alias of WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unknown":
		return LevelUnknown, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelUnknown, &levelError{s}
	}
}

type levelError struct{ name string }

func (e *levelError) Error() string { return "plog: unknown level " + `"` + e.name + `"` }

func (e *levelError) Is(target error) bool { return target == ErrUnknownLevel }
