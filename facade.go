package plog

// Facade helpers over the process-wide registry.
// Usage: plog.Infof("listening on %s", addr)

// Root returns the root logger of Default().
func Root() *Logger { return Default().Root() }

// Get returns the named logger of Default(), or its root logger.
func Get(name string) *Logger { return Default().Get(name) }

func Debugf(format string, args ...any) { Root().logf(LevelDebug, format, args) }
func Infof(format string, args ...any)  { Root().logf(LevelInfo, format, args) }
func Warnf(format string, args ...any)  { Root().logf(LevelWarn, format, args) }
func Errorf(format string, args ...any) { Root().logf(LevelError, format, args) }
func Fatalf(format string, args ...any) { Root().logf(LevelFatal, format, args) }
