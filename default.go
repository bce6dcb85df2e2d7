package plog

import "sync"

var defaultRegistry = sync.OnceValue(NewRegistry)

// Default returns the process-wide registry, creating it with its root
// logger and console sink on first use. It lives for the process lifetime.
func Default() *Registry { return defaultRegistry() }
