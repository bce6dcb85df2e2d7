package plog

import (
	"maps"
	"slices"
	"sync"
)

// RootName is the name of the logger every Registry is created with.
const RootName = "root"

// Registry is a directory of named loggers with a root logger that always
// exists. Lookups of unknown names fall back to the root; nothing is
// created implicitly.
type Registry struct {
	root *Logger

	mu      sync.RWMutex
	loggers map[string]*Logger
}

// NewRegistry returns a registry whose root logger has level DEBUG, the
// DefaultPattern pipeline and one console sink.
func NewRegistry() *Registry {
	root := NewLogger(RootName)
	root.Attach(NewConsoleSink())
	return &Registry{root: root, loggers: make(map[string]*Logger)}
}

// Root returns the root logger.
func (r *Registry) Root() *Logger { return r.root }

// Get returns the logger registered under name, or the root logger.
func (r *Registry) Get(name string) *Logger {
	if l, ok := r.Lookup(name); ok {
		return l
	}
	return r.root
}

// Lookup returns the logger registered under name and whether it exists.
// The root logger is found under RootName.
func (r *Registry) Lookup(name string) (*Logger, bool) {
	if name == RootName {
		return r.root, true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.loggers[name]
	return l, ok
}

// Register adds l under its name, replacing any logger of the same name.
// The root name is reserved; configure the root through Root instead.
func (r *Registry) Register(l *Logger) error {
	if l == nil || l.Name() == "" {
		return ErrNoName
	}
	if l.Name() == RootName {
		return ErrReservedName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers[l.Name()] = l
	return nil
}

// Unregister removes the logger registered under name and reports whether
// there was one.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.loggers[name]; !ok {
		return false
	}
	delete(r.loggers, name)
	return true
}

// Names returns the registered logger names in sorted order, without the
// root.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.loggers))
}
