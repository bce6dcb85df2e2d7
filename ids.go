package plog

import (
	"sync/atomic"

	"github.com/trickstertwo/plog/internal/gid"
)

// IDProvider supplies the thread and task identifiers captured on each
// Event. Implementations must be safe for concurrent use.
type IDProvider interface {
	ThreadID() uint64
	TaskID() uint64
}

// IDProviderFuncs adapts two plain functions to IDProvider. A nil func
// yields 0.
type IDProviderFuncs struct {
	Thread func() uint64
	Task   func() uint64
}

func (p IDProviderFuncs) ThreadID() uint64 {
	if p.Thread == nil {
		return 0
	}
	return p.Thread()
}

func (p IDProviderFuncs) TaskID() uint64 {
	if p.Task == nil {
		return 0
	}
	return p.Task()
}

// runtimeIDs reports the OS thread id and the goroutine id.
var runtimeIDs IDProvider = IDProviderFuncs{Thread: gid.Thread, Task: gid.Goroutine}

var idProvider atomic.Pointer[IDProvider]

// SetIDProvider replaces the process-wide id provider. Passing nil restores
// the runtime-backed default.
func SetIDProvider(p IDProvider) {
	if p == nil {
		idProvider.Store(nil)
		return
	}
	idProvider.Store(&p)
}

func currentIDs() IDProvider {
	if p := idProvider.Load(); p != nil {
		return *p
	}
	return runtimeIDs
}
