//go:build !linux

package gid

// Thread is not resolvable without gettid; it always returns 0.
func Thread() uint64 { return 0 }
