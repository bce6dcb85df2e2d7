//go:build linux

package gid

import "golang.org/x/sys/unix"

// Thread returns the kernel id of the OS thread the caller is running on.
// Goroutines migrate between threads, so the value is only a snapshot.
func Thread() uint64 { return uint64(unix.Gettid()) }
