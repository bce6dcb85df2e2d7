// Package gid resolves the identifiers plog stamps on every event: the OS
// thread running the caller and the goroutine (cooperative task) id.
package gid

import (
	"bytes"
	"runtime"
	"strconv"
)

var goroutinePrefix = []byte("goroutine ")

// Goroutine returns the id of the calling goroutine, or 0 when the runtime
// stack header cannot be parsed.
func Goroutine() uint64 {
	var tmp [64]byte
	b := tmp[:runtime.Stack(tmp[:], false)]
	b = bytes.TrimPrefix(b, goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	} else {
		return 0
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
