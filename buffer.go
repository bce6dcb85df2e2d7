package plog

import "sync"

// buffer is a reusable render target.
type buffer struct{ b []byte }

const (
	defaultBufferSize = 512
	maxPooledBuffer   = 64 * 1024
)

var bufPool = sync.Pool{New: func() any { return &buffer{b: make([]byte, 0, defaultBufferSize)} }}

func getBuf() *buffer {
	buf := bufPool.Get().(*buffer)
	buf.b = buf.b[:0]
	return buf
}

func putBuf(buf *buffer) {
	// don't retain buffers grown by an unusually large message
	if cap(buf.b) <= maxPooledBuffer {
		bufPool.Put(buf)
	}
}
