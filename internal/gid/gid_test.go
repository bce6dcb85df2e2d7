package gid

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoroutine_DistinctPerGoroutine(t *testing.T) {
	self := Goroutine()
	require.NotZero(t, self)
	assert.Equal(t, self, Goroutine(), "stable within one goroutine")

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		other = make(map[uint64]struct{})
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := Goroutine()
			mu.Lock()
			other[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, other, 8)
	assert.NotContains(t, other, self)
}

func TestThread(t *testing.T) {
	if runtime.GOOS != "linux" {
		assert.Zero(t, Thread())
		return
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	id := Thread()
	assert.NotZero(t, id)
	assert.Equal(t, id, Thread())
}
