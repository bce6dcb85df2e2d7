package plog

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendInts(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -1500, math.MaxInt64, math.MinInt64} {
		assert.Equal(t, strconv.FormatInt(v, 10), string(appendInt64(nil, v)))
	}
	for _, v := range []uint64{0, 7, 1 << 40, math.MaxUint64} {
		assert.Equal(t, strconv.FormatUint(v, 10), string(appendUint64([]byte{}, v)))
	}
	assert.Equal(t, "id=12", string(appendUint64([]byte("id="), 12)))
}
