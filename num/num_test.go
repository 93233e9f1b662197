package num_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veilindex/fibsnark/num"
)

func TestIsPowerOfTwo(t *testing.T) {
	for _, x := range []int{1, 2, 4, 1024, 1 << 30} {
		assert.True(t, num.IsPowerOfTwo(x), "x = %d", x)
	}
	for _, x := range []int{-4, -1, 0, 3, 6, 12, 1<<30 + 1} {
		assert.False(t, num.IsPowerOfTwo(x), "x = %d", x)
	}
}

func TestLog2(t *testing.T) {
	assert.Equal(t, 0, num.Log2(1))
	assert.Equal(t, 3, num.Log2(8))
	assert.Equal(t, 20, num.Log2(1<<20))

	assert.Panics(t, func() { num.Log2(3) })
	assert.Panics(t, func() { num.Log2(0) })
}
