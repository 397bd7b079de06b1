package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevealOrder(t *testing.T) {
	t.Parallel()
	order := RevealOrder(8)
	assert.Equal(t, []int{2, 6, 3, 7, 1, 5, 0, 4}, order)

	seen := make(map[int]bool)
	for _, idx := range order {
		assert.False(t, seen[idx], "reveal order must not repeat an index")
		seen[idx] = true
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 8)
	}
	assert.Len(t, order, 8)
}

func TestNextHintIndex(t *testing.T) {
	t.Parallel()
	idx, ok := NextHintIndex(8, 0)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = NextHintIndex(8, 8)
	assert.False(t, ok)
}
