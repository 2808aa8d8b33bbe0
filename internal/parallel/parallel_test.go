package parallel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePositive(t *testing.T) {
	assert.Equal(t, 7, Resolve(7))
}

func TestResolveNonPositiveUsesHardwareParallelism(t *testing.T) {
	assert.GreaterOrEqual(t, Resolve(0), 1)
	assert.GreaterOrEqual(t, Resolve(-3), 1)
}

func TestSplitCoversRangeExactly(t *testing.T) {
	ranges := Split(10, 3)
	total := 0
	prevHi := 0
	for _, r := range ranges {
		assert.Equal(t, prevHi, r.Lo)
		assert.Less(t, r.Lo, r.Hi)
		total += r.Hi - r.Lo
		prevHi = r.Hi
	}
	assert.Equal(t, 10, total)
	assert.Equal(t, 10, prevHi)
}

func TestSplitFewerItemsThanWorkers(t *testing.T) {
	ranges := Split(2, 8)
	assert.Len(t, ranges, 2)
}

func TestSplitZeroItems(t *testing.T) {
	assert.Nil(t, Split(0, 4))
	assert.Nil(t, Split(-1, 4))
}
