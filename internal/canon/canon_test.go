package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSortsAndDedupes(t *testing.T) {
	res := Build([]Pair{
		{I: 1, J: 2, D: 1},
		{I: 0, J: 1, D: 1},
		{I: 1, J: 2, D: 1}, // duplicate via a second shared variant
		{I: 0, J: 2, D: 2},
	})

	assert.Equal(t, []uint32{0, 0, 1}, res.I)
	assert.Equal(t, []uint32{1, 2, 2}, res.J)
	assert.Equal(t, []uint8{1, 2, 1}, res.D)
}

func TestBuildEmpty(t *testing.T) {
	res := Build(nil)
	assert.Empty(t, res.I)
	assert.Empty(t, res.J)
	assert.Empty(t, res.D)
}
