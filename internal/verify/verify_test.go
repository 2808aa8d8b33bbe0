package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceIdentical(t *testing.T) {
	d, ok := Distance([]byte("fizz"), []byte("fizz"), 2)
	assert.True(t, ok)
	assert.Equal(t, 0, d)
}

func TestDistanceOneSubstitution(t *testing.T) {
	d, ok := Distance([]byte("fizz"), []byte("fuzz"), 1)
	assert.True(t, ok)
	assert.Equal(t, 1, d)
}

func TestDistanceExceedsBoundRejected(t *testing.T) {
	_, ok := Distance([]byte("fizz"), []byte("buzz"), 1)
	assert.False(t, ok)
}

func TestDistanceAtBoundAccepted(t *testing.T) {
	d, ok := Distance([]byte("fizz"), []byte("buzz"), 2)
	assert.True(t, ok)
	assert.Equal(t, 2, d)
}

func TestDistanceLengthGapRejectsWithoutDP(t *testing.T) {
	_, ok := Distance([]byte("a"), []byte("abcdefgh"), 2)
	assert.False(t, ok)
}

func TestDistanceEmptyStrings(t *testing.T) {
	d, ok := Distance([]byte(""), []byte("a"), 1)
	assert.True(t, ok)
	assert.Equal(t, 1, d)

	d, ok = Distance([]byte(""), []byte(""), 0)
	assert.True(t, ok)
	assert.Equal(t, 0, d)
}

func TestDistanceInsertionDeletion(t *testing.T) {
	d, ok := Distance([]byte("foo"), []byte("fooo"), 1)
	assert.True(t, ok)
	assert.Equal(t, 1, d)
}

func TestDistanceNegativeBound(t *testing.T) {
	_, ok := Distance([]byte("a"), []byte("a"), -1)
	assert.False(t, ok)
}

func TestDistanceMatchesBruteForce(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"flaw", "lawn"},
		{"gumbo", "gambol"},
		{"", "abc"},
		{"abc", "abc"},
		{"abcdef", "azced"},
	}
	for _, p := range pairs {
		want := bruteForce([]byte(p[0]), []byte(p[1]))
		d, ok := Distance([]byte(p[0]), []byte(p[1]), want)
		assert.True(t, ok, "pair %v should be accepted at its exact distance", p)
		assert.Equal(t, want, d, "pair %v", p)

		if want > 0 {
			_, ok := Distance([]byte(p[0]), []byte(p[1]), want-1)
			assert.False(t, ok, "pair %v should be rejected below its exact distance", p)
		}
	}
}

// bruteForce computes full, unbanded Levenshtein distance for test
// oracle purposes.
func bruteForce(a, b []byte) int {
	la, lb := len(a), len(b)
	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		cur[0] = i
		for j := 1; j <= lb; j++ {
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub++
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			best := sub
			if del < best {
				best = del
			}
			if ins < best {
				best = ins
			}
			cur[j] = best
		}
		prev, cur = cur, prev
	}
	return prev[lb]
}
