package variant

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byteSlices(rs []Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r.Bytes)
	}
	sort.Strings(out)
	return out
}

func TestEnumerateZeroBound(t *testing.T) {
	rs := Enumerate([]byte("abc"), 0)
	require.Len(t, rs, 1)
	assert.Equal(t, "abc", string(rs[0].Bytes))
	assert.Equal(t, uint8(0), rs[0].Del)
}

func TestEnumerateEmptyString(t *testing.T) {
	rs := Enumerate([]byte(""), 2)
	require.Len(t, rs, 1)
	assert.Equal(t, "", string(rs[0].Bytes))
	assert.Equal(t, uint8(0), rs[0].Del)
}

func TestEnumerateKOne(t *testing.T) {
	rs := Enumerate([]byte("ab"), 1)
	// delete nothing: "ab"; delete position 0: "b"; delete position 1: "a"
	assert.ElementsMatch(t, []string{"ab", "b", "a"}, byteSlices(rs))
}

func TestEnumerateDedupesDuplicateVariants(t *testing.T) {
	// "aa" with k=1: deleting either position yields "a" once, not twice.
	rs := Enumerate([]byte("aa"), 1)
	assert.ElementsMatch(t, []string{"aa", "a"}, byteSlices(rs))
	for _, r := range rs {
		if string(r.Bytes) == "a" {
			assert.Equal(t, uint8(1), r.Del)
		}
	}
}

func TestEnumerateKExceedsLength(t *testing.T) {
	rs := Enumerate([]byte("ab"), 5)
	assert.ElementsMatch(t, []string{"ab", "a", "b", ""}, byteSlices(rs))
}

func TestEnumerateMinimumDelCountTracked(t *testing.T) {
	// "abc" at k=2: variant "c" is reachable by deleting {a,b} (2 deletions)
	// but not fewer, while variant "bc" needs only 1 deletion.
	rs := Enumerate([]byte("abc"), 2)
	byVariant := map[string]uint8{}
	for _, r := range rs {
		byVariant[string(r.Bytes)] = r.Del
	}
	require.Contains(t, byVariant, "bc")
	assert.Equal(t, uint8(1), byVariant["bc"])
	require.Contains(t, byVariant, "c")
	assert.Equal(t, uint8(2), byVariant["c"])
}
