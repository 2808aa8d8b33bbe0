package vtable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshedden/symdel/internal/collection"
)

func mkCollection(t *testing.T, strs ...string) *collection.Collection {
	t.Helper()
	bs := make([][]byte, len(strs))
	for i, s := range strs {
		bs[i] = []byte(s)
	}
	c, err := collection.New(bs)
	require.NoError(t, err)
	return c
}

func TestBuildSortedByVariantBytes(t *testing.T) {
	c := mkCollection(t, "fizz", "fuzz", "buzz")
	tab, err := Build(c, 1, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, tab.Records)

	for i := 1; i < len(tab.Records); i++ {
		prevBytes := tab.Bytes(tab.Records[i-1])
		curBytes := tab.Bytes(tab.Records[i])
		if string(prevBytes) == string(curBytes) {
			assert.LessOrEqual(t, tab.Records[i-1].SourceIdx, tab.Records[i].SourceIdx)
			continue
		}
		assert.LessOrEqual(t, string(prevBytes), string(curBytes))
	}
}

func TestBuildEmptyCollection(t *testing.T) {
	c := mkCollection(t)
	tab, err := Build(c, 2, Options{})
	require.NoError(t, err)
	assert.Empty(t, tab.Records)
}

func TestBuildContainsSourceVariant(t *testing.T) {
	c := mkCollection(t, "abc")
	tab, err := Build(c, 0, Options{})
	require.NoError(t, err)
	require.Len(t, tab.Records, 1)
	assert.Equal(t, "abc", string(tab.Bytes(tab.Records[0])))
	assert.Equal(t, uint32(0), tab.Records[0].SourceIdx)
}

func TestBuildWithWorkersMatchesSingleThreaded(t *testing.T) {
	c := mkCollection(t, "fizz", "fuzz", "buzz", "bar", "baz", "foo")
	single, err := Build(c, 2, Options{Workers: 1})
	require.NoError(t, err)
	multi, err := Build(c, 2, Options{Workers: 4})
	require.NoError(t, err)

	toSet := func(tab *Table) map[string]bool {
		out := map[string]bool{}
		for _, r := range tab.Records {
			out[fmt.Sprintf("%s|%d|%d", tab.Bytes(r), r.SourceIdx, r.Del)] = true
		}
		return out
	}
	assert.Equal(t, len(single.Records), len(multi.Records))
	assert.Equal(t, toSet(single), toSet(multi))
}

func TestBuildMinComplexityFiltersLowDiversity(t *testing.T) {
	c := mkCollection(t, "aaaaaa", "acgtac")
	filtered, err := Build(c, 1, Options{MinComplexity: 3})
	require.NoError(t, err)
	unfiltered, err := Build(c, 1, Options{})
	require.NoError(t, err)

	assert.Less(t, len(filtered.Records), len(unfiltered.Records))
	for _, r := range filtered.Records {
		assert.NotEqual(t, uint32(0), r.SourceIdx, "low-complexity source 0 (\"aaaaaa\") should be excluded")
	}
}
