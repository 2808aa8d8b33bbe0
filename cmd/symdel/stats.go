// Copyright 2017, Kerby Shedden and the Muscato contributors.

package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/willf/bloom"
)

// neighbourCounts tallies, for each query index referenced by i, how
// many result rows it appears in. queryLen bounds the histogram to
// indices that actually exist in the query collection (a pair can only
// ever name indices below that).
func neighbourCounts(i []uint32, queryLen int) []int {
	counts := make([]int, queryLen)
	for _, idx := range i {
		if int(idx) < queryLen {
			counts[idx]++
		}
	}
	return counts
}

// writeStats reports a histogram of neighbour-count -> number of query
// strings with that many neighbours.
func writeStats(w io.Writer, counts []int) {
	hist := map[int]int{}
	for _, c := range counts {
		hist[c]++
	}

	keys := make([]int, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	fmt.Fprintln(w, "neighbour-count\tnum-strings")
	for _, k := range keys {
		fmt.Fprintf(w, "%d\t%d\n", k, hist[k])
	}
}

// writeUnmatched reports the indices of query strings with zero
// neighbours: a Bloom filter is populated with every matched index,
// then every query index is tested against it. A Bloom false positive
// leaves an unmatched index out of the report; a matched index is
// never reported.
func writeUnmatched(w io.Writer, i []uint32, queryLen int, base uint32) {
	bf := bloom.New(uint(queryLen+1)*8, 5)
	for _, idx := range i {
		bf.Add(indexKey(idx))
	}

	for idx := 0; idx < queryLen; idx++ {
		if !bf.Test(indexKey(uint32(idx))) {
			fmt.Fprintf(w, "%d\n", uint32(idx)+base)
		}
	}
}

func indexKey(idx uint32) []byte {
	return strconv.AppendUint(nil, uint64(idx), 10)
}
