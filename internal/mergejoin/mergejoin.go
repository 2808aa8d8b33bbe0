// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package mergejoin implements the sort-merge join over two variant
// tables (vtable.Table), replacing the historical symdel hash-join with
// lock-step co-iteration of two lexicographically sorted sequences.
// Equal variant-byte runs are combined into the Cartesian product of
// their source indices (the upper triangle only, for within-set mode),
// each emitted candidate carrying the combined deletion count so the
// verifier can be skipped for candidates that cannot possibly reach the
// bound.
package mergejoin

import (
	"bytes"
	"sort"

	"github.com/kshedden/symdel/internal/vtable"
)

// Candidate is one candidate pair produced by the join: source indices
// i (from table A) and j (from table B), and the combined number of
// deletions (Del_a + Del_b) that produced the shared variant. Two
// strings within distance k always share some variant reached by at
// most k deletions on each side, so a candidate whose DelSum exceeds
// 2k is not needed to find that pair and may be skipped before
// verification.
type Candidate struct {
	I, J   uint32
	DelSum int
}

// Join co-iterates a and b in lock-step on variant bytes, emitting a
// candidate for every pair of records sharing a variant. When within is
// true, a and b are the same table and only the i<j half of each run's
// Cartesian product is emitted (within-set mode never reports i==j or
// the mirrored j<i pair).
//
// emit is called once per candidate; it may be called many times for
// the same (i, j) pair across different shared variants; the caller is
// responsible for subsequent deduplication (internal/canon).
func Join(a, b *vtable.Table, within bool, emit func(Candidate)) {
	JoinRange(a, b, Part{AHi: len(a.Records), BHi: len(b.Records)}, within, emit)
}

// Part is a disjoint slice of the join's key space: the half-open
// record ranges [ALo, AHi) in table A and [BLo, BHi) in table B that
// hold the same contiguous span of variant bytes. Partition boundaries
// never split an equal-byte run, so joining each part independently and
// concatenating the outputs is equivalent to one full Join.
type Part struct {
	ALo, AHi int
	BLo, BHi int
}

// Partitions splits the join of a and b into at most parts Parts for
// independent processing. Split keys are taken at balanced record-index
// positions of a and mapped into both tables by lower-bound search, so
// each run of equal variant bytes lands entirely inside one part.
func Partitions(a, b *vtable.Table, parts int) []Part {
	na, nb := len(a.Records), len(b.Records)
	if na == 0 || nb == 0 {
		return nil
	}
	if parts > na {
		parts = na
	}
	if parts <= 1 {
		return []Part{{AHi: na, BHi: nb}}
	}

	out := make([]Part, 0, parts)
	aLo, bLo := 0, 0
	var prevKey []byte
	for pi := 1; pi < parts; pi++ {
		key := a.Bytes(a.Records[pi*na/parts])
		if prevKey != nil && bytes.Equal(key, prevKey) {
			continue
		}
		prevKey = key

		aHi := lowerBound(a, aLo, key)
		bHi := lowerBound(b, bLo, key)
		if aHi > aLo && bHi > bLo {
			out = append(out, Part{ALo: aLo, AHi: aHi, BLo: bLo, BHi: bHi})
		}
		aLo, bLo = aHi, bHi
	}
	if aLo < na && bLo < nb {
		out = append(out, Part{ALo: aLo, AHi: na, BLo: bLo, BHi: nb})
	}
	return out
}

// lowerBound returns the first index >= lo whose variant bytes compare
// >= key.
func lowerBound(t *vtable.Table, lo int, key []byte) int {
	n := len(t.Records)
	return lo + sort.Search(n-lo, func(i int) bool {
		return bytes.Compare(t.Bytes(t.Records[lo+i]), key) >= 0
	})
}

// JoinRange is Join restricted to one Part of the key space.
func JoinRange(a, b *vtable.Table, p Part, within bool, emit func(Candidate)) {
	ra, rb := a.Records, b.Records
	na, nb := p.AHi, p.BHi

	ia, ib := p.ALo, p.BLo
	for ia < na && ib < nb {
		va := a.Bytes(ra[ia])
		vb := b.Bytes(rb[ib])
		c := bytes.Compare(va, vb)
		switch {
		case c < 0:
			ia++
		case c > 0:
			ib++
		default:
			// Equal variant bytes: gather the full runs on each
			// side before forming the product, since a run may
			// span many records.
			runA := runEnd(a, ia)
			runB := runEnd(b, ib)

			for x := ia; x < runA; x++ {
				for y := ib; y < runB; y++ {
					ra_, rb_ := a.Records[x], b.Records[y]
					if within {
						// a and b are the same table and runA==runB
						// here, so every unordered pair in the run
						// is visited twice (once with roles
						// swapped); requiring I<J keeps exactly one
						// of the two and drops I==J.
						if ra_.SourceIdx >= rb_.SourceIdx {
							continue
						}
					}
					emit(Candidate{
						I:      ra_.SourceIdx,
						J:      rb_.SourceIdx,
						DelSum: int(ra_.Del) + int(rb_.Del),
					})
				}
			}

			ia = runA
			ib = runB
		}
	}
}

// runEnd returns the index one past the contiguous run of records in t
// starting at i that share the same variant bytes as t.Records[i].
func runEnd(t *vtable.Table, i int) int {
	v := t.Bytes(t.Records[i])
	j := i + 1
	for j < len(t.Records) && bytes.Equal(t.Bytes(t.Records[j]), v) {
		j++
	}
	return j
}
