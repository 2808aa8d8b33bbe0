// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package complexity implements the optional, off-by-default
// low-complexity prefilter used by the variant table builder
// (Options.MinComplexity in the root symdel package). A string whose
// adjacent-byte-pair diversity falls below the caller's threshold (e.g.
// a long homopolymer run) is treated as too low-complexity to be a
// useful join key, since such a string's deletion neighbourhood
// collides with almost everything and produces candidate fan-out
// without discriminative value.
//
// This is strictly an opt-in approximation: when MinComplexity is zero
// (the default), every string participates regardless of complexity,
// preserving the exact, non-probabilistic semantics the core promises.
package complexity

// DistinctPairs returns the number of distinct adjacent byte pairs in
// seq. A string of length < 2 has zero adjacent pairs.
func DistinctPairs(seq []byte) int {
	if len(seq) < 2 {
		return 0
	}
	seen := make(map[uint16]struct{}, len(seq)-1)
	for i := 1; i < len(seq); i++ {
		key := uint16(seq[i-1])<<8 | uint16(seq[i])
		seen[key] = struct{}{}
	}
	return len(seen)
}

// Passes reports whether seq meets the minimum distinct-adjacent-pair
// threshold. A threshold of zero (or below) always passes, making the
// filter a no-op unless explicitly configured.
func Passes(seq []byte, minDistinctPairs int) bool {
	if minDistinctPairs <= 0 {
		return true
	}
	return DistinctPairs(seq) >= minDistinctPairs
}
