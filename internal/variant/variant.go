// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package variant implements the deletion-variant enumerator: for a
// byte string s and bound k, it produces the deletion neighbourhood
// Delta_k(s), each distinct variant tagged with the minimum number of
// deletions that produces it. Generation is breadth first, one
// deletion per layer, so the first time a byte sequence is seen is
// necessarily at its minimum deletion count and dedupe-on-first-sight
// records the right del_count.
package variant

// Record is one entry of a deletion neighbourhood: a distinct byte
// sequence together with the minimum number of deletions that produced
// it from the source string.
type Record struct {
	Bytes []byte
	Del   uint8
}

// Enumerate returns Delta_k(s): every distinct byte sequence obtainable
// by deleting 0..k positions from s, each tagged with its minimum
// deletion count. k is capped at len(s) internally; deleting more
// positions than the string has is indistinguishable from deleting all
// of them.
func Enumerate(s []byte, k uint8) []Record {
	limit := int(k)
	if limit > len(s) {
		limit = len(s)
	}

	// depth 0 is the string itself; BFS then peels one position at a
	// time, so the first visit to any byte sequence is its minimum
	// deletion count.
	seen := make(map[string]struct{}, 1)
	orig := append([]byte(nil), s...)
	seen[string(orig)] = struct{}{}

	results := make([]Record, 0, estimateCount(len(s), limit))
	results = append(results, Record{Bytes: orig, Del: 0})

	type item struct {
		b     []byte
		depth uint8
	}
	queue := []item{{orig, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if int(cur.depth) >= limit {
			continue
		}

		for i := range cur.b {
			next := make([]byte, 0, len(cur.b)-1)
			next = append(next, cur.b[:i]...)
			next = append(next, cur.b[i+1:]...)

			key := string(next)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			nd := cur.depth + 1
			results = append(results, Record{Bytes: next, Del: nd})
			queue = append(queue, item{next, nd})
		}
	}

	return results
}

// estimateCount gives a cheap upper bound on the number of distinct
// variants, used only to pre-size the result slice. It is the binomial
// sum sum_{d=0}^{limit} C(l, d), clamped to avoid overflow on large
// inputs (the clamp only affects the pre-allocation size, not
// correctness).
func estimateCount(l, limit int) int {
	if limit == 0 {
		return 1
	}
	total := 1
	term := 1
	for d := 1; d <= limit && d <= l; d++ {
		term = term * (l - d + 1) / d
		total += term
		if total > 1<<20 {
			return 1 << 20
		}
	}
	return total
}
