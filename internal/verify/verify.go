// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package verify implements the banded Levenshtein verifier: given a
// candidate pair of byte strings and a bound k, it computes the exact
// edit distance restricted to a diagonal band of width 2k+1, exiting
// early once the band's minimum cannot reach k. Candidate generation
// (symdel/internal/mergejoin) only guarantees a *sound* filter; this is
// the stage that turns a candidate into a verified pair.
package verify

// infinity stands in for "outside the band / provably too far"; k is
// bounded by 255 (del_count's 8-bit range) so this value never collides
// with a real in-band distance.
const infinity = 1<<31 - 1

// Distance computes the Levenshtein distance between a and b, or
// reports ok=false if the distance provably exceeds k. Only DP cells
// within k of the diagonal are ever computed; a row whose minimum
// already exceeds k short-circuits the remaining rows.
func Distance(a, b []byte, k int) (d int, ok bool) {
	if k < 0 {
		return 0, false
	}

	la, lb := len(a), len(b)
	if abs(la-lb) > k {
		return 0, false
	}

	prev := make([]int, lb+1)
	cur := make([]int, lb+1)

	for j := 0; j <= lb; j++ {
		if j <= k {
			prev[j] = j
		} else {
			prev[j] = infinity
		}
	}

	for i := 1; i <= la; i++ {
		lo := i - k
		if lo < 0 {
			lo = 0
		}
		hi := i + k
		if hi > lb {
			hi = lb
		}

		for j := 0; j < lo; j++ {
			cur[j] = infinity
		}
		for j := hi + 1; j <= lb; j++ {
			cur[j] = infinity
		}

		rowMin := infinity
		if lo == 0 {
			cur[0] = i
			if cur[0] < rowMin {
				rowMin = cur[0]
			}
			lo = 1
		}

		for j := lo; j <= hi; j++ {
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
			if best < rowMin {
				rowMin = best
			}
		}

		if rowMin > k {
			return 0, false
		}

		prev, cur = cur, prev
	}

	if prev[lb] > k {
		return 0, false
	}
	return prev[lb], true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
