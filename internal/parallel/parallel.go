// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package parallel provides the small amount of shared machinery the
// parallel driver needs to decompose work across a worker pool: picking
// a worker count, and splitting a range of indices into contiguous,
// roughly-balanced chunks, reusable by every stage of the pipeline.
package parallel

import "runtime"

// Resolve returns workers if positive, otherwise the host's hardware
// parallelism (never less than 1).
func Resolve(workers int) int {
	if workers > 0 {
		return workers
	}
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	return n
}

// Range is a half-open index range [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Split divides [0, n) into at most workers contiguous, balanced
// ranges. Empty ranges are omitted, so the result may have fewer than
// workers entries when n < workers.
func Split(n, workers int) []Range {
	if n <= 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	out := make([]Range, 0, workers)
	base := n / workers
	rem := n % workers

	lo := 0
	for i := 0; i < workers; i++ {
		sz := base
		if i < rem {
			sz++
		}
		hi := lo + sz
		if sz > 0 {
			out = append(out, Range{Lo: lo, Hi: hi})
		}
		lo = hi
	}
	return out
}
