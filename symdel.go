// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package symdel finds all pairs of strings whose Levenshtein edit
// distance is at most a threshold k, within a single collection or
// across two collections, using a sort-merge variant of the
// symmetric-deletion (symdel) candidate generation algorithm.
//
// The package never indexes Unicode code points: every string is an
// opaque byte slice and distance is computed over bytes. It is exact
// (no approximate or probabilistic answers by default) and does not
// persist state between calls; see Options.MinComplexity for the one
// documented, off-by-default approximate knob.
package symdel

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/kshedden/symdel/internal/canon"
	"github.com/kshedden/symdel/internal/collection"
	"github.com/kshedden/symdel/internal/mergejoin"
	"github.com/kshedden/symdel/internal/parallel"
	"github.com/kshedden/symdel/internal/symdelerr"
	"github.com/kshedden/symdel/internal/verify"
	"github.com/kshedden/symdel/internal/vtable"
)

// MaxDistance is the largest representable bound (del_count and the
// verified distance are both stored as 8-bit unsigned values).
const MaxDistance = 255

// Options configures a neighbour search or cached-index construction.
// The zero value is the exact, default configuration: hardware
// parallelism and no low-complexity filtering.
type Options struct {
	// Workers is the goroutine count used across the variant
	// generation, merge-join and verification phases; 0 or negative
	// resolves to the host's hardware parallelism.
	Workers int

	// MinComplexity, when positive, enables the opt-in approximate
	// low-complexity prefilter (internal/complexity): source strings
	// whose distinct-adjacent-byte-pair count falls below this
	// threshold are excluded from variant generation. Leave at zero
	// to preserve exact semantics.
	MinComplexity int
}

func (o Options) vtableOptions() vtable.Options {
	return vtable.Options{Workers: o.Workers, MinComplexity: o.MinComplexity}
}

// Result holds the three parallel output arrays: I and J are 32-bit
// string indices, D is the corresponding 8-bit Levenshtein distance.
// All three slices have equal length. Rows are sorted lexicographically
// by (I, J); within-set results additionally satisfy I < J.
type Result struct {
	I []uint32
	J []uint32
	D []uint8
}

// Len returns the number of result rows.
func (r Result) Len() int { return len(r.I) }

func checkBound(k, max int) error {
	if k < 0 || k > max {
		return symdelerr.InvalidBound(k, max)
	}
	return nil
}

func buildCollection(strs [][]byte) (*collection.Collection, error) {
	if uint64(len(strs)) > math.MaxUint32 {
		return nil, symdelerr.IndexOverflow(uint64(len(strs)))
	}
	return collection.New(strs)
}

// Neighbours finds every pair (i, j) with i<j such that
// Levenshtein(strs[i], strs[j]) <= k.
func Neighbours(strs [][]byte, k int, opts *Options) (Result, error) {
	if err := checkBound(k, MaxDistance); err != nil {
		return Result{}, err
	}
	o := resolveOptions(opts)

	coll, err := buildCollection(strs)
	if err != nil {
		return Result{}, err
	}
	if coll.Len() == 0 {
		return Result{}, nil
	}

	table, err := vtable.Build(coll, uint8(k), o.vtableOptions())
	if err != nil {
		return Result{}, err
	}

	return search(coll, coll, table, table, true, k, o)
}

// NeighboursAcross finds every pair (i, j) such that
// Levenshtein(query[i], reference[j]) <= k. i indexes query, j indexes
// reference.
func NeighboursAcross(query, reference [][]byte, k int, opts *Options) (Result, error) {
	if err := checkBound(k, MaxDistance); err != nil {
		return Result{}, err
	}
	o := resolveOptions(opts)

	qcoll, err := buildCollection(query)
	if err != nil {
		return Result{}, err
	}
	rcoll, err := buildCollection(reference)
	if err != nil {
		return Result{}, err
	}
	if qcoll.Len() == 0 || rcoll.Len() == 0 {
		return Result{}, nil
	}

	qtable, err := vtable.Build(qcoll, uint8(k), o.vtableOptions())
	if err != nil {
		return Result{}, err
	}
	rtable, err := vtable.Build(rcoll, uint8(k), o.vtableOptions())
	if err != nil {
		return Result{}, err
	}

	return search(qcoll, rcoll, qtable, rtable, false, k, o)
}

func resolveOptions(opts *Options) Options {
	if opts == nil {
		return Options{}
	}
	return *opts
}

// search runs the merge-join, verification and canonicalisation stages
// shared by Neighbours, NeighboursAcross and CachedReference's query
// methods. qTable and rTable may be the same table (within-set) or
// tables built at a bound larger than k (cached-index reuse); the
// DelSum pruning in mergejoin and the exact check in verify together
// guarantee the result equals a from-scratch computation at k
// regardless of which bound the tables were built at.
func search(qcoll, rcoll *collection.Collection, qTable, rTable *vtable.Table, within bool, k int, o Options) (Result, error) {
	workers := parallel.Resolve(o.Workers)

	parts := mergejoin.Partitions(qTable, rTable, workers)
	partCands := make([][]mergejoin.Candidate, len(parts))
	var jg errgroup.Group
	for pi, pt := range parts {
		pi, pt := pi, pt
		jg.Go(func() error {
			var out []mergejoin.Candidate
			mergejoin.JoinRange(qTable, rTable, pt, within, func(c mergejoin.Candidate) {
				if c.DelSum > 2*k {
					return
				}
				out = append(out, c)
			})
			partCands[pi] = out
			return nil
		})
	}
	if err := jg.Wait(); err != nil {
		return Result{}, err
	}

	var ncand int
	for _, pc := range partCands {
		ncand += len(pc)
	}
	if ncand == 0 {
		return Result{}, nil
	}
	candidates := make([]mergejoin.Candidate, 0, ncand)
	for _, pc := range partCands {
		candidates = append(candidates, pc...)
	}

	ranges := parallel.Split(len(candidates), workers)

	partials := make([][]canon.Pair, len(ranges))
	var g errgroup.Group
	for gi, rg := range ranges {
		gi, rg := gi, rg
		g.Go(func() error {
			var out []canon.Pair
			for _, c := range candidates[rg.Lo:rg.Hi] {
				qs := qcoll.At(int(c.I))
				rs := rcoll.At(int(c.J))
				d, ok := verify.Distance(qs, rs, k)
				if !ok {
					continue
				}
				out = append(out, canon.Pair{I: c.I, J: c.J, D: uint8(d)})
			}
			partials[gi] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total int
	for _, p := range partials {
		total += len(p)
	}
	pairs := make([]canon.Pair, 0, total)
	for _, p := range partials {
		pairs = append(pairs, p...)
	}

	res := canon.Build(pairs)
	return Result{I: res.I, J: res.J, D: res.D}, nil
}

// CachedReference is a persistable-in-memory variant table for a
// reference collection, built once at a construction-time bound kStar
// and reusable for any query with k <= kStar: Delta_k(s) is a subset of
// Delta_kStar(s), so the DelSum pruning applied during merge-join makes
// a query at k equal a from-scratch computation at k.
type CachedReference struct {
	coll  *collection.Collection
	table *vtable.Table
	kStar int
	opts  Options
}

// NewCachedReference builds a cached index over reference at bound
// kStar.
func NewCachedReference(reference [][]byte, kStar int, opts *Options) (*CachedReference, error) {
	if err := checkBound(kStar, MaxDistance); err != nil {
		return nil, err
	}
	o := resolveOptions(opts)

	coll, err := buildCollection(reference)
	if err != nil {
		return nil, err
	}

	var table *vtable.Table
	if coll.Len() > 0 {
		table, err = vtable.Build(coll, uint8(kStar), o.vtableOptions())
		if err != nil {
			return nil, err
		}
	} else {
		table = &vtable.Table{}
	}

	return &CachedReference{coll: coll, table: table, kStar: kStar, opts: o}, nil
}

// KStar returns the construction-time bound this index was built at.
func (c *CachedReference) KStar() int { return c.kStar }

// Len returns the number of strings in the cached reference collection.
func (c *CachedReference) Len() int { return c.coll.Len() }

// QueryWithin finds every pair (i, j) with i<j inside the cached
// reference collection, at any bound k <= KStar().
func (c *CachedReference) QueryWithin(k int) (Result, error) {
	if err := checkBound(k, c.kStar); err != nil {
		return Result{}, err
	}
	if c.coll.Len() == 0 {
		return Result{}, nil
	}
	return search(c.coll, c.coll, c.table, c.table, true, k, c.opts)
}

// Query finds every pair (i, j) with Levenshtein(query[i],
// reference[j]) <= k, where reference is this cached index's
// collection. k must not exceed KStar().
func (c *CachedReference) Query(query [][]byte, k int) (Result, error) {
	if err := checkBound(k, c.kStar); err != nil {
		return Result{}, err
	}
	qcoll, err := buildCollection(query)
	if err != nil {
		return Result{}, err
	}
	if qcoll.Len() == 0 || c.coll.Len() == 0 {
		return Result{}, nil
	}

	qtable, err := vtable.Build(qcoll, uint8(k), c.opts.vtableOptions())
	if err != nil {
		return Result{}, err
	}
	return search(qcoll, c.coll, qtable, c.table, false, k, c.opts)
}

// QueryCached finds every pair (i, j) with Levenshtein(query[i],
// reference[j]) <= k, where query is itself a cached index. query's
// own table is reused rather than rebuilt, provided it was constructed
// at a bound >= k; k must not exceed min(c.KStar(), query.KStar()).
func (c *CachedReference) QueryCached(query *CachedReference, k int) (Result, error) {
	max := c.kStar
	if query.kStar < max {
		max = query.kStar
	}
	if err := checkBound(k, max); err != nil {
		return Result{}, err
	}
	if query.coll.Len() == 0 || c.coll.Len() == 0 {
		return Result{}, nil
	}
	return search(query.coll, c.coll, query.table, c.table, false, k, c.opts)
}

