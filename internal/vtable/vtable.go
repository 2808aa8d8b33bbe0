// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package vtable builds the sorted variant table at the center of the
// engine: the union of deletion variants over a string collection,
// packed into a single byte arena with a parallel array of
// (offset, length, source index, deletion count) records, sorted by
// variant bytes with ties broken by source index. Variant generation is
// parallelized across source strings, gated by the configured worker
// count.
package vtable

import (
	"bytes"
	"container/heap"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/kshedden/symdel/internal/collection"
	"github.com/kshedden/symdel/internal/complexity"
	"github.com/kshedden/symdel/internal/parallel"
	"github.com/kshedden/symdel/internal/variant"
)

// Options configures table construction. The zero value builds an
// exact table using the host's hardware parallelism.
type Options struct {
	// Workers is the goroutine count used for variant generation; 0
	// or negative resolves to runtime.GOMAXPROCS(0).
	Workers int

	// MinComplexity, when positive, drops source strings whose
	// distinct-adjacent-byte-pair count falls below the threshold
	// from variant generation entirely (see internal/complexity).
	// Zero (the default) disables the filter and preserves exact
	// semantics.
	MinComplexity int
}

// Record is one entry of a variant table: the variant bytes are
// Arena[Offset:Offset+Length].
type Record struct {
	Offset    uint32
	Length    uint32
	SourceIdx uint32
	Del       uint8
}

// Table is a variant table: a packed byte arena plus the sorted record
// array describing it.
type Table struct {
	Arena   []byte
	Records []Record
}

// Bytes returns the variant bytes for record r.
func (t *Table) Bytes(r Record) []byte {
	return t.Arena[r.Offset : r.Offset+r.Length]
}

// Build constructs the variant table for coll at bound k. Each worker
// generates and locally sorts the variants for its range of source
// strings; the sorted per-worker runs are then combined with a
// multi-way heap merge, so the dominant comparison work happens in
// parallel.
func Build(coll *collection.Collection, k uint8, opts Options) (*Table, error) {
	n := coll.Len()
	if n == 0 {
		return &Table{}, nil
	}

	workers := parallel.Resolve(opts.Workers)
	ranges := parallel.Split(n, workers)

	type partial struct {
		arena []byte
		recs  []Record
	}
	partials := make([]partial, len(ranges))

	var g errgroup.Group
	for gi, rg := range ranges {
		gi, rg := gi, rg
		g.Go(func() error {
			var arena []byte
			var recs []Record
			for i := rg.Lo; i < rg.Hi; i++ {
				s := coll.At(i)
				if !complexity.Passes(s, opts.MinComplexity) {
					continue
				}
				for _, v := range variant.Enumerate(s, k) {
					off := uint32(len(arena))
					arena = append(arena, v.Bytes...)
					recs = append(recs, Record{
						Offset:    off,
						Length:    uint32(len(v.Bytes)),
						SourceIdx: uint32(i),
						Del:       v.Del,
					})
				}
			}
			local := &Table{Arena: arena, Records: recs}
			sort.Slice(local.Records, func(i, j int) bool {
				return less(local, local.Records[i], local.Records[j])
			})
			partials[gi] = partial{arena: arena, recs: local.Records}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var totalArena int
	for _, p := range partials {
		totalArena += len(p.arena)
	}

	arena := make([]byte, 0, totalArena)
	runs := make([][]Record, 0, len(partials))
	for _, p := range partials {
		base := uint32(len(arena))
		arena = append(arena, p.arena...)
		for ri := range p.recs {
			p.recs[ri].Offset += base
		}
		if len(p.recs) > 0 {
			runs = append(runs, p.recs)
		}
	}

	t := &Table{Arena: arena}
	t.Records = mergeRuns(t, runs)
	return t, nil
}

type mergeItem struct {
	rec Record
	run int
}

type recHeap struct {
	t     *Table
	items []mergeItem
}

func (h *recHeap) Len() int { return len(h.items) }

func (h *recHeap) Less(i, j int) bool {
	return less(h.t, h.items[i].rec, h.items[j].rec)
}

func (h *recHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *recHeap) Push(x any) { h.items = append(h.items, x.(mergeItem)) }

func (h *recHeap) Pop() any {
	n := len(h.items)
	it := h.items[n-1]
	h.items = h.items[:n-1]
	return it
}

// mergeRuns combines per-worker sorted runs into one globally sorted
// record array. All runs index into t's already-assembled arena.
func mergeRuns(t *Table, runs [][]Record) []Record {
	var total int
	for _, r := range runs {
		total += len(r)
	}
	if len(runs) == 1 {
		return runs[0]
	}

	h := &recHeap{t: t}
	next := make([]int, len(runs))
	for ri, r := range runs {
		h.items = append(h.items, mergeItem{rec: r[0], run: ri})
		next[ri] = 1
	}
	heap.Init(h)

	out := make([]Record, 0, total)
	for h.Len() > 0 {
		it := heap.Pop(h).(mergeItem)
		out = append(out, it.rec)
		if ni := next[it.run]; ni < len(runs[it.run]) {
			heap.Push(h, mergeItem{rec: runs[it.run][ni], run: it.run})
			next[it.run] = ni + 1
		}
	}
	return out
}

func less(t *Table, a, b Record) bool {
	c := bytes.Compare(t.Bytes(a), t.Bytes(b))
	if c != 0 {
		return c < 0
	}
	return a.SourceIdx < b.SourceIdx
}
