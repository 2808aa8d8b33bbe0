// Copyright 2017, Kerby Shedden and the Muscato contributors.

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/golang/snappy"

	"github.com/kshedden/symdel"
	"github.com/kshedden/symdel/internal/symdelerr"
)

// openInput opens path for reading, or returns r unchanged when path is
// empty (stdin mode).
func openInput(path string, r io.Reader) (io.Reader, func(), error) {
	if path == "" {
		return r, func() {}, nil
	}
	fid, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return fid, func() { fid.Close() }, nil
}

func reportIOError(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "symdel: %v\n", symdelerr.IO(err))
	return 1
}

func outputWriter(stdout io.Writer, compress bool) (io.Writer, func() error) {
	if !compress {
		return stdout, func() error { return nil }
	}
	w := snappy.NewBufferedWriter(stdout)
	return w, w.Close
}

func runWithinSet(cfg *Config, opts *symdel.Options, path string, stdin io.Reader, base uint32, logger *log.Logger, stdout, stderr io.Writer) int {
	in, closeIn, err := openInput(path, stdin)
	if err != nil {
		return reportIOError(stderr, err)
	}
	defer closeIn()

	strs, err := readLines(in)
	if err != nil {
		return reportIOError(stderr, err)
	}
	logger.Printf("read %d strings", len(strs))

	if cfg.CacheOut != "" {
		if err := dumpCache(cfg, strs, cfg.MaxDistance); err != nil {
			return reportIOError(stderr, err)
		}
	}

	res, err := symdel.Neighbours(strs, cfg.MaxDistance, opts)
	if err != nil {
		return reportComputeError(stderr, err)
	}

	return finish(cfg, res, len(strs), base, logger, stdout, stderr, true)
}

func runCrossSet(cfg *Config, opts *symdel.Options, pathA, pathB string, base uint32, logger *log.Logger, stdout, stderr io.Writer) int {
	fidA, err := os.Open(pathA)
	if err != nil {
		return reportIOError(stderr, err)
	}
	defer fidA.Close()
	query, err := readLines(fidA)
	if err != nil {
		return reportIOError(stderr, err)
	}

	fidB, err := os.Open(pathB)
	if err != nil {
		return reportIOError(stderr, err)
	}
	defer fidB.Close()
	reference, err := readLines(fidB)
	if err != nil {
		return reportIOError(stderr, err)
	}

	logger.Printf("read %d query strings, %d reference strings", len(query), len(reference))

	if cfg.CacheOut != "" {
		if err := dumpCache(cfg, reference, cfg.MaxDistance); err != nil {
			return reportIOError(stderr, err)
		}
	}

	res, err := symdel.NeighboursAcross(query, reference, cfg.MaxDistance, opts)
	if err != nil {
		return reportComputeError(stderr, err)
	}

	return finish(cfg, res, len(query), base, logger, stdout, stderr, false)
}

func runCachedQuery(cfg *Config, opts *symdel.Options, positional []string, base uint32, logger *log.Logger, stdout, stderr io.Writer) int {
	if len(positional) != 1 {
		fmt.Fprintf(stderr, "symdel: --cache-in requires exactly one query file argument\n")
		return 1
	}

	reference, kStar, err := loadCache(cfg.CacheIn)
	if err != nil {
		return reportIOError(stderr, err)
	}
	logger.Printf("loaded cached reference: %d strings, k*=%d", len(reference), kStar)

	fid, err := os.Open(positional[0])
	if err != nil {
		return reportIOError(stderr, err)
	}
	defer fid.Close()
	query, err := readLines(fid)
	if err != nil {
		return reportIOError(stderr, err)
	}

	cref, err := symdel.NewCachedReference(reference, kStar, opts)
	if err != nil {
		return reportComputeError(stderr, err)
	}

	res, err := cref.Query(query, cfg.MaxDistance)
	if err != nil {
		return reportComputeError(stderr, err)
	}

	return finish(cfg, res, len(query), base, logger, stdout, stderr, false)
}

func reportComputeError(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "symdel: %v\n", err)
	return 1
}

// finish writes results, then handles the --stats and --report-unmatched
// supplements, which both need the query-side length (len(query) for
// cross-set / within-set); withinSet selects whether unmatched-detection
// must look at both I and J (within-set: either side not appearing is
// unmatched) or only I (cross-set: only the query side is reported).
func finish(cfg *Config, res symdel.Result, queryLen int, base uint32, logger *log.Logger, stdout, stderr io.Writer, withinSet bool) int {
	w, closeW := outputWriter(stdout, cfg.Compress)
	if err := writeResults(w, res.I, res.J, res.D, base); err != nil {
		return reportIOError(stderr, err)
	}
	if err := closeW(); err != nil {
		return reportIOError(stderr, err)
	}

	logger.Printf("found %d pairs", res.Len())

	if cfg.Stats {
		counts := neighbourCounts(res.I, queryLen)
		if withinSet {
			jCounts := neighbourCounts(res.J, queryLen)
			for idx := range counts {
				counts[idx] += jCounts[idx]
			}
		}
		writeStats(stderr, counts)
	}

	if cfg.ReportUnmatched {
		idx := res.I
		if withinSet {
			idx = append(append([]uint32(nil), res.I...), res.J...)
		}
		writeUnmatched(stderr, idx, queryLen, base)
	}

	return 0
}
