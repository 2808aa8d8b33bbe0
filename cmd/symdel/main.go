// Copyright 2017, Kerby Shedden and the Muscato contributors.

// symdel is the command-line front end for the symdel bounded
// edit-distance neighbour search engine. It reads one byte string per
// newline-terminated line, either from standard input (within-set
// search), from a single file (within-set search), or from two files
// (cross-set search), and prints one "i,j,d" record per result row.
//
//	symdel                 within-set search over stdin
//	symdel FILE            within-set search over FILE's lines
//	symdel FILE_A FILE_B   cross-set search: i indexes FILE_A, j indexes FILE_B
//
// See "symdel --help" for the full flag set.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/pflag"

	"github.com/kshedden/symdel"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", log.Ltime)

	fs := pflag.NewFlagSet("symdel", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		maxDistance     = fs.IntP("max-distance", "d", 1, "maximum Levenshtein distance k")
		zeroIndex       = fs.BoolP("zero-index", "z", false, "report 0-based indices instead of 1-based")
		workers         = fs.Int("workers", 0, "goroutine count; 0 uses hardware parallelism")
		compress        = fs.Bool("compress", false, "write results snappy-compressed")
		stats           = fs.Bool("stats", false, "report a neighbour-count histogram to stderr")
		reportUnmatched = fs.Bool("report-unmatched", false, "report query indices with zero neighbours to stderr")
		minComplexity   = fs.Int("min-complexity", 0, "opt-in: drop variants from strings below this distinct-adjacent-byte-pair count")
		doProfile       = fs.Bool("profile", false, "write a CPU profile to the current directory")
		scratchDir      = fs.String("scratch-dir", "", "directory for --cache-out's temporary file before the atomic rename")
		cacheOut        = fs.String("cache-out", "", "dump the reference collection and k* to this path for later --cache-in reuse")
		cacheIn         = fs.String("cache-in", "", "load a reference collection and k* produced by a previous --cache-out")
		configPath      = fs.String("config", "", "load all settings from a JSON config file, ignoring other flags")
	)

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg := &Config{
		MaxDistance:     *maxDistance,
		ZeroIndex:       *zeroIndex,
		Workers:         *workers,
		Compress:        *compress,
		Stats:           *stats,
		ReportUnmatched: *reportUnmatched,
		MinComplexity:   *minComplexity,
		Profile:         *doProfile,
		ScratchDir:      *scratchDir,
		CacheOut:        *cacheOut,
		CacheIn:         *cacheIn,
	}
	if *configPath != "" {
		loaded, err := readConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "symdel: reading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	if cfg.MaxDistance < 0 || cfg.MaxDistance > symdel.MaxDistance {
		fmt.Fprintf(stderr, "symdel: max-distance %d out of range [0, %d]\n", cfg.MaxDistance, symdel.MaxDistance)
		return 1
	}

	if cfg.Profile {
		p := profile.Start(profile.ProfilePath("."))
		defer p.Stop()
	}

	positional := fs.Args()
	if len(positional) > 2 {
		fmt.Fprintf(stderr, "symdel: too many arguments\n")
		return 1
	}

	opts := &symdel.Options{Workers: cfg.Workers, MinComplexity: cfg.MinComplexity}

	var base uint32
	if !cfg.ZeroIndex {
		base = 1
	}

	switch {
	case cfg.CacheIn != "":
		return runCachedQuery(cfg, opts, positional, base, logger, stdout, stderr)
	case len(positional) == 2:
		return runCrossSet(cfg, opts, positional[0], positional[1], base, logger, stdout, stderr)
	case len(positional) == 1:
		return runWithinSet(cfg, opts, positional[0], stdin, base, logger, stdout, stderr)
	default:
		return runWithinSet(cfg, opts, "", stdin, base, logger, stdout, stderr)
	}
}
