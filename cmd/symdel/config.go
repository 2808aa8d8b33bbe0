// Copyright 2017, Kerby Shedden and the Muscato contributors.

package main

import (
	"encoding/json"
	"os"
)

// Config holds every run setting. Each field can be set by a
// command-line flag, or the whole struct can be populated in one shot
// from a JSON file via --config; when --config is given it replaces the
// other flags entirely.
type Config struct {
	// MaxDistance is the Levenshtein bound k.
	MaxDistance int

	// ZeroIndex selects 0-based (true) or 1-based (false) output
	// line numbers.
	ZeroIndex bool

	// Workers is the goroutine count passed to symdel.Options; 0
	// resolves to hardware parallelism.
	Workers int

	// Compress writes the result stream through snappy instead of
	// plain text.
	Compress bool

	// Stats reports a per-string neighbour-count histogram to
	// stderr after the run.
	Stats bool

	// ReportUnmatched writes, to stderr, the indices of query
	// strings with zero neighbours.
	ReportUnmatched bool

	// MinComplexity enables symdel.Options.MinComplexity; zero
	// disables the approximate prefilter.
	MinComplexity int

	// Profile writes a CPU profile to the current directory.
	Profile bool

	// ScratchDir, if set, is where CacheOut writes its temporary
	// file before the atomic rename into place.
	ScratchDir string

	// CacheOut, if set, dumps the reference collection and k* used
	// for this run to this path (snappy-compressed) for reuse by a
	// later invocation's --cache-in.
	CacheOut string

	// CacheIn, if set, loads a reference collection and k* produced
	// by a previous --cache-out and uses it as the reference side; the
	// single positional argument is then the query file.
	CacheIn string
}

// readConfig loads a Config from a JSON file.
func readConfig(filename string) (*Config, error) {
	fid, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fid.Close()

	config := new(Config)
	dec := json.NewDecoder(fid)
	if err := dec.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}
