// Copyright 2017, Kerby Shedden and the Muscato contributors.

package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang/snappy"
	"github.com/google/uuid"

	"github.com/kshedden/symdel/internal/symdelerr"
)

// dumpCache persists a reference collection and its construction bound
// to path, snappy-compressed, one string per line after a header line
// giving kStar. This is a CLI-level convenience: a later invocation can
// reuse this run's reference side via --cache-in instead of passing the
// file again. In the two-file form the reference is FILE_B; in the
// within-set form the sole collection doubles as the reference. The
// core's CachedReference type itself persists nothing.
//
// The file is written to a uuid-named temporary file in scratchDir (or
// path's own directory if scratchDir is empty) and atomically renamed
// into place.
func dumpCache(cfg *Config, reference [][]byte, kStar int) error {
	dir := cfg.ScratchDir
	if dir == "" {
		dir = filepath.Dir(cfg.CacheOut)
	}

	id, err := uuid.NewUUID()
	if err != nil {
		return fmt.Errorf("generating scratch name: %w", err)
	}
	tmp := filepath.Join(dir, ".symdel-cache-"+id.String())

	fid, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating cache temp file: %w", err)
	}

	wtr := snappy.NewBufferedWriter(fid)
	bw := bufio.NewWriter(wtr)

	if _, err := fmt.Fprintf(bw, "%d\n", kStar); err != nil {
		fid.Close()
		os.Remove(tmp)
		return err
	}
	for _, s := range reference {
		if _, err := bw.Write(s); err != nil {
			fid.Close()
			os.Remove(tmp)
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			fid.Close()
			os.Remove(tmp)
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		fid.Close()
		os.Remove(tmp)
		return err
	}
	if err := wtr.Close(); err != nil {
		fid.Close()
		os.Remove(tmp)
		return err
	}
	if err := fid.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, cfg.CacheOut)
}

// loadCache reads back a reference collection and kStar written by
// dumpCache.
func loadCache(path string) ([][]byte, int, error) {
	fid, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer fid.Close()

	rdr := snappy.NewReader(fid)
	strs, err := readLines(rdr)
	if err != nil {
		return nil, 0, err
	}
	if len(strs) == 0 {
		return nil, 0, fmt.Errorf("cache file %s: missing k* header", path)
	}

	kStar, err := strconv.Atoi(string(strs[0]))
	if err != nil {
		return nil, 0, fmt.Errorf("cache file %s: invalid k* header: %w", path, err)
	}
	if len(strs) == 1 {
		return nil, 0, fmt.Errorf("cache file %s: %w", path, symdelerr.ErrEmptyInput)
	}

	return strs[1:], kStar, nil
}
