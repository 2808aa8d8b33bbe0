// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package collection implements the engine's input view: an immutable,
// contiguous byte buffer plus an offset table giving the start of each
// string. Downstream stages never copy string content; they work on
// byte slices backed by this buffer.
package collection

import (
	"errors"
	"math"
)

// ErrTooManyStrings is returned when a collection would require more
// than 2^32-1 entries to address with a 32-bit index.
var ErrTooManyStrings = errors.New("collection: string count exceeds uint32 index range")

// Collection is an ordered sequence of byte strings s0...sN-1, stored as
// a single owned buffer plus an offset table of length N+1 such that
// s_i = buf[offsets[i]:offsets[i+1]].
type Collection struct {
	buf     []byte
	offsets []uint32
}

// New builds a Collection by copying the given strings into one packed
// buffer. The inputs may be reused or mutated by the caller afterward.
func New(strs [][]byte) (*Collection, error) {
	if uint64(len(strs)) > math.MaxUint32 {
		return nil, ErrTooManyStrings
	}

	var total int
	for _, s := range strs {
		total += len(s)
	}

	buf := make([]byte, 0, total)
	offsets := make([]uint32, len(strs)+1)
	for i, s := range strs {
		offsets[i] = uint32(len(buf))
		buf = append(buf, s...)
	}
	offsets[len(strs)] = uint32(len(buf))

	return &Collection{buf: buf, offsets: offsets}, nil
}

// Len returns the number of strings in the collection.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.offsets) - 1
}

// At returns the byte slice for string i, backed by the collection's
// owned buffer. The caller must not retain it past the collection's
// lifetime.
func (c *Collection) At(i int) []byte {
	return c.buf[c.offsets[i]:c.offsets[i+1]]
}
