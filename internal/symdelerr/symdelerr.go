// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package symdelerr defines the error kinds the core returns at its API
// boundary. The core never panics, logs, or retries on these
// conditions; it wraps one of these sentinels and returns it to the
// caller.
package symdelerr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, usable with errors.Is.
var (
	// ErrInvalidBound is returned when k is negative, exceeds 255, or
	// exceeds the construction-time bound of a cached index.
	ErrInvalidBound = errors.New("symdel: invalid distance bound")

	// ErrIndexOverflow is returned when a collection's size exceeds
	// the 32-bit string-index range.
	ErrIndexOverflow = errors.New("symdel: collection size exceeds uint32 index range")

	// ErrEmptyInput marks a zero-string collection. The core treats
	// empty input as a valid query producing zero pairs and never
	// returns this itself; it exists for hosts that elect to reject
	// empty input at their own boundary.
	ErrEmptyInput = errors.New("symdel: empty input collection")

	// ErrIO is the sentinel the host (CLI/binding) wraps around
	// genuine I/O failures. The core itself never returns it.
	ErrIO = errors.New("symdel: I/O error")
)

// InvalidBound reports k exceeding the given maximum (255, or a cached
// index's construction bound).
func InvalidBound(k, max int) error {
	return fmt.Errorf("%w: %d exceeds maximum %d", ErrInvalidBound, k, max)
}

// IndexOverflow reports a collection whose size cannot be addressed
// with a 32-bit index.
func IndexOverflow(n uint64) error {
	return fmt.Errorf("%w: %d strings", ErrIndexOverflow, n)
}

// IO wraps an underlying I/O failure for the host boundary.
func IO(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrIO, err)
}
