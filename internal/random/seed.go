// Package random provides entropy-seeded generator helpers.
//
// Seeds come from crypto/rand by default. The generators built from them are
// math/rand/v2 PCG sources: fast and statistically sound, not cryptographic.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
)

// ErrSeed indicates the entropy source could not provide a seed.
var ErrSeed = errors.New("read random seed")

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSeed, err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ReadSeed reads the two 64-bit words a PCG source needs from r.
// A nil reader falls back to crypto/rand.
func ReadSeed(r io.Reader) (uint64, uint64, error) {
	if r == nil {
		r = crand.Reader
	}

	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrSeed, err)
	}

	return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]), nil
}

// New returns a generator seeded from r.
//
// The generator is not safe for concurrent use; callers own one per
// invocation.
func New(r io.Reader) (*rand.Rand, error) {
	hi, lo, err := ReadSeed(r)
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewPCG(hi, lo)), nil
}
