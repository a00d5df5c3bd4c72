// Package dice provides the random source shared by combat and enemy movement.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the subset of *rand.Rand the game depends on.
// Tests substitute a scripted implementation to make rolls deterministic.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// New returns a seeded source. A seed of 0 means a random seed is generated.
func New(seed int64) (*rand.Rand, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	return rand.New(rand.NewSource(seed)), nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Between returns a uniform random integer in [lo, hi], inclusive.
// If hi < lo the bounds are swapped.
func Between(src Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + src.Intn(hi-lo+1)
}
