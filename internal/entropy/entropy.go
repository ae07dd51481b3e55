// Package entropy provides the single random stream shared by the
// weather forecaster and the demand jitter. One seeded source per
// session keeps replays and tests reproducible.
package entropy

import (
	"math/rand"
	"time"
)

// Source yields uniform random draws. *math/rand.Rand satisfies it;
// tests substitute fixed-sequence stubs.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Intn returns a uniform draw in [0, n).
	Intn(n int) int
}

// NewSeeded returns a deterministic source for the given seed.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// New returns a source seeded from the wall clock.
func New() Source {
	return NewSeeded(time.Now().UnixNano())
}
