// Package randutil builds the random sources handed to decks. Nothing in the
// repository reads a global random source: every shuffle is driven by a
// *rand.Rand created here and passed in explicitly.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG state words are derived from the one seed so that every call site
// gets reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed derives a seed from the clock's current time. Used when the caller
// did not ask for a reproducible run.
func Seed(clock quartz.Clock) int64 {
	return clock.Now().UnixNano()
}

// Derive returns the seed for the n-th independent stream of a base seed,
// e.g. one per simulation worker.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) + uint64(n+1)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
