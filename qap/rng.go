// Package qap - RNG utilities for the randomized driver and its callers.
//
// Goals:
//   - Determinism: same seed ⇒ identical move order ⇒ identical trajectory.
//   - No ambient state: every generator is created here and handed to exactly
//     one search; nothing reads the process-wide math/rand source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Use DeriveRNG to create an
//     independent stream per worker or restart.
package qap

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer so neighboring stream ids yield unrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent deterministic stream from a parent seed
// and a stream id (worker index, restart number, ...). The same
// (parent, stream) pair always yields the same generator.
func DeriveRNG(parent int64, stream uint64) *rand.Rand {
	return NewRNG(deriveSeed(parent, stream))
}

// shuffleMovesInPlace is an in-place Fisher–Yates shuffle driven by rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleMovesInPlace(a []Move, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
