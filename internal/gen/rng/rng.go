// Package rng provides the randomness abstraction and weighted-selection
// primitives for the Derelict map generation pipeline.
package rng

// Source is the randomness provider for all generation decisions.
//
// Concurrency is part of each implementation's contract: sources returned by
// NewCrypto are safe for concurrent use; sources returned by NewSeeded are
// not and must be confined to a single goroutine (generation code creates
// one seeded source per map tile).
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int

	// Float64 returns a random float64 in [0.0, 1.0).
	Float64() float64
}
