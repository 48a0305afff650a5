package rng

import "math/rand/v2"

// seededSource implements Source using a PCG generator with a fixed seed.
// It is NOT safe for concurrent use; callers confine each instance to one
// goroutine.
type seededSource struct {
	r *rand.Rand
}

// NewSeeded returns a deterministic Source: two sources built from the same
// seed produce identical value streams. Generation code derives one seed per
// map tile from a master seed so whole batches replay exactly.
//
// Postcondition: the returned Source is deterministic and single-goroutine.
func NewSeeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a random int in [0, n) from the seeded stream.
//
// Precondition: n > 0. Panics with "rng: Intn called with n <= 0" if n <= 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	return s.r.IntN(n)
}

// Float64 returns a random float64 in [0.0, 1.0) from the seeded stream.
func (s *seededSource) Float64() float64 {
	return s.r.Float64()
}
