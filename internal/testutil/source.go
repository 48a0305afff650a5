// Package testutil provides test helpers shared across generation packages,
// chiefly a scripted randomness source for deterministic spawn tests.
package testutil

// ScriptedSource is an rng.Source whose draws are scripted in advance: Intn
// pops the next queued int and Float64 the next queued float. Tests use it to
// steer weighted picks and position samples onto exact outcomes.
//
// When a queue runs dry the source returns zero, which keeps draws in range
// and makes exhausted scripts deterministic rather than panicking.
type ScriptedSource struct {
	// Ints are consumed by Intn in order. Values are taken modulo n so a
	// scripted value can never leave [0, n).
	Ints []int
	// Floats are consumed by Float64 in order.
	Floats []float64

	intIdx   int
	floatIdx int
}

// Intn pops the next scripted int reduced modulo n.
//
// Precondition: n > 0. Panics with "testutil: Intn called with n <= 0"
// otherwise, matching the rng.Source contract.
func (s *ScriptedSource) Intn(n int) int {
	if n <= 0 {
		panic("testutil: Intn called with n <= 0")
	}
	if s.intIdx >= len(s.Ints) {
		return 0
	}
	v := s.Ints[s.intIdx] % n
	s.intIdx++
	return v
}

// Float64 pops the next scripted float.
func (s *ScriptedSource) Float64() float64 {
	if s.floatIdx >= len(s.Floats) {
		return 0
	}
	v := s.Floats[s.floatIdx]
	s.floatIdx++
	return v
}

// IntDraws reports how many Intn calls the source has served.
func (s *ScriptedSource) IntDraws() int {
	return s.intIdx
}

// FloatDraws reports how many Float64 calls the source has served.
func (s *ScriptedSource) FloatDraws() int {
	return s.floatIdx
}
