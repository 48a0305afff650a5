package vehicle

import (
	"fmt"

	"github.com/cory-johannsen/derelict/internal/gen/rng"
)

// Spawn is a named weighted distribution over spawn functions, letting one
// spawn ID cover several outcomes ("nothing", "a wreck", "a pileup") with
// real-valued weights.
type Spawn struct {
	ID    SpawnID
	types rng.WeightedList[Function, float64]
}

// NewSpawn returns an empty spawn with the given ID.
func NewSpawn(id SpawnID) *Spawn {
	return &Spawn{ID: id}
}

// Add appends a spawn outcome with the given weight at load time.
//
// Postcondition: on success the function is drawable in proportion to
// weight; invalid functions and negative weights are rejected.
func (s *Spawn) Add(weight float64, fn Function) error {
	if err := fn.Validate(); err != nil {
		return fmt.Errorf("vehicle: spawn %q: %w", s.ID, err)
	}
	if err := s.types.Add(fn, weight); err != nil {
		return fmt.Errorf("vehicle: spawn %q: %w", s.ID, err)
	}
	return nil
}

// Pick draws one spawn function proportional to weight. No side effects.
//
// Precondition: the spawn passed Validate. A pick on an empty spawn wraps
// rng.ErrEmptyDistribution, which callers treat as a programming error.
func (s *Spawn) Pick(src rng.Source) (Function, error) {
	fn, err := s.types.Pick(src)
	if err != nil {
		return Function{}, fmt.Errorf("vehicle: spawn %q: %w", s.ID, err)
	}
	return fn, nil
}

// Len reports the number of outcomes, including zero-weight ones.
func (s *Spawn) Len() int {
	return s.types.Len()
}

// Validate reports whether the spawn is registrable: a non-empty ID and a
// pickable distribution.
func (s *Spawn) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("vehicle: spawn ID must not be empty")
	}
	if s.types.TotalWeight() <= 0 {
		return fmt.Errorf("vehicle: spawn %q: distribution is empty or has zero total weight", s.ID)
	}
	return nil
}
