package vehicle

import (
	"fmt"

	"github.com/cory-johannsen/derelict/internal/gen/rng"
)

// Group is a named weighted distribution over vehicle types, in the same
// shape item groups use: heavier entries spawn proportionally more often.
type Group struct {
	ID       GroupID
	vehicles rng.WeightedList[TypeID, int]
}

// NewGroup returns an empty group with the given ID.
func NewGroup(id GroupID) *Group {
	return &Group{ID: id}
}

// AddVehicle appends a vehicle type with an integer weight.
//
// Postcondition: on success the type is drawable in proportion to weight;
// empty types and negative weights are rejected.
func (g *Group) AddVehicle(typ TypeID, weight int) error {
	if typ == "" {
		return fmt.Errorf("vehicle: group %q: vehicle type must not be empty", g.ID)
	}
	if err := g.vehicles.Add(typ, weight); err != nil {
		return fmt.Errorf("vehicle: group %q: vehicle %q: %w", g.ID, typ, err)
	}
	return nil
}

// Pick draws one vehicle type proportional to weight. No side effects.
//
// Precondition: the group passed Validate. A pick on an empty group wraps
// rng.ErrEmptyDistribution, which callers treat as a programming error.
func (g *Group) Pick(src rng.Source) (TypeID, error) {
	typ, err := g.vehicles.Pick(src)
	if err != nil {
		return "", fmt.Errorf("vehicle: group %q: %w", g.ID, err)
	}
	return typ, nil
}

// Len reports the number of entries, including zero-weight ones.
func (g *Group) Len() int {
	return g.vehicles.Len()
}

// Validate reports whether the group is registrable: a non-empty ID and a
// pickable distribution.
func (g *Group) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("vehicle: group ID must not be empty")
	}
	if g.vehicles.TotalWeight() <= 0 {
		return fmt.Errorf("vehicle: group %q: distribution is empty or has zero total weight", g.ID)
	}
	return nil
}
