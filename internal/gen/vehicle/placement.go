package vehicle

import (
	"fmt"

	"github.com/cory-johannsen/derelict/internal/gen/geo"
	"github.com/cory-johannsen/derelict/internal/gen/rng"
)

// Facings is the non-empty set of orientations a location allows.
type Facings struct {
	Values []Facing
}

// NewFacings builds a validated facing set.
func NewFacings(values ...Facing) (Facings, error) {
	f := Facings{Values: values}
	if err := f.Validate(); err != nil {
		return Facings{}, err
	}
	return f, nil
}

// Validate reports whether the set is non-empty with every value in [0, 360).
func (f Facings) Validate() error {
	if len(f.Values) == 0 {
		return fmt.Errorf("vehicle: facing set must not be empty")
	}
	for _, v := range f.Values {
		if v < 0 || v >= 360 {
			return fmt.Errorf("vehicle: facing %d outside [0, 360)", v)
		}
	}
	return nil
}

// Pick returns one declared facing uniformly at random.
//
// Precondition: the set passed Validate.
func (f Facings) Pick(src rng.Source) Facing {
	return f.Values[src.Intn(len(f.Values))]
}

// Location is one candidate area for spawning a vehicle: independent x and y
// ranges plus the facings allowed there.
type Location struct {
	X       geo.Range
	Y       geo.Range
	Facings Facings
}

// Validate reports whether both ranges and the facing set are well formed.
func (l *Location) Validate() error {
	if err := l.X.Validate(); err != nil {
		return fmt.Errorf("vehicle: location x: %w", err)
	}
	if err := l.Y.Validate(); err != nil {
		return fmt.Errorf("vehicle: location y: %w", err)
	}
	return l.Facings.Validate()
}

// PickPoint samples x and y independently and uniformly from their ranges.
// No side effects.
func (l *Location) PickPoint(src rng.Source) geo.Point {
	return geo.Point{X: l.X.Pick(src), Y: l.Y.Pick(src)}
}

// PickFacing returns one of the location's declared facings. No side effects.
func (l *Location) PickFacing(src rng.Source) Facing {
	return l.Facings.Pick(src)
}

// Placement is a named set of candidate locations valid for spawning on some
// terrain. Spawn rules reach it through a PlacementRef.
type Placement struct {
	ID        PlacementID
	Locations []Location
}

// NewPlacement returns an empty placement with the given ID.
func NewPlacement(id PlacementID) *Placement {
	return &Placement{ID: id}
}

// Add appends a candidate location built from its parts.
func (p *Placement) Add(x, y geo.Range, f Facings) {
	p.Locations = append(p.Locations, Location{X: x, Y: y, Facings: f})
}

// Validate reports whether the placement is registrable: a non-empty ID and
// at least one well-formed location.
func (p *Placement) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("vehicle: placement ID must not be empty")
	}
	if len(p.Locations) == 0 {
		return fmt.Errorf("vehicle: placement %q: no locations", p.ID)
	}
	for i := range p.Locations {
		if err := p.Locations[i].Validate(); err != nil {
			return fmt.Errorf("vehicle: placement %q: location %d: %w", p.ID, i, err)
		}
	}
	return nil
}

// Pick selects one location uniformly at random; every location is equally
// likely regardless of its range sizes. No side effects.
//
// Precondition: the placement passed Validate.
func (p *Placement) Pick(src rng.Source) *Location {
	return &p.Locations[src.Intn(len(p.Locations))]
}
