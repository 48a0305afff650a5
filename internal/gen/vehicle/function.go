package vehicle

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/derelict/internal/gen/geo"
)

// Kind discriminates the two spawn-function variants.
type Kind int

const (
	// KindBuiltin runs a procedural scene generator from the fixed catalog.
	KindBuiltin Kind = iota
	// KindDeclared runs a data-declared rule: a vehicle group, a count, and
	// a placement reference or inline location.
	KindDeclared
)

// Function is one outcome of a spawn distribution: a closed tagged variant
// stored by value. Only the fields of the active kind are meaningful.
type Function struct {
	Kind     Kind
	Builtin  BuiltinID
	Declared Declared
}

// NewBuiltinFunction wraps a catalog entry as a spawn outcome.
func NewBuiltinFunction(id BuiltinID) Function {
	return Function{Kind: KindBuiltin, Builtin: id}
}

// NewDeclaredFunction wraps a declared rule as a spawn outcome.
func NewDeclaredFunction(d Declared) Function {
	return Function{Kind: KindDeclared, Declared: d}
}

// Validate checks the fields of the active kind.
func (f Function) Validate() error {
	switch f.Kind {
	case KindBuiltin:
		if f.Builtin < 0 || f.Builtin >= builtinCount {
			return fmt.Errorf("vehicle: unknown builtin %d", int(f.Builtin))
		}
		return nil
	case KindDeclared:
		return f.Declared.Validate()
	default:
		return fmt.Errorf("vehicle: unknown function kind %d", int(f.Kind))
	}
}

// Declared is the payload of a data-declared spawn rule.
type Declared struct {
	// Group names the vehicle group the type is drawn from.
	Group GroupID
	// Count is the inclusive number of vehicles to place.
	Count geo.Range
	// Fuel and Status pass through to the map collaborator unchanged.
	Fuel   int
	Status int
	// Placement references a placement set, possibly through the terrain
	// token. Empty when Location is set.
	Placement PlacementRef
	// Location, when non-nil, bypasses placement resolution entirely.
	Location *Location
}

// Validate reports whether the rule is registrable.
func (d *Declared) Validate() error {
	if d.Group == "" {
		return fmt.Errorf("vehicle: declared function: group must not be empty")
	}
	if err := d.Count.Validate(); err != nil {
		return fmt.Errorf("vehicle: declared function: count: %w", err)
	}
	if d.Count.Min < 0 {
		return fmt.Errorf("vehicle: declared function: count must not be negative")
	}
	if (d.Placement == "") == (d.Location == nil) {
		return fmt.Errorf("vehicle: declared function: exactly one of placement and location is required")
	}
	if d.Location != nil {
		if err := d.Location.Validate(); err != nil {
			return fmt.Errorf("vehicle: declared function: %w", err)
		}
	}
	return nil
}

// TerrainToken is the substring of a placement reference replaced by the
// terrain name at apply time.
const TerrainToken = "%t"

// DefaultTerrain is the reserved terrain name tried when a terrain-token
// reference resolves to no registered placement.
const DefaultTerrain = "default"

// PlacementRef is a reference to a placement set, written either literally
// ("crossroads_defective") or with the terrain token ("%t_defective").
type PlacementRef string

// HasTerrainToken reports whether the reference is terrain-dependent.
func (r PlacementRef) HasTerrainToken() bool {
	return strings.Contains(string(r), TerrainToken)
}

// Resolve substitutes the first terrain token with the given terrain name.
func (r PlacementRef) Resolve(terrain string) PlacementID {
	return PlacementID(strings.Replace(string(r), TerrainToken, terrain, 1))
}
