package vehicle

import (
	"fmt"

	"github.com/cory-johannsen/derelict/internal/gen/geo"
)

// BuiltinID indexes the fixed catalog of procedural scene generators.
type BuiltinID int

const (
	// BuiltinNoVehicles places nothing; it gives "nothing spawns here"
	// weight within a distribution.
	BuiltinNoVehicles BuiltinID = iota
	// BuiltinJackknifedSemi places a crashed articulated truck: a cab and
	// its trailer with linked positions and facings.
	BuiltinJackknifedSemi
	// BuiltinPileup places 5-12 wrecks drawn from the city_pileup group.
	BuiltinPileup
	// BuiltinPolicePileup places 1-6 wrecks drawn from the policecar group.
	BuiltinPolicePileup

	builtinCount
)

// Reserved content identifiers consumed by the builtin scenes. Content that
// weights these builtins must provide the groups below, plus "<terrain>_semi"
// and "<terrain>_defective" placements for the terrains it spawns on.
const (
	GroupCityPileup GroupID = "city_pileup"
	GroupPoliceCar  GroupID = "policecar"

	TypeSemiTruck    TypeID = "semi_truck"
	TypeTruckTrailer TypeID = "truck_trailer"

	semiPlacementRef      PlacementRef = "%t_semi"
	defectivePlacementRef PlacementRef = "%t_defective"
)

// builtinNames maps catalog entries to their content-file names.
var builtinNames = [builtinCount]string{
	BuiltinNoVehicles:     "no_vehicles",
	BuiltinJackknifedSemi: "jackknifed_semi",
	BuiltinPileup:         "pileup",
	BuiltinPolicePileup:   "policepileup",
}

var builtinsByName = make(map[string]BuiltinID, builtinCount)

func init() {
	for id, name := range builtinNames {
		builtinsByName[name] = BuiltinID(id)
	}
}

// BuiltinByName resolves a content-file builtin name against the catalog.
//
// Postcondition: ok is true iff name is a catalog entry.
func BuiltinByName(name string) (BuiltinID, bool) {
	id, ok := builtinsByName[name]
	return id, ok
}

// String returns the content-file name of the builtin.
func (b BuiltinID) String() string {
	if b < 0 || b >= builtinCount {
		return fmt.Sprintf("builtin(%d)", int(b))
	}
	return builtinNames[b]
}

// builtinFunc is one catalog generator. Generators mutate the map only
// through the spawner's placement helpers and report data misses as
// ErrUnknownGroup or ErrUnresolvedPlacement.
type builtinFunc func(s *Spawner, m Map, terrain string) error

// builtins is the enum-keyed dispatch table, fixed at initialization.
var builtins = [builtinCount]builtinFunc{
	BuiltinNoVehicles:     builtinNoVehicles,
	BuiltinJackknifedSemi: builtinJackknifedSemi,
	BuiltinPileup:         builtinPileup,
	BuiltinPolicePileup:   builtinPolicePileup,
}

func builtinNoVehicles(_ *Spawner, _ Map, _ string) error {
	return nil
}

// builtinJackknifedSemi places a semi_truck cab and a truck_trailer as one
// crashed scene. The cab's facing is the location's pick rotated 135 degrees
// and the trailer's the same pick rotated 90, so the pair reads as a
// jackknife. The trailer offset depends on the picked facing.
func builtinJackknifedSemi(s *Spawner, m Map, terrain string) error {
	pl, err := s.resolvePlacement(semiPlacementRef, terrain)
	if err != nil {
		return err
	}
	loc := pl.Pick(s.src)
	facing := loc.PickFacing(s.src)

	cab, placed := s.addWithRetry(m, TypeSemiTruck, func() (geo.Point, Facing) {
		return loc.PickPoint(s.src), facing.Rotate(135)
	}, FuelRandom, StatusDisabled)
	if !placed {
		return nil
	}

	var trailer geo.Point
	switch facing {
	case 0:
		trailer = cab.Add(4, -10)
	case 90:
		trailer = cab.Add(12, 1)
	case 180:
		trailer = cab.Add(-4, 10)
	default:
		trailer = cab.Add(-12, -1)
	}
	// The trailer has exactly one valid position once the cab is down, so
	// there is nothing to resample; a rejection leaves just the cab.
	s.addOnce(m, TypeTruckTrailer, trailer, facing.Rotate(90), FuelRandom, StatusDisabled)
	return nil
}

// builtinPileup clusters wrecks from the city_pileup group onto the
// terrain's defective placement.
func builtinPileup(s *Spawner, m Map, terrain string) error {
	return s.pileup(m, terrain, GroupCityPileup, geo.Range{Min: 5, Max: 12})
}

// builtinPolicePileup is the pileup scene drawn from the policecar group.
func builtinPolicePileup(s *Spawner, m Map, terrain string) error {
	return s.pileup(m, terrain, GroupPoliceCar, geo.Range{Min: 1, Max: 6})
}

func (s *Spawner) pileup(m Map, terrain string, group GroupID, cars geo.Range) error {
	g, ok := s.registry.Group(group)
	if !ok {
		return fmt.Errorf("vehicle: pileup group %q: %w", group, ErrUnknownGroup)
	}
	pl, err := s.resolvePlacement(defectivePlacementRef, terrain)
	if err != nil {
		return err
	}

	count := cars.Pick(s.src)
	for i := 0; i < count; i++ {
		typ, err := g.Pick(s.src)
		if err != nil {
			return err
		}
		// Each wreck picks its own location so the pile spreads across
		// the placement's candidates.
		s.addWithRetry(m, typ, func() (geo.Point, Facing) {
			loc := pl.Pick(s.src)
			return loc.PickPoint(s.src), loc.PickFacing(s.src)
		}, FuelRandom, StatusDisabled)
	}
	return nil
}
