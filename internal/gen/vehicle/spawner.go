package vehicle

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/derelict/internal/gen/geo"
	"github.com/cory-johannsen/derelict/internal/gen/rng"
	"github.com/cory-johannsen/derelict/internal/observability"
)

// DefaultPlacementAttempts bounds position sampling per vehicle: one initial
// attempt plus two retries.
const DefaultPlacementAttempts = 3

// Spawner applies named spawns to map tiles. It reads the registry, draws
// from its source, and reports through its logger and metrics. A Spawner is
// safe for concurrent use only when its Source is; batch generation gives
// each tile its own spawner and seeded source.
type Spawner struct {
	registry *Registry
	src      rng.Source
	logger   *zap.Logger
	metrics  *observability.SpawnMetrics
	attempts int
}

// NewSpawner wires a spawner.
//
// Precondition: registry and src must not be nil. A nil logger logs nothing,
// a nil metrics records nothing, and attempts < 1 falls back to
// DefaultPlacementAttempts.
func NewSpawner(registry *Registry, src rng.Source, logger *zap.Logger, metrics *observability.SpawnMetrics, attempts int) *Spawner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if attempts < 1 {
		attempts = DefaultPlacementAttempts
	}
	return &Spawner{
		registry: registry,
		src:      src,
		logger:   logger,
		metrics:  metrics,
		attempts: attempts,
	}
}

// Apply runs the named spawn against m for the given terrain.
//
// Data misses (unknown spawn or group, unresolved placement) are logged
// exactly once, counted, and swallowed: the map is left as it is and nil is
// returned so the surrounding generation pipeline keeps moving. A non-nil
// return means a programming error, such as an unpickable distribution that
// escaped load validation.
//
// Postcondition: the map is mutated only through Map.AddVehicle.
func (s *Spawner) Apply(m Map, terrain string, id SpawnID) error {
	sp, ok := s.registry.Spawn(id)
	if !ok {
		s.skip(fmt.Errorf("vehicle: spawn %q: %w", id, ErrUnknownSpawn), terrain)
		return nil
	}

	fn, err := sp.Pick(s.src)
	if err != nil {
		s.logger.Error("vehicle spawn distribution not pickable",
			zap.String("spawn", string(id)),
			zap.String("terrain", terrain),
			zap.Error(err))
		return err
	}

	err = s.applyFunction(fn, m, terrain)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnknownGroup), errors.Is(err, ErrUnresolvedPlacement):
		s.skip(err, terrain)
		return nil
	default:
		s.logger.Error("vehicle spawn failed",
			zap.String("spawn", string(id)),
			zap.String("terrain", terrain),
			zap.Error(err))
		return err
	}
}

// applyFunction dispatches on the function kind. The variant is closed;
// anything else is a programming error.
func (s *Spawner) applyFunction(fn Function, m Map, terrain string) error {
	switch fn.Kind {
	case KindBuiltin:
		if fn.Builtin < 0 || fn.Builtin >= builtinCount {
			panic(fmt.Sprintf("vehicle: unknown builtin %d", int(fn.Builtin)))
		}
		return builtins[fn.Builtin](s, m, terrain)
	case KindDeclared:
		return s.applyDeclared(&fn.Declared, m, terrain)
	default:
		panic(fmt.Sprintf("vehicle: unknown function kind %d", int(fn.Kind)))
	}
}

// applyDeclared runs a data-declared rule: resolve the vehicle type and the
// location once, then place the sampled count one vehicle at a time.
func (s *Spawner) applyDeclared(d *Declared, m Map, terrain string) error {
	g, ok := s.registry.Group(d.Group)
	if !ok {
		return fmt.Errorf("vehicle: group %q: %w", d.Group, ErrUnknownGroup)
	}
	typ, err := g.Pick(s.src)
	if err != nil {
		return err
	}

	loc := d.Location
	if loc == nil {
		pl, err := s.resolvePlacement(d.Placement, terrain)
		if err != nil {
			return err
		}
		loc = pl.Pick(s.src)
	}

	count := d.Count.Pick(s.src)
	for i := 0; i < count; i++ {
		s.addWithRetry(m, typ, func() (geo.Point, Facing) {
			return loc.PickPoint(s.src), loc.PickFacing(s.src)
		}, d.Fuel, d.Status)
	}
	return nil
}

// resolvePlacement turns a placement reference into a registered placement.
// A terrain-token reference tries the requested terrain first and the
// reserved default terrain second; a literal reference names one placement
// and never falls back.
func (s *Spawner) resolvePlacement(ref PlacementRef, terrain string) (*Placement, error) {
	if !ref.HasTerrainToken() {
		pl, ok := s.registry.Placement(PlacementID(ref))
		if !ok {
			return nil, fmt.Errorf("vehicle: placement %q: %w", ref, ErrUnresolvedPlacement)
		}
		return pl, nil
	}
	if pl, ok := s.registry.Placement(ref.Resolve(terrain)); ok {
		return pl, nil
	}
	if pl, ok := s.registry.Placement(ref.Resolve(DefaultTerrain)); ok {
		return pl, nil
	}
	return nil, fmt.Errorf("vehicle: placement %q for terrain %q: %w", ref, terrain, ErrUnresolvedPlacement)
}

// addWithRetry asks the map to place one vehicle, drawing a fresh position
// and facing from sample on every rejection, up to the spawner's attempt
// bound. Exhausting the bound is partial success, not an error: the scene is
// simply one vehicle smaller.
//
// Postcondition: placed reports whether a vehicle was added; at holds the
// accepted position when placed is true.
func (s *Spawner) addWithRetry(m Map, typ TypeID, sample func() (geo.Point, Facing), fuel, status int) (at geo.Point, placed bool) {
	for attempt := 1; attempt <= s.attempts; attempt++ {
		pt, facing := sample()
		if err := m.AddVehicle(typ, pt, facing, fuel, status); err != nil {
			if attempt < s.attempts {
				s.metrics.PlacementRetried()
			}
			continue
		}
		s.metrics.VehiclePlaced()
		return pt, true
	}
	s.logger.Debug("vehicle placement abandoned",
		zap.String("type", string(typ)),
		zap.Int("attempts", s.attempts))
	return geo.Point{}, false
}

// addOnce places one vehicle at a fixed position with no resampling.
func (s *Spawner) addOnce(m Map, typ TypeID, at geo.Point, facing Facing, fuel, status int) bool {
	if err := m.AddVehicle(typ, at, facing, fuel, status); err != nil {
		s.logger.Debug("vehicle placement abandoned",
			zap.String("type", string(typ)),
			zap.Int("attempts", 1))
		return false
	}
	s.metrics.VehiclePlaced()
	return true
}

// skip records a data miss: one error log, one skip counter increment, no
// vehicles for this call.
func (s *Spawner) skip(err error, terrain string) {
	reason := skipReason(err)
	s.logger.Error("vehicle spawn skipped",
		zap.String("terrain", terrain),
		zap.String("reason", reason),
		zap.Error(err))
	s.metrics.SpawnSkipped(reason)
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownSpawn):
		return "unknown_spawn"
	case errors.Is(err, ErrUnknownGroup):
		return "unknown_group"
	case errors.Is(err, ErrUnresolvedPlacement):
		return "unresolved_placement"
	default:
		return "other"
	}
}
