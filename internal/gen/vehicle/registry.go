package vehicle

import "fmt"

// Registry holds all loaded vehicle groups, placements, and spawns indexed
// by ID. It is populated during content load and read-only afterward, which
// makes concurrent reads from parallel generation goroutines safe without
// locking. Registration validates each entity, so everything registered is
// pickable at run time.
type Registry struct {
	groups     map[GroupID]*Group
	placements map[PlacementID]*Placement
	spawns     map[SpawnID]*Spawn
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		groups:     make(map[GroupID]*Group),
		placements: make(map[PlacementID]*Placement),
		spawns:     make(map[SpawnID]*Spawn),
	}
}

// RegisterGroup adds g to the registry.
//
// Precondition:  g must not be nil.
// Postcondition: Group(g.ID) returns (g, true); returns an error if g fails
// validation or g.ID is already registered.
func (r *Registry) RegisterGroup(g *Group) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if _, exists := r.groups[g.ID]; exists {
		return fmt.Errorf("vehicle: Registry.RegisterGroup: group ID %q already registered", g.ID)
	}
	r.groups[g.ID] = g
	return nil
}

// RegisterPlacement adds p to the registry.
//
// Precondition:  p must not be nil.
// Postcondition: Placement(p.ID) returns (p, true); returns an error if p
// fails validation or p.ID is already registered.
func (r *Registry) RegisterPlacement(p *Placement) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, exists := r.placements[p.ID]; exists {
		return fmt.Errorf("vehicle: Registry.RegisterPlacement: placement ID %q already registered", p.ID)
	}
	r.placements[p.ID] = p
	return nil
}

// RegisterSpawn adds s to the registry.
//
// Precondition:  s must not be nil.
// Postcondition: Spawn(s.ID) returns (s, true); returns an error if s fails
// validation or s.ID is already registered.
func (r *Registry) RegisterSpawn(s *Spawn) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, exists := r.spawns[s.ID]; exists {
		return fmt.Errorf("vehicle: Registry.RegisterSpawn: spawn ID %q already registered", s.ID)
	}
	r.spawns[s.ID] = s
	return nil
}

// Group returns the group for the given id and whether it was found.
func (r *Registry) Group(id GroupID) (*Group, bool) {
	g, ok := r.groups[id]
	return g, ok
}

// Placement returns the placement for the given id and whether it was found.
func (r *Registry) Placement(id PlacementID) (*Placement, bool) {
	p, ok := r.placements[id]
	return p, ok
}

// Spawn returns the spawn for the given id and whether it was found.
func (r *Registry) Spawn(id SpawnID) (*Spawn, bool) {
	s, ok := r.spawns[id]
	return s, ok
}

// NumGroups reports the number of registered groups.
func (r *Registry) NumGroups() int {
	return len(r.groups)
}

// NumPlacements reports the number of registered placements.
func (r *Registry) NumPlacements() int {
	return len(r.placements)
}

// NumSpawns reports the number of registered spawns.
func (r *Registry) NumSpawns() int {
	return len(r.spawns)
}
