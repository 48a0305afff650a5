package vehicle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/derelict/internal/gen/geo"
)

// yamlContentFile is the top-level YAML structure for vehicle content files.
// All three lists are optional; content authors split records across files
// however they like.
type yamlContentFile struct {
	VehicleGroups     []yamlGroup     `yaml:"vehicle_groups"`
	VehiclePlacements []yamlPlacement `yaml:"vehicle_placements"`
	VehicleSpawns     []yamlSpawn     `yaml:"vehicle_spawns"`
}

// yamlGroup is the YAML representation of a vehicle group.
type yamlGroup struct {
	ID       string             `yaml:"id"`
	Vehicles []yamlGroupVehicle `yaml:"vehicles"`
}

// yamlGroupVehicle is one weighted vehicle type entry.
type yamlGroupVehicle struct {
	Type   string `yaml:"type"`
	Weight int    `yaml:"weight"`
}

// yamlPlacement is the YAML representation of a placement set.
type yamlPlacement struct {
	ID        string         `yaml:"id"`
	Locations []yamlLocation `yaml:"locations"`
}

// yamlLocation is the YAML representation of a candidate location.
type yamlLocation struct {
	X      *yamlRange   `yaml:"x"`
	Y      *yamlRange   `yaml:"y"`
	Facing *yamlFacings `yaml:"facing"`
}

// yamlSpawn is the YAML representation of a spawn definition.
type yamlSpawn struct {
	ID         string          `yaml:"id"`
	SpawnTypes []yamlSpawnType `yaml:"spawn_types"`
}

// yamlSpawnType is one weighted spawn outcome: a builtin reference or a
// declared rule. Fuel, status, and count carry defaults when omitted.
type yamlSpawnType struct {
	Weight    float64       `yaml:"weight"`
	Builtin   string        `yaml:"builtin"`
	Group     string        `yaml:"group"`
	Count     *yamlRange    `yaml:"count"`
	Fuel      *int          `yaml:"fuel"`
	Status    *int          `yaml:"status"`
	Placement string        `yaml:"placement"`
	Location  *yamlLocation `yaml:"location"`
}

// yamlRange accepts a bare integer or a two-element [min, max] list.
type yamlRange struct {
	geo.Range
}

// UnmarshalYAML implements the scalar-or-range content form.
func (r *yamlRange) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v int
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("range must be an integer or a [min, max] list: %w", err)
		}
		r.Range = geo.Fixed(v)
		return nil
	case yaml.SequenceNode:
		var vals []int
		if err := node.Decode(&vals); err != nil {
			return fmt.Errorf("range must be an integer or a [min, max] list: %w", err)
		}
		if len(vals) != 2 {
			return fmt.Errorf("range list must have exactly 2 elements, got %d", len(vals))
		}
		r.Range = geo.Range{Min: vals[0], Max: vals[1]}
		return nil
	default:
		return fmt.Errorf("range must be an integer or a [min, max] list")
	}
}

// yamlFacings accepts a bare integer or a list of integers, in degrees.
type yamlFacings struct {
	values []int
}

// UnmarshalYAML implements the scalar-or-list content form.
func (f *yamlFacings) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v int
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("facing must be an integer or a list of integers: %w", err)
		}
		f.values = []int{v}
		return nil
	case yaml.SequenceNode:
		var vals []int
		if err := node.Decode(&vals); err != nil {
			return fmt.Errorf("facing must be an integer or a list of integers: %w", err)
		}
		f.values = vals
		return nil
	default:
		return fmt.Errorf("facing must be an integer or a list of integers")
	}
}

// namedDoc pairs a parsed content file with its name for error context.
type namedDoc struct {
	name string
	doc  yamlContentFile
}

// declaredRef records a cross-reference made by a declared spawn entry, for
// verification once every file has registered.
type declaredRef struct {
	spawn     SpawnID
	entry     int
	group     GroupID
	placement PlacementRef
}

// LoadDir reads every *.yaml/*.yml file in dir into one validated Registry.
// Records may reference entities declared in any file of the directory.
//
// Precondition: dir must be a readable directory holding at least one
// content file.
// Postcondition: Returns a Registry whose every distribution is pickable, or
// an error naming the offending file, entity, and field; on error, the
// partial registry is discarded.
func LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content dir %q: %w", dir, err)
	}

	var docs []namedDoc
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var doc yamlContentFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		docs = append(docs, namedDoc{name: name, doc: doc})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no content files found in %q", dir)
	}

	return buildRegistry(docs)
}

// LoadFile reads a single content file into a validated Registry.
//
// Precondition: path must point to a valid YAML content file.
// Postcondition: Returns a validated Registry or a non-nil error.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file %q: %w", path, err)
	}
	var doc yamlContentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return buildRegistry([]namedDoc{{name: filepath.Base(path), doc: doc}})
}

// LoadBytes parses a single content document into a validated Registry.
//
// Precondition: data must be valid YAML conforming to the content schema.
// Postcondition: Returns a validated Registry or a non-nil error.
func LoadBytes(data []byte) (*Registry, error) {
	var doc yamlContentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing content YAML: %w", err)
	}
	return buildRegistry([]namedDoc{{name: "content", doc: doc}})
}

// buildRegistry converts parsed documents into a Registry in two phases:
// register every record, then verify cross-references. The split lets a spawn
// in one file reference a group or placement declared in another, while still
// guaranteeing that a load that returns nil error leaves no dangling literal
// reference and no unpickable distribution.
func buildRegistry(docs []namedDoc) (*Registry, error) {
	reg := NewRegistry()

	for _, nd := range docs {
		for _, yg := range nd.doc.VehicleGroups {
			g, err := convertGroup(yg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", nd.name, err)
			}
			if err := reg.RegisterGroup(g); err != nil {
				return nil, fmt.Errorf("%s: %w", nd.name, err)
			}
		}
		for _, yp := range nd.doc.VehiclePlacements {
			p, err := convertPlacement(yp)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", nd.name, err)
			}
			if err := reg.RegisterPlacement(p); err != nil {
				return nil, fmt.Errorf("%s: %w", nd.name, err)
			}
		}
	}

	var refs []declaredRef
	for _, nd := range docs {
		for _, ys := range nd.doc.VehicleSpawns {
			sp := NewSpawn(SpawnID(ys.ID))
			for i, yt := range ys.SpawnTypes {
				fn, err := convertSpawnType(yt)
				if err != nil {
					return nil, fmt.Errorf("%s: vehicle spawn %q: spawn_types[%d]: %w", nd.name, ys.ID, i, err)
				}
				if err := sp.Add(yt.Weight, fn); err != nil {
					return nil, fmt.Errorf("%s: spawn_types[%d]: %w", nd.name, i, err)
				}
				if fn.Kind == KindDeclared {
					refs = append(refs, declaredRef{
						spawn:     sp.ID,
						entry:     i,
						group:     fn.Declared.Group,
						placement: fn.Declared.Placement,
					})
				}
			}
			if err := reg.RegisterSpawn(sp); err != nil {
				return nil, fmt.Errorf("%s: %w", nd.name, err)
			}
		}
	}

	// Dangling references fail the load. Terrain-token placements resolve at
	// apply time by nature and cannot be checked here.
	for _, ref := range refs {
		if _, ok := reg.Group(ref.group); !ok {
			return nil, fmt.Errorf("vehicle spawn %q: spawn_types[%d]: references unknown group %q",
				ref.spawn, ref.entry, ref.group)
		}
		if ref.placement != "" && !ref.placement.HasTerrainToken() {
			if _, ok := reg.Placement(PlacementID(ref.placement)); !ok {
				return nil, fmt.Errorf("vehicle spawn %q: spawn_types[%d]: references unknown placement %q",
					ref.spawn, ref.entry, ref.placement)
			}
		}
	}

	return reg, nil
}

// convertGroup converts a parsed group record into its domain type.
func convertGroup(yg yamlGroup) (*Group, error) {
	g := NewGroup(GroupID(yg.ID))
	for i, yv := range yg.Vehicles {
		if err := g.AddVehicle(TypeID(yv.Type), yv.Weight); err != nil {
			return nil, fmt.Errorf("vehicles[%d]: %w", i, err)
		}
	}
	return g, nil
}

// convertPlacement converts a parsed placement record into its domain type.
func convertPlacement(yp yamlPlacement) (*Placement, error) {
	p := NewPlacement(PlacementID(yp.ID))
	for i, yl := range yp.Locations {
		loc, err := convertLocation(yl)
		if err != nil {
			return nil, fmt.Errorf("vehicle placement %q: locations[%d]: %w", yp.ID, i, err)
		}
		p.Locations = append(p.Locations, loc)
	}
	return p, nil
}

// convertLocation converts a parsed location, requiring all three fields.
func convertLocation(yl yamlLocation) (Location, error) {
	if yl.X == nil || yl.Y == nil {
		return Location{}, fmt.Errorf("x and y are required")
	}
	if yl.Facing == nil {
		return Location{}, fmt.Errorf("facing is required")
	}
	facings := make([]Facing, len(yl.Facing.values))
	for i, v := range yl.Facing.values {
		facings[i] = Facing(v)
	}
	loc := Location{X: yl.X.Range, Y: yl.Y.Range, Facings: Facings{Values: facings}}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// convertSpawnType converts one spawn outcome entry. Builtin and declared
// forms are mutually exclusive; a declared entry defaults count to 1 and fuel
// and status to their random conventions.
func convertSpawnType(yt yamlSpawnType) (Function, error) {
	switch {
	case yt.Builtin != "" && yt.Group != "":
		return Function{}, fmt.Errorf("entry must set builtin or group, not both")
	case yt.Builtin != "":
		id, ok := BuiltinByName(yt.Builtin)
		if !ok {
			return Function{}, fmt.Errorf("unknown builtin %q", yt.Builtin)
		}
		return NewBuiltinFunction(id), nil
	case yt.Group != "":
		d := Declared{
			Group:     GroupID(yt.Group),
			Count:     geo.Fixed(1),
			Fuel:      FuelRandom,
			Status:    StatusRandom,
			Placement: PlacementRef(yt.Placement),
		}
		if yt.Count != nil {
			d.Count = yt.Count.Range
		}
		if yt.Fuel != nil {
			d.Fuel = *yt.Fuel
		}
		if yt.Status != nil {
			d.Status = *yt.Status
		}
		if yt.Location != nil {
			loc, err := convertLocation(*yt.Location)
			if err != nil {
				return Function{}, fmt.Errorf("location: %w", err)
			}
			d.Location = &loc
		}
		return NewDeclaredFunction(d), nil
	default:
		return Function{}, fmt.Errorf("entry must set builtin or group")
	}
}
