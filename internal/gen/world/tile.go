// Package world holds the concrete map tile the vehicle spawner mutates and
// the batch generator that drives many tiles concurrently.
package world

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/derelict/internal/gen/geo"
	"github.com/cory-johannsen/derelict/internal/gen/vehicle"
)

// DefaultTileSize is the side length of a standard map tile in grid cells.
const DefaultTileSize = 24

// Vehicle is one vehicle placed on a tile.
type Vehicle struct {
	// ID is the unique instance identifier, minted at placement.
	ID     uuid.UUID
	Type   vehicle.TypeID
	Pos    geo.Point
	Facing vehicle.Facing
	// Fuel and Status carry the spawn conventions unchanged: -1 means roll
	// at game time, status 0 is pristine and 1 disabled.
	Fuel   int
	Status int
}

// Tile is a square map fragment under generation. Generation runs one
// goroutine per tile, so Tile does no locking of its own.
type Tile struct {
	terrain  string
	width    int
	height   int
	occupied map[geo.Point]bool
	vehicles []Vehicle
}

var _ vehicle.Map = (*Tile)(nil)

// NewTile returns an empty tile for the given terrain.
//
// Precondition: width and height must be positive. Panics with
// "world: invalid tile size" otherwise.
func NewTile(terrain string, width, height int) *Tile {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("world: invalid tile size %dx%d", width, height))
	}
	return &Tile{
		terrain:  terrain,
		width:    width,
		height:   height,
		occupied: make(map[geo.Point]bool),
	}
}

// Terrain returns the terrain the tile is generated for.
func (t *Tile) Terrain() string {
	return t.terrain
}

// Width returns the tile width in grid cells.
func (t *Tile) Width() int {
	return t.width
}

// Height returns the tile height in grid cells.
func (t *Tile) Height() int {
	return t.height
}

// AddVehicle places one vehicle at the given position. Positions outside the
// tile or already holding a vehicle are rejected with vehicle.ErrOccupied so
// the spawner resamples.
//
// Postcondition: on success the cell is occupied and the recorded vehicle
// carries a fresh unique ID.
func (t *Tile) AddVehicle(typ vehicle.TypeID, at geo.Point, facing vehicle.Facing, fuel, status int) error {
	if at.X < 0 || at.X >= t.width || at.Y < 0 || at.Y >= t.height {
		return fmt.Errorf("world: %v outside %dx%d tile: %w", at, t.width, t.height, vehicle.ErrOccupied)
	}
	if t.occupied[at] {
		return fmt.Errorf("world: %v already occupied: %w", at, vehicle.ErrOccupied)
	}
	t.occupied[at] = true
	t.vehicles = append(t.vehicles, Vehicle{
		ID:     uuid.New(),
		Type:   typ,
		Pos:    at,
		Facing: facing,
		Fuel:   fuel,
		Status: status,
	})
	return nil
}

// Vehicles returns a snapshot of the placed vehicles in placement order.
func (t *Tile) Vehicles() []Vehicle {
	out := make([]Vehicle, len(t.vehicles))
	copy(out, t.vehicles)
	return out
}

// VehicleCount reports the number of placed vehicles.
func (t *Tile) VehicleCount() int {
	return len(t.vehicles)
}

// OccupiedAt reports whether a vehicle already holds the given cell.
func (t *Tile) OccupiedAt(at geo.Point) bool {
	return t.occupied[at]
}
