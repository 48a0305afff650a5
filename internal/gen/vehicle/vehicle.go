// Package vehicle implements data-driven vehicle placement for map
// generation: weighted vehicle groups, terrain placement sets, spawn
// functions, and the spawner that applies a named spawn to a map tile.
//
// Content is loaded once into a Registry, which is read-only afterward and
// shared by reference across concurrent generation calls. All randomness
// flows through an injected rng.Source.
package vehicle

import (
	"github.com/cory-johannsen/derelict/internal/gen/geo"
)

// TypeID identifies a vehicle blueprint. Blueprints live outside this
// system; the ID is opaque here.
type TypeID string

// GroupID names a vehicle group.
type GroupID string

// PlacementID names a placement set.
type PlacementID string

// SpawnID names a spawn definition; generation code invokes spawns by this
// name.
type SpawnID string

// Facing is a vehicle orientation in integer degrees, in [0, 360).
type Facing int

// Rotate returns the facing turned clockwise by deg degrees, normalized to
// [0, 360).
//
// Precondition: deg >= 0.
func (f Facing) Rotate(deg int) Facing {
	return Facing((int(f) + deg) % 360)
}

// Fuel and status values passed through to the map collaborator. The map
// owns their interpretation; this package only records the convention.
const (
	// FuelRandom asks the map to roll a fuel level.
	FuelRandom = -1
	// StatusRandom asks the map to roll a damage state.
	StatusRandom = -1
	// StatusPristine requests an undamaged vehicle.
	StatusPristine = 0
	// StatusDisabled requests a wrecked, non-functional vehicle.
	StatusDisabled = 1
)

// Map is the collaborator that instantiates vehicles onto a tile during
// generation.
type Map interface {
	// AddVehicle places one vehicle. It returns ErrOccupied when the
	// position is occupied or otherwise unusable; callers resample and
	// retry within their attempt bound.
	AddVehicle(typ TypeID, at geo.Point, facing Facing, fuel, status int) error
}
