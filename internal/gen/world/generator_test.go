package world_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/derelict/internal/config"
	"github.com/cory-johannsen/derelict/internal/gen/geo"
	"github.com/cory-johannsen/derelict/internal/gen/vehicle"
	"github.com/cory-johannsen/derelict/internal/gen/world"
)

const trafficContent = `
vehicle_groups:
  - id: city_cars
    vehicles:
      - {type: sedan, weight: 3}
      - {type: hatchback, weight: 1}
vehicle_placements:
  - id: city_street
    locations:
      - {x: [0, 23], y: [0, 23], facing: [0, 90, 180, 270]}
  - id: default_street
    locations:
      - {x: [0, 23], y: [0, 23], facing: [0, 90]}
vehicle_spawns:
  - id: traffic
    spawn_types:
      - {weight: 1.0, group: city_cars, count: [2, 6], placement: "%t_street"}
  - id: sparse
    spawn_types:
      - {weight: 1.0, group: city_cars, count: 1, location: {x: 2, y: 2, facing: 0}}
`

func trafficRegistry(t testing.TB) *vehicle.Registry {
	t.Helper()
	reg, err := vehicle.LoadBytes([]byte(trafficContent))
	require.NoError(t, err)
	return reg
}

// layoutVehicle is a placed vehicle stripped of its instance ID, which is
// minted fresh per run and never deterministic.
type layoutVehicle struct {
	Type   vehicle.TypeID
	Pos    geo.Point
	Facing vehicle.Facing
	Fuel   int
	Status int
}

func layouts(tiles []*world.Tile) [][]layoutVehicle {
	out := make([][]layoutVehicle, len(tiles))
	for i, tile := range tiles {
		for _, v := range tile.Vehicles() {
			out[i] = append(out[i], layoutVehicle{
				Type:   v.Type,
				Pos:    v.Pos,
				Facing: v.Facing,
				Fuel:   v.Fuel,
				Status: v.Status,
			})
		}
	}
	return out
}

func trafficPlans() []world.Plan {
	return []world.Plan{
		{Terrain: "city", Spawn: "traffic"},
		{Terrain: "field", Spawn: "traffic"},
		{Terrain: "city", Spawn: "traffic"},
		{Terrain: "field", Spawn: "traffic"},
		{Terrain: "city", Spawn: "traffic"},
		{Terrain: "city", Spawn: "traffic"},
	}
}

// TestGenerator_SameSeedSameBatch verifies that one master seed fully
// determines the batch layout, independent of how many workers race through
// it: tile i always draws from seed+i.
func TestGenerator_SameSeedSameBatch(t *testing.T) {
	reg := trafficRegistry(t)
	cfg := config.GeneratorConfig{Seed: 123, TileWidth: 24, TileHeight: 24}

	cfg.Workers = 1
	serial := world.NewGenerator(reg, nil, nil, cfg, 0)
	cfg.Workers = 4
	parallel := world.NewGenerator(reg, nil, nil, cfg, 0)

	a, err := serial.GenerateBatch(context.Background(), trafficPlans())
	require.NoError(t, err)
	b, err := parallel.GenerateBatch(context.Background(), trafficPlans())
	require.NoError(t, err)

	assert.Equal(t, layouts(a), layouts(b))
	for i, tile := range a {
		assert.GreaterOrEqual(t, tile.VehicleCount(), 1, "tile %d should hold traffic", i)
		assert.LessOrEqual(t, tile.VehicleCount(), 6)
	}
}

// TestGenerator_DifferentSeedsDiffer guards against the seed being ignored.
func TestGenerator_DifferentSeedsDiffer(t *testing.T) {
	reg := trafficRegistry(t)
	cfg := config.GeneratorConfig{Workers: 2, TileWidth: 24, TileHeight: 24}

	cfg.Seed = 1
	a, err := world.NewGenerator(reg, nil, nil, cfg, 0).GenerateBatch(context.Background(), trafficPlans())
	require.NoError(t, err)
	cfg.Seed = 2
	b, err := world.NewGenerator(reg, nil, nil, cfg, 0).GenerateBatch(context.Background(), trafficPlans())
	require.NoError(t, err)

	assert.NotEqual(t, layouts(a), layouts(b))
}

// TestGenerator_PlanOrderAndSizes verifies that tiles come back in plan
// order, that explicit plan sizes win, and that omitted sizes fall back to
// the configured defaults.
func TestGenerator_PlanOrderAndSizes(t *testing.T) {
	reg := trafficRegistry(t)
	cfg := config.GeneratorConfig{Seed: 7, Workers: 3, TileWidth: 24, TileHeight: 24}
	plans := []world.Plan{
		{Terrain: "city", Spawn: "sparse", Width: 8, Height: 6},
		{Terrain: "field", Spawn: "sparse"},
		{Terrain: "desert", Spawn: "sparse"},
	}

	tiles, err := world.NewGenerator(reg, nil, nil, cfg, 0).GenerateBatch(context.Background(), plans)
	require.NoError(t, err)
	require.Len(t, tiles, 3)

	assert.Equal(t, "city", tiles[0].Terrain())
	assert.Equal(t, 8, tiles[0].Width())
	assert.Equal(t, 6, tiles[0].Height())
	assert.Equal(t, "field", tiles[1].Terrain())
	assert.Equal(t, 24, tiles[1].Width())
	assert.Equal(t, 24, tiles[1].Height())
	assert.Equal(t, "desert", tiles[2].Terrain())

	for i, tile := range tiles {
		assert.Equal(t, 1, tile.VehicleCount(), "tile %d", i)
		assert.Equal(t, geo.Point{X: 2, Y: 2}, tile.Vehicles()[0].Pos)
	}
}

// TestGenerator_UnknownSpawnYieldsEmptyTile verifies the skip contract end to
// end: the tile still generates, empty, with one logged error and a nil
// batch error.
func TestGenerator_UnknownSpawnYieldsEmptyTile(t *testing.T) {
	reg := trafficRegistry(t)
	core, logs := observer.New(zap.DebugLevel)
	cfg := config.GeneratorConfig{Seed: 9, Workers: 1, TileWidth: 24, TileHeight: 24}
	plans := []world.Plan{{Terrain: "city", Spawn: "no_such_spawn"}}

	tiles, err := world.NewGenerator(reg, zap.New(core), nil, cfg, 0).GenerateBatch(context.Background(), plans)
	require.NoError(t, err)
	require.Len(t, tiles, 1)
	assert.Equal(t, 0, tiles[0].VehicleCount())

	errorLogs := logs.FilterLevelExact(zapcore.ErrorLevel)
	require.Equal(t, 1, errorLogs.Len())
	assert.Equal(t, "vehicle spawn skipped", errorLogs.All()[0].Message)
}

// TestGenerator_ContextCancelled verifies that a cancelled context stops the
// batch with the context's error.
func TestGenerator_ContextCancelled(t *testing.T) {
	reg := trafficRegistry(t)
	cfg := config.GeneratorConfig{Seed: 1, Workers: 2, TileWidth: 24, TileHeight: 24}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := world.NewGenerator(reg, nil, nil, cfg, 0).GenerateBatch(ctx, trafficPlans())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestGenerator_EmptyPlans verifies that an empty batch is a no-op, not an
// error.
func TestGenerator_EmptyPlans(t *testing.T) {
	reg := trafficRegistry(t)
	cfg := config.GeneratorConfig{Seed: 1, Workers: 2, TileWidth: 24, TileHeight: 24}

	tiles, err := world.NewGenerator(reg, nil, nil, cfg, 0).GenerateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, tiles)
}
