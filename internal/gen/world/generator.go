package world

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/derelict/internal/config"
	"github.com/cory-johannsen/derelict/internal/gen/rng"
	"github.com/cory-johannsen/derelict/internal/gen/vehicle"
	"github.com/cory-johannsen/derelict/internal/observability"
)

// Generator produces batches of tiles from generation plans. Tiles generate
// concurrently up to the configured worker limit, each goroutine with its own
// seeded source, so a batch replays exactly from one master seed.
type Generator struct {
	registry *vehicle.Registry
	logger   *zap.Logger
	metrics  *observability.SpawnMetrics
	cfg      config.GeneratorConfig
	attempts int
}

// NewGenerator wires a generator.
//
// Precondition: registry must not be nil. A nil logger logs nothing, a nil
// metrics records nothing, and out-of-range cfg values fall back to one
// worker and DefaultTileSize tiles.
func NewGenerator(registry *vehicle.Registry, logger *zap.Logger, metrics *observability.SpawnMetrics, cfg config.GeneratorConfig, attempts int) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.TileWidth < 1 {
		cfg.TileWidth = DefaultTileSize
	}
	if cfg.TileHeight < 1 {
		cfg.TileHeight = DefaultTileSize
	}
	return &Generator{
		registry: registry,
		logger:   logger,
		metrics:  metrics,
		cfg:      cfg,
		attempts: attempts,
	}
}

// GenerateBatch generates one tile per plan. Tile i draws from a source
// seeded with the master seed plus i, so equal seeds and plans yield
// identical batches regardless of worker interleaving. A spawner failure
// loses that tile's vehicles, not the batch: it is logged and generation
// keeps going. The only non-nil error is context cancellation.
//
// Postcondition: on nil error the returned slice holds one tile per plan, in
// plan order.
func (g *Generator) GenerateBatch(ctx context.Context, plans []Plan) ([]*Tile, error) {
	tiles := make([]*Tile, len(plans))
	var failed atomic.Int64

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)
	for i, plan := range plans {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			width, height := plan.Width, plan.Height
			if width < 1 {
				width = g.cfg.TileWidth
			}
			if height < 1 {
				height = g.cfg.TileHeight
			}

			tile := NewTile(plan.Terrain, width, height)
			src := rng.NewSeeded(g.cfg.Seed + uint64(i))
			spawner := vehicle.NewSpawner(g.registry, src, g.logger, g.metrics, g.attempts)
			if err := spawner.Apply(tile, plan.Terrain, plan.Spawn); err != nil {
				failed.Add(1)
				g.logger.Error("tile generation failed",
					zap.Int("tile", i),
					zap.String("terrain", plan.Terrain),
					zap.String("spawn", string(plan.Spawn)),
					zap.Error(err))
			}
			tiles[i] = tile
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if n := failed.Load(); n > 0 {
		g.logger.Warn("batch finished with failed tiles",
			zap.Int64("failed", n),
			zap.Int("tiles", len(plans)))
	}
	return tiles, nil
}
