// Package main provides the map generation binary: it loads vehicle content,
// reads a generation plan, and generates a batch of map tiles.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/derelict/internal/config"
	"github.com/cory-johannsen/derelict/internal/gen/rng"
	"github.com/cory-johannsen/derelict/internal/gen/vehicle"
	"github.com/cory-johannsen/derelict/internal/gen/world"
	"github.com/cory-johannsen/derelict/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	contentDir := flag.String("content", "", "path to vehicle content YAML directory; overrides config")
	planPath := flag.String("plan", "content/plans/demo.yaml", "path to generation plan file")
	seed := flag.Uint64("seed", 0, "master seed; overrides config, 0 = roll a fresh seed")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}
	if *contentDir != "" {
		cfg.Content.Dir = *contentDir
	}
	if *seed != 0 {
		cfg.Generator.Seed = *seed
	}
	if cfg.Generator.Seed == 0 {
		cfg.Generator.Seed = rng.RandomSeed()
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting map generation",
		zap.Uint64("seed", cfg.Generator.Seed),
		zap.Int("workers", cfg.Generator.Workers),
	)

	// Load vehicle content
	contentStart := time.Now()
	registry, err := vehicle.LoadDir(cfg.Content.Dir)
	if err != nil {
		logger.Fatal("loading vehicle content", zap.Error(err))
	}
	logger.Info("vehicle content loaded",
		zap.String("dir", cfg.Content.Dir),
		zap.Int("groups", registry.NumGroups()),
		zap.Int("placements", registry.NumPlacements()),
		zap.Int("spawns", registry.NumSpawns()),
		zap.Duration("elapsed", time.Since(contentStart)),
	)

	plans, err := world.LoadPlans(*planPath)
	if err != nil {
		logger.Fatal("loading generation plan", zap.Error(err))
	}
	logger.Info("plan loaded",
		zap.String("path", *planPath),
		zap.Int("tiles", len(plans)),
	)

	metrics, err := observability.NewSpawnMetrics()
	if err != nil {
		logger.Fatal("initializing metrics", zap.Error(err))
	}

	gen := world.NewGenerator(registry, logger, metrics, cfg.Generator, cfg.Spawn.PlacementAttempts)

	batchStart := time.Now()
	tiles, err := gen.GenerateBatch(context.Background(), plans)
	if err != nil {
		logger.Fatal("generating batch", zap.Error(err))
	}

	total := 0
	for i, tile := range tiles {
		total += tile.VehicleCount()
		logger.Info("tile generated",
			zap.Int("tile", i),
			zap.String("terrain", tile.Terrain()),
			zap.String("spawn", string(plans[i].Spawn)),
			zap.Int("vehicles", tile.VehicleCount()),
		)
	}
	logger.Info("batch complete",
		zap.Int("tiles", len(tiles)),
		zap.Int("vehicles", total),
		zap.Uint64("seed", cfg.Generator.Seed),
		zap.Duration("elapsed", time.Since(batchStart)),
		zap.Duration("startup", time.Since(start)),
	)
}
