package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/cory-johannsen/derelict/internal/observability"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// SpawnMetrics counts the outcomes of vehicle spawn applications. A nil
// *SpawnMetrics is valid and records nothing, so callers never branch on
// whether metrics are wired.
type SpawnMetrics struct {
	vehiclesPlaced   metric.Int64Counter
	spawnsSkipped    metric.Int64Counter
	placementRetries metric.Int64Counter
}

// NewSpawnMetrics creates the spawn counters on the global OTel meter
// (a no-op meter unless the host process configured a provider).
//
// Postcondition: Returns a SpawnMetrics with all counters registered, or a
// non-nil error.
func NewSpawnMetrics() (*SpawnMetrics, error) {
	m := meter()
	sm := &SpawnMetrics{}

	var err error

	sm.vehiclesPlaced, err = m.Int64Counter(
		"spawn.vehicles.placed",
		metric.WithDescription("Total vehicles placed onto map tiles"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating vehicles placed counter: %w", err)
	}

	sm.spawnsSkipped, err = m.Int64Counter(
		"spawn.skipped",
		metric.WithDescription("Total spawn applications skipped on a data miss"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating spawns skipped counter: %w", err)
	}

	sm.placementRetries, err = m.Int64Counter(
		"spawn.placement.retries",
		metric.WithDescription("Total position resamples after the map rejected a placement"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating placement retries counter: %w", err)
	}

	return sm, nil
}

// VehiclePlaced records one successful vehicle placement.
func (sm *SpawnMetrics) VehiclePlaced() {
	if sm == nil {
		return
	}
	sm.vehiclesPlaced.Add(context.Background(), 1)
}

// SpawnSkipped records one skipped spawn application with the miss reason
// ("unknown_spawn", "unknown_group", "unresolved_placement").
func (sm *SpawnMetrics) SpawnSkipped(reason string) {
	if sm == nil {
		return
	}
	sm.spawnsSkipped.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("reason", reason)))
}

// PlacementRetried records one position resample after a map rejection.
func (sm *SpawnMetrics) PlacementRetried() {
	if sm == nil {
		return
	}
	sm.placementRetries.Add(context.Background(), 1)
}
