package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/derelict/internal/gen/vehicle"
)

// Plan describes one tile to generate: the terrain it sits on, the spawn to
// apply, and an optional size override.
type Plan struct {
	Terrain string          `yaml:"terrain"`
	Spawn   vehicle.SpawnID `yaml:"spawn"`
	// Width and Height override the configured default tile size when
	// positive.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// yamlPlanFile is the top-level YAML structure for generation plan files.
type yamlPlanFile struct {
	Tiles []Plan `yaml:"tiles"`
}

// LoadPlans reads a generation plan file: a YAML document with a top-level
// "tiles" list.
//
// Postcondition: every returned plan names a terrain and a spawn.
func LoadPlans(path string) ([]Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file %q: %w", path, err)
	}
	var pf yamlPlanFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing plan file %q: %w", path, err)
	}
	if len(pf.Tiles) == 0 {
		return nil, fmt.Errorf("plan file %q has no tiles", path)
	}
	for i, p := range pf.Tiles {
		if p.Terrain == "" {
			return nil, fmt.Errorf("plan file %q: tiles[%d]: terrain is required", path, i)
		}
		if p.Spawn == "" {
			return nil, fmt.Errorf("plan file %q: tiles[%d]: spawn is required", path, i)
		}
	}
	return pf.Tiles, nil
}
