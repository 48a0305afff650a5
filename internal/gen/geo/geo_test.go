package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/derelict/internal/gen/geo"
	"github.com/cory-johannsen/derelict/internal/gen/rng"
)

// TestPoint_Add verifies that Add offsets both coordinates.
func TestPoint_Add(t *testing.T) {
	p := geo.Point{X: 4, Y: -10}
	assert.Equal(t, geo.Point{X: 16, Y: -9}, p.Add(12, 1))
}

// TestPoint_String verifies the log rendering of a point.
func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(3, -7)", geo.Point{X: 3, Y: -7}.String())
}

// TestRange_Validate verifies that inverted bounds are rejected and ordered
// bounds accepted.
func TestRange_Validate(t *testing.T) {
	require.Error(t, geo.Range{Min: 5, Max: 4}.Validate())
	require.NoError(t, geo.Range{Min: 4, Max: 4}.Validate())
	require.NoError(t, geo.Range{Min: -2, Max: 9}.Validate())
}

// TestRange_Fixed verifies that Fixed yields a degenerate range.
func TestRange_Fixed(t *testing.T) {
	r := geo.Fixed(7)
	assert.Equal(t, geo.Range{Min: 7, Max: 7}, r)
}

// TestRange_Pick_Degenerate verifies that a degenerate range always returns
// Min.
func TestRange_Pick_Degenerate(t *testing.T) {
	src := rng.NewSeeded(3)
	r := geo.Fixed(12)
	for i := 0; i < 32; i++ {
		assert.Equal(t, 12, r.Pick(src))
	}
}

// TestRange_Pick_CoversBounds verifies that both endpoints of an inclusive
// range are reachable.
func TestRange_Pick_CoversBounds(t *testing.T) {
	src := rng.NewSeeded(99)
	r := geo.Range{Min: 0, Max: 3}
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[r.Pick(src)] = true
	}
	for v := 0; v <= 3; v++ {
		assert.True(t, seen[v], "value %d must be reachable", v)
	}
	assert.Len(t, seen, 4, "no value outside [0, 3] may appear")
}

// TestRange_Pick_InRange_Property verifies Min <= Pick() <= Max for
// arbitrary well-formed ranges and seeds.
func TestRange_Pick_InRange_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		min := rapid.IntRange(-1000, 1000).Draw(rt, "min")
		spread := rapid.IntRange(0, 2000).Draw(rt, "spread")
		seed := rapid.Uint64().Draw(rt, "seed")

		r := geo.Range{Min: min, Max: min + spread}
		src := rng.NewSeeded(seed)
		for i := 0; i < 16; i++ {
			v := r.Pick(src)
			assert.GreaterOrEqual(rt, v, r.Min)
			assert.LessOrEqual(rt, v, r.Max)
		}
	})
}
