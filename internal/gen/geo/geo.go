// Package geo holds the small planar types shared across map generation:
// integer grid points and inclusive scalar ranges.
package geo

import (
	"fmt"

	"github.com/cory-johannsen/derelict/internal/gen/rng"
)

// Point is a position on a map tile, in grid cells. X grows east, Y grows
// south.
type Point struct {
	X int
	Y int
}

// Add returns the point offset by dx and dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String renders the point as "(x, y)" for logs and error messages.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Range is an inclusive integer interval [Min, Max]. Content files write a
// range either as a bare scalar or as a two-element list; a scalar parses to
// a degenerate range with Min == Max.
type Range struct {
	Min int
	Max int
}

// Fixed returns the degenerate range holding exactly v.
func Fixed(v int) Range {
	return Range{Min: v, Max: v}
}

// Validate reports whether the range is well formed.
//
// Postcondition: a nil return means Min <= Max.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("geo: invalid range [%d, %d]: min exceeds max", r.Min, r.Max)
	}
	return nil
}

// Pick returns a uniform value in [Min, Max]. Both bounds are reachable.
// Degenerate ranges return Min without drawing from the source.
//
// Precondition: Min <= Max.
func (r Range) Pick(src rng.Source) int {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + src.Intn(r.Max-r.Min+1)
}
