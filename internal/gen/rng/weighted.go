package rng

import (
	"errors"
	"fmt"
)

// ErrEmptyDistribution is returned by Pick when the list holds no entries or
// when every entry carries zero weight.
var ErrEmptyDistribution = errors.New("rng: empty weighted distribution")

// Weight is the set of weight kinds a WeightedList supports. Integer weights
// draw with Source.Intn so each unit of weight is equally likely; float
// weights scale a uniform [0, 1) draw across the total.
type Weight interface {
	~int | ~int64 | ~float64
}

type weightedEntry[T any, W Weight] struct {
	item   T
	weight W
}

// WeightedList is a discrete distribution over items of type T. Selection is
// proportional to weight: an entry with weight 6 is drawn three times as
// often as one with weight 2. Zero-weight entries are retained but never
// selected.
//
// The zero value is an empty list ready for use. A WeightedList is not safe
// for concurrent mutation; the generation pipeline builds lists during
// content load and treats them as read-only afterward.
type WeightedList[T any, W Weight] struct {
	entries []weightedEntry[T, W]
	total   W
}

// Add appends an entry with the given weight.
//
// Postcondition: on success the entry participates in future Pick calls in
// proportion to weight. Negative weights are rejected and leave the list
// unchanged.
func (l *WeightedList[T, W]) Add(item T, weight W) error {
	if weight < 0 {
		return fmt.Errorf("rng: negative weight %v", weight)
	}
	l.entries = append(l.entries, weightedEntry[T, W]{item: item, weight: weight})
	l.total += weight
	return nil
}

// Pick draws one entry at random, proportional to weight.
//
// Precondition: src is non-nil.
// Postcondition: the returned item is one of the positively weighted entries,
// or ErrEmptyDistribution if none exist.
func (l *WeightedList[T, W]) Pick(src Source) (T, error) {
	var zero T
	if len(l.entries) == 0 || l.total <= 0 {
		return zero, ErrEmptyDistribution
	}
	roll := drawBelow(src, l.total)
	var acc W
	for _, e := range l.entries {
		acc += e.weight
		if roll < acc {
			return e.item, nil
		}
	}
	// Float rounding can leave the roll at the very top of the range; it
	// belongs to the last entry that carries weight.
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].weight > 0 {
			return l.entries[i].item, nil
		}
	}
	return zero, ErrEmptyDistribution
}

// Len reports the number of entries, including zero-weight ones.
func (l *WeightedList[T, W]) Len() int {
	return len(l.entries)
}

// TotalWeight reports the sum of all entry weights.
func (l *WeightedList[T, W]) TotalWeight() W {
	return l.total
}

// drawBelow returns a uniform value in [0, total). Integer weight kinds use
// an integer draw; everything else scales a uniform float.
func drawBelow[W Weight](src Source, total W) W {
	switch t := any(total).(type) {
	case int:
		return W(src.Intn(t))
	case int64:
		return W(src.Intn(int(t)))
	default:
		return W(float64(total) * src.Float64())
	}
}
