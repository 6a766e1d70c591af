/*
Package knots holds the mutable knot sequence of a curve under interactive
editing, together with the editing operations a pointer-driven user
interface needs.

A Store owns the ordered knots; a knot's index is its only identity.
Control points are never stored: they are derived from the current knots
whenever they are needed, so every mutation takes effect immediately.

Neither Store nor Editor is safe for concurrent use. Hosts with more than
one thread have to confine all calls on one instance to a single goroutine
or serialize them with one mutex.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package knots

import (
	"github.com/npillmayer/knotedit"
	"github.com/npillmayer/knotedit/proximity"
	"github.com/npillmayer/knotedit/spline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'knotedit'
func tracer() tracing.Trace {
	return tracing.Select("knotedit")
}

// MinKnots is the smallest number of knots a curve can be solved for.
const MinKnots = 2

// Store is an ordered sequence of knots.
type Store struct {
	knots  []knotedit.Pair
	radius float64 // hit radius, keeps knots away from the canvas border
}

// NewStore creates a knot store holding a copy of knots. hitRadius is the
// radius of a knot's hit-circle, see Move.
func NewStore(hitRadius float64, knots ...knotedit.Pair) *Store {
	s := &Store{
		knots:  make([]knotedit.Pair, len(knots), len(knots)*2),
		radius: hitRadius,
	}
	copy(s.knots, knots)
	return s
}

// Count returns the number of knots.
func (s *Store) Count() int {
	return len(s.knots)
}

// At returns knot i. For an index out of range, At returns false.
func (s *Store) At(i int) (knotedit.Pair, bool) {
	if i < 0 || i >= len(s.knots) {
		return knotedit.Origin, false
	}
	return s.knots[i], true
}

// Knots returns a copy of the knot sequence.
func (s *Store) Knots() []knotedit.Pair {
	knots := make([]knotedit.Pair, len(s.knots))
	copy(knots, s.knots)
	return knots
}

// IndexAt returns the index of the first knot not farther than radius from
// pt, or -1. The boundary is inclusive. If more than one knot is within
// radius, the lowest index wins.
func (s *Store) IndexAt(pt knotedit.Pair, radius float64) int {
	return proximity.IndexAt(s.knots, pt, radius)
}

// Move sets knot i to pt, keeping the knot's hit-circle inside the canvas:
// x is clamped to [r, width-r], y to [r, height-r], with r the hit radius.
// Infinite coordinates are clamped like any other. Move is a no-op for an
// index out of range or a pt with a NaN coordinate, and then returns false.
func (s *Store) Move(i int, pt knotedit.Pair, canvas knotedit.Canvas) bool {
	if i < 0 || i >= len(s.knots) || pt.IsNaN() {
		return false
	}
	s.knots[i] = knotedit.ClampInto(pt, canvas.Inset(s.radius))
	tracer().Debugf("knot %d moved to %s", i, s.knots[i])
	return true
}

// Insert puts pt at position i, shifting knots i… one position to the right.
// i has to be a valid index of an existing knot, therefore a knot cannot be
// appended after the last one. Insert is a no-op for an index out of range
// or a non-finite pt, and then returns false.
func (s *Store) Insert(i int, pt knotedit.Pair) bool {
	if i < 0 || i >= len(s.knots) || !pt.IsFinite() {
		return false
	}
	s.knots = append(s.knots, knotedit.Origin)
	copy(s.knots[i+1:], s.knots[i:])
	s.knots[i] = pt
	tracer().Debugf("knot %s inserted at %d, now %d knots", pt, i, len(s.knots))
	return true
}

// Remove deletes knot i, shifting knots i+1… one position to the left.
// A curve keeps at least MinKnots knots. Remove is a no-op for an index out
// of range or if the store holds MinKnots knots or fewer, and then returns false.
func (s *Store) Remove(i int) bool {
	if i < 0 || i >= len(s.knots) {
		return false
	}
	if len(s.knots) <= MinKnots {
		tracer().Errorf("refusing to remove knot %d, curve needs at least %d knots", i, MinKnots)
		return false
	}
	s.knots = append(s.knots[:i], s.knots[i+1:]...)
	tracer().Debugf("knot %d removed, now %d knots", i, len(s.knots))
	return true
}

// Controls solves the spline control points for the current knots.
func (s *Store) Controls() (*spline.Controls, error) {
	return spline.FindControls(s.knots)
}
