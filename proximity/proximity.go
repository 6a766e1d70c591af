/*
Package proximity translates a pointer position into either the nearest knot
of a curve or the nearest point on the curve itself.

Curves are given as a sequence of knots. The Bezier control points are
solved afresh for every query, nothing is cached between calls.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package proximity

import (
	"math"

	"github.com/npillmayer/knotedit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// DefaultStep is the default sampling step along a segment's curve parameter.
const DefaultStep = 0.1

// IndexAt returns the index of the first knot whose distance to pt is at
// most radius, or -1 if no knot is that close. Knots are scanned in order,
// thus if several knots are within radius, the one with the lowest index
// wins, regardless of which one is closest.
func IndexAt(knots []knotedit.Pair, pt knotedit.Pair, radius float64) int {
	for i, z := range knots {
		if z.Distance(pt) <= radius {
			return i
		}
	}
	return -1
}

// ClosestOnLine returns the point on the line piece from a to b which is
// closest to q. q is projected onto the infinite line through a and b; if the
// projection falls outside the piece, the nearer endpoint is returned.
func ClosestOnLine(a, b, q knotedit.Pair) knotedit.Pair {
	ab := b - a
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return a
	}
	t := (q - a).Dot(ab) / l2
	if t <= 0 {
		return a
	} else if t >= 1 {
		return b
	}
	return a + ab.Scaled(t)
}

// Hit is the result of a search for the point on a curve closest to a query.
type Hit struct {
	Segment  int           // index of the segment, i.e. of its start knot
	Point    knotedit.Pair // closest point found on the sampled curve
	Distance float64       // distance from the query to Point
}

// InsertAt is the knot index at which a new knot at h.Point belongs:
// immediately after the start knot of the segment.
func (h Hit) InsertAt() int {
	return h.Segment + 1
}

// Engine answers proximity queries against a curve. A Step outside (0,1]
// selects DefaultStep.
type Engine struct {
	HitRadius float64 // maximum distance for a pointer to be on a knot
	Threshold float64 // maximum distance for a pointer to be on the curve, usually the stroke's half-width
	Step      float64 // sampling step for curve parameter t, 0 < Step ≤ 1
}

// NewEngine creates a proximity engine with sampling step DefaultStep.
func NewEngine(hitRadius, threshold float64) *Engine {
	return &Engine{
		HitRadius: hitRadius,
		Threshold: threshold,
		Step:      DefaultStep,
	}
}

// HitTest returns the index of the knot under pt, or -1. See IndexAt.
func (e *Engine) HitTest(knots []knotedit.Pair, pt knotedit.Pair) int {
	return IndexAt(knots, pt, e.HitRadius)
}

// Closest finds the point on the curve through knots which is closest to pt.
// The curve is approximated by sampling every segment with step size
// e.Step; the sample points of a segment are connected by straight line
// pieces. On equal distances, the earlier segment and the earlier piece win.
//
// Closest returns false if the knots do not describe a solvable curve.
func (e *Engine) Closest(knots []knotedit.Pair, pt knotedit.Pair) (Hit, bool) {
	flat, ok := e.flatten(knots)
	if !ok {
		return Hit{}, false
	}
	best := Hit{Segment: -1}
	bestSq := math.Inf(1) // squared distance of best
	for i, contour := range flat {
		if d := distToRect(pt, contour.BoundingBox()); d*d > bestSq {
			continue // no piece of this segment can come closer
		}
		for j := 0; j+1 < len(contour); j++ {
			a, b := knotedit.FromPoint(contour[j]), knotedit.FromPoint(contour[j+1])
			c := ClosestOnLine(a, b, pt)
			if d := c.DistanceSquared(pt); d < bestSq {
				best, bestSq = Hit{Segment: i, Point: c}, d
			}
		}
	}
	if best.Segment < 0 {
		return best, false
	}
	best.Distance = math.Sqrt(bestSq)
	return best, true
}

// FindInsertionPoint checks if pt is on the curve through knots, i.e. not
// farther than e.Threshold away from it. If it is, the closest point on the
// curve is returned. A new knot placed there is to be inserted at index
// hit.InsertAt().
func (e *Engine) FindInsertionPoint(knots []knotedit.Pair, pt knotedit.Pair) (Hit, bool) {
	hit, ok := e.Closest(knots, pt)
	if !ok {
		return hit, false
	}
	if hit.Distance > e.Threshold {
		tracer().Debugf("%s is %.4g away from curve, threshold is %.4g", pt, hit.Distance, e.Threshold)
		return hit, false
	}
	tracer().Debugf("%s is on segment %d at %s", pt, hit.Segment, hit.Point)
	return hit, true
}
