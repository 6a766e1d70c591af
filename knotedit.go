/*
Package knotedit implements the geometry basics for an interactive curve
editor: points, distances and canvas bounds.

The computational core lives in sub-packages: package spline finds the
Bezier control points for a smooth curve through a sequence of knots,
package proximity answers pointer queries against that curve, and package
knots holds the mutable knot sequence and the editing operations on it.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package knotedit

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'knotedit'
func tracer() tracing.Trace {
	return tracing.Select("knotedit")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Clamp restricts x to the interval [min,max].
func Clamp(x, min, max float64) float64 {
	if x < min {
		return min
	} else if x > max {
		return max
	}
	return x
}

// IsFinite is a predicate: is n neither NaN nor ±Inf?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Pair Data Type ========================================================

// Pair is a 2D point in canvas coordinates.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// IsNaN is a predicate: has either part of p been set to NaN?
func (p Pair) IsNaN() bool {
	return math.IsNaN(p.X()) || math.IsNaN(p.Y())
}

// IsFinite is a predicate: are both parts of p finite numbers?
func (p Pair) IsFinite() bool {
	return IsFinite(p.X()) && IsFinite(p.Y())
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Distance returns the Euclidean distance between p and q.
func (p Pair) Distance(q Pair) float64 {
	return cmplx.Abs((q - p).C())
}

// DistanceSquared returns the squared Euclidean distance between p and q.
func (p Pair) DistanceSquared(q Pair) float64 {
	d := q - p
	return real(d)*real(d) + imag(d)*imag(d)
}

// Dot returns the dot product of p and q, interpreted as vectors.
func (p Pair) Dot(q Pair) float64 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// Lerp interpolates linearly between p (t=0) and q (t=1).
func (p Pair) Lerp(q Pair, t float64) Pair {
	return p + (q - p).Scaled(t)
}

// Point converts p to a polygon point.
func (p Pair) Point() polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

// FromPoint converts a polygon point to a pair.
func FromPoint(pt polyclip.Point) Pair {
	return P(pt.X, pt.Y)
}

// === Canvas ================================================================

// Canvas is the drawing area knots live on. Coordinates run from (0,0) to
// (Width,Height).
type Canvas struct {
	Width, Height float64
}

// Inset returns the canvas rectangle shrunk by margin on every side. For a
// canvas smaller than twice the margin the rectangle is inverted.
func (c Canvas) Inset(margin float64) polyclip.Rectangle {
	return polyclip.Rectangle{
		Min: polyclip.Point{X: margin, Y: margin},
		Max: polyclip.Point{X: c.Width - margin, Y: c.Height - margin},
	}
}

// ClampInto moves p into r, clamping each axis independently.
func ClampInto(p Pair, r polyclip.Rectangle) Pair {
	q := P(Clamp(p.X(), r.Min.X, r.Max.X), Clamp(p.Y(), r.Min.Y, r.Max.Y))
	if !q.Equal(p) {
		tracer().Debugf("clamped %s to %s", p, q)
	}
	return q
}
