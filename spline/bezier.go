package spline

import "github.com/npillmayer/knotedit"

// Eval evaluates the segment at parameter t, 0 ≤ t ≤ 1, in Bernstein form:
//
//	B(t) = (1-t)³⋅P0 + 3t(1-t)²⋅P1 + 3t²(1-t)⋅P2 + t³⋅P3
func (seg Segment) Eval(t float64) knotedit.Pair {
	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * t * mt * mt
	b2 := 3 * t * t * mt
	b3 := t * t * t
	return knotedit.P(
		b0*seg.P0.X()+b1*seg.P1.X()+b2*seg.P2.X()+b3*seg.P3.X(),
		b0*seg.P0.Y()+b1*seg.P1.Y()+b2*seg.P2.Y()+b3*seg.P3.Y(),
	)
}
