package spline

import (
	"math/cmplx"

	"github.com/npillmayer/knotedit"
)

// N returns the number of segments the controls have been calculated for.
func (ctrls *Controls) N() int {
	if ctrls == nil {
		return 0
	}
	return len(ctrls.postc)
}

// PostControl returns the control point leaving knot i, i.e. the first
// control point of segment i. For an index without a segment the result
// is NaN.
func (ctrls *Controls) PostControl(i int) knotedit.Pair {
	if i < 0 || i >= ctrls.N() {
		return knotedit.Pair(cmplx.NaN())
	}
	return ctrls.postc[i]
}

// PreControl returns the control point entering knot i, i.e. the second
// control point of segment i-1. For an index without a segment the result
// is NaN.
func (ctrls *Controls) PreControl(i int) knotedit.Pair {
	if i < 1 || i > ctrls.N() {
		return knotedit.Pair(cmplx.NaN())
	}
	return ctrls.prec[i-1]
}

// X returns the x-ordinates of the first and second control points, in
// segment order. Renderers working per axis may use this instead of
// PostControl and PreControl.
func (ctrls *Controls) X() (controls1, controls2 []float64) {
	return ctrls.axis(knotedit.Pair.X)
}

// Y returns the y-ordinates of the first and second control points, in
// segment order.
func (ctrls *Controls) Y() (controls1, controls2 []float64) {
	return ctrls.axis(knotedit.Pair.Y)
}

func (ctrls *Controls) axis(ord func(knotedit.Pair) float64) (controls1, controls2 []float64) {
	n := ctrls.N()
	controls1, controls2 = make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		controls1[i], controls2[i] = ord(ctrls.postc[i]), ord(ctrls.prec[i])
	}
	return
}

// Segments combines knots and their controls into Bezier segments, ready
// for rendering. knots must be the sequence the controls have been
// calculated for.
func Segments(knots []knotedit.Pair, ctrls *Controls) []Segment {
	n := ctrls.N()
	if len(knots) < n+1 {
		n = len(knots) - 1
	}
	if n <= 0 {
		return nil
	}
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = Segment{
			P0: knots[i],
			P1: ctrls.postc[i],
			P2: ctrls.prec[i],
			P3: knots[i+1],
		}
	}
	return segs
}
