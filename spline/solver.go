package spline

import (
	"fmt"

	"github.com/npillmayer/knotedit"
)

// SolveAxis finds one coordinate of the control points for every segment of a
// curve. Given the x (or y) values of all n+1 knots, it returns the x (or y)
// values of the first and second control points of the n segments.
//
// SolveAxis is a pure function, working on freshly allocated buffers. It does
// not check its input: callers must provide at least two knots. See
// FindControls for a validating variant.
func SolveAxis(knots []float64) (controls1, controls2 []float64) {
	n := len(knots) - 1 // number of segments
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	r := make([]float64, n)
	// Left-most segment
	a[0], b[0], c[0] = 0, 2, 1
	r[0] = knots[0] + 2*knots[1]
	// Internal segments
	for i := 1; i < n-1; i++ {
		a[i], b[i], c[i] = 1, 4, 1
		r[i] = 4*knots[i] + 2*knots[i+1]
	}
	// Right-most segment; for n = 1 this replaces the left-most row
	a[n-1], b[n-1], c[n-1] = 2, 7, 0
	r[n-1] = 8*knots[n-1] + knots[n]
	controls1 = thomas(a, b, c, r)
	controls2 = make([]float64, n)
	for i := 0; i < n-1; i++ {
		controls2[i] = 2*knots[i+1] - controls1[i+1]
	}
	controls2[n-1] = (knots[n] + controls1[n-1]) / 2
	return controls1, controls2
}

// thomas solves a tridiagonal system with sub-diagonal a, diagonal b,
// super-diagonal c and right-hand side r. b and r are overwritten.
func thomas(a, b, c, r []float64) []float64 {
	n := len(b)
	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m * c[i-1]
		r[i] -= m * r[i-1]
	}
	x := make([]float64, n)
	x[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = (r[i] - c[i]*x[i+1]) / b[i]
	}
	return x
}

// Validate checks if a knot sequence is solvable.
func Validate(knots []knotedit.Pair) error {
	if len(knots) < 2 {
		return fmt.Errorf("%w: need at least 2 knots, got %d", ErrTooFewKnots, len(knots))
	}
	for i, z := range knots {
		if !z.IsFinite() {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	return nil
}

// FindControls finds the spline control points for a sequence of knots.
// The x- and y-axis are solved independently. The returned container holds
// exactly len(knots)-1 control point pairs.
//
// FindControls will trace the resulting curve using log-level INFO.
func FindControls(knots []knotedit.Pair) (*Controls, error) {
	if err := Validate(knots); err != nil {
		return nil, err
	}
	xs := make([]float64, len(knots))
	ys := make([]float64, len(knots))
	for i, z := range knots {
		xs[i], ys[i] = z.F()
	}
	c1x, c2x := SolveAxis(xs)
	c1y, c2y := SolveAxis(ys)
	controls := &Controls{
		postc: make([]knotedit.Pair, len(c1x)),
		prec:  make([]knotedit.Pair, len(c1x)),
	}
	for i := range c1x {
		controls.postc[i] = knotedit.P(c1x[i], c1y[i])
		controls.prec[i] = knotedit.P(c2x[i], c2y[i])
	}
	tracer().Debugf("solved %d segments", controls.N())
	tracer().Infof("%s", AsString(knots, controls))
	return controls, nil
}

// MustFindControls is a helper which panics on validation errors.
func MustFindControls(knots []knotedit.Pair) *Controls {
	c, err := FindControls(knots)
	if err != nil {
		panic(err)
	}
	return c
}
