package spline

import (
	"errors"

	"github.com/npillmayer/knotedit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

var (
	// ErrTooFewKnots indicates knot count is insufficient for solving.
	ErrTooFewKnots = errors.New("curve has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("curve has invalid knot coordinate")
)

// Controls collects calculated spline control points, one pair per segment.
// Segment i runs from knot i to knot i+1.
type Controls struct {
	postc []knotedit.Pair // first control point of segment i, i.e. after knot i
	prec  []knotedit.Pair // second control point of segment i, i.e. before knot i+1
}

// Segment is a single cubic Bezier curve piece from P0 to P3, shaped by
// control points P1 and P2.
type Segment struct {
	P0, P1, P2, P3 knotedit.Pair
}
