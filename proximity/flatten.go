package proximity

import (
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/knotedit"
	"github.com/npillmayer/knotedit/spline"
)

// Flatten approximates the curve through knots by straight line pieces. The
// result holds one open contour per segment, each consisting of the sample
// points B(0), B(Δt), … of the segment's Bezier curve, Δt = e.Step.
// Consecutive contours share their end and start point.
//
// If the knots do not describe a solvable curve, Flatten returns nil.
func (e *Engine) Flatten(knots []knotedit.Pair) polyclip.Polygon {
	flat, _ := e.flatten(knots)
	return flat
}

func (e *Engine) flatten(knots []knotedit.Pair) (polyclip.Polygon, bool) {
	controls, err := spline.FindControls(knots)
	if err != nil {
		tracer().Errorf("cannot flatten curve: %v", err)
		return nil, false
	}
	segs := spline.Segments(knots, controls)
	flat := make(polyclip.Polygon, len(segs))
	dt := e.step()
	for i, seg := range segs {
		flat[i] = sample(seg, dt)
	}
	return flat, true
}

// step returns the sampling step, falling back to DefaultStep for values
// outside (0,1].
func (e *Engine) step() float64 {
	if !(e.Step > 0 && e.Step <= 1) {
		return DefaultStep
	}
	return e.Step
}

// sample evaluates seg at t = 0, Δt, 2Δt, … as long as t ≤ 1. t walks from 0
// to 1-Δt, every t starting a line piece.
func sample(seg spline.Segment, dt float64) polyclip.Contour {
	n := int(math.Floor(1/dt + 1e-9))
	contour := make(polyclip.Contour, 0, n+1)
	for k := 0; k <= n; k++ {
		contour.Add(seg.Eval(float64(k) * dt).Point())
	}
	return contour
}

// distToRect returns the distance from p to the closest point of r, or 0
// if p is inside r.
func distToRect(p knotedit.Pair, r polyclip.Rectangle) float64 {
	dx := math.Max(0, math.Max(r.Min.X-p.X(), p.X()-r.Max.X))
	dy := math.Max(0, math.Max(r.Min.Y-p.Y(), p.Y()-r.Max.Y))
	return math.Hypot(dx, dy)
}
