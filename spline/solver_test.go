package spline

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/knotedit"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func referenceKnots() []knotedit.Pair {
	return []knotedit.Pair{
		knotedit.P(60, 60),
		knotedit.P(220, 300),
		knotedit.P(420, 300),
		knotedit.P(700, 240),
	}
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

// The 3×3 systems for the reference knots, eliminated by hand:
//
//	x:  2a + b = 500,  a + 4b + c = 1720,  2b + 7c = 4060
//	y:  2a + b = 660,  a + 4b + c = 1800,  2b + 7c = 2640
func TestSolveAxisReferenceKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c1x, c2x := SolveAxis([]float64{60, 220, 420, 700})
	expect1x := []float64{1004.0 / 9, 2492.0 / 9, 4508.0 / 9}
	expect2x := []float64{1468.0 / 9, 3052.0 / 9, 5404.0 / 9}
	require.Len(t, c1x, 3)
	require.Len(t, c2x, 3)
	for i := range expect1x {
		assert.InDelta(t, expect1x[i], c1x[i], tolerance, "c1.x[%d]", i)
		assert.InDelta(t, expect2x[i], c2x[i], tolerance, "c2.x[%d]", i)
	}
	c1y, c2y := SolveAxis([]float64{60, 300, 300, 240})
	expect1y := []float64{160, 340, 280}
	expect2y := []float64{260, 320, 260}
	for i := range expect1y {
		assert.InDelta(t, expect1y[i], c1y[i], tolerance, "c1.y[%d]", i)
		assert.InDelta(t, expect2y[i], c2y[i], tolerance, "c2.y[%d]", i)
	}
}

func TestSolveAxisSatisfiesSystem(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []float64{3, -7, 12.5, 40, 41, 0, 18}
	c1, c2 := SolveAxis(knots)
	n := len(knots) - 1
	assert.InDelta(t, knots[0]+2*knots[1], 2*c1[0]+c1[1], tolerance)
	for i := 1; i < n-1; i++ {
		assert.InDelta(t, 4*knots[i]+2*knots[i+1], c1[i-1]+4*c1[i]+c1[i+1], tolerance, "row %d", i)
	}
	assert.InDelta(t, 8*knots[n-1]+knots[n], 2*c1[n-2]+7*c1[n-1], tolerance)
	for i := 0; i < n-1; i++ { // C1 continuity at inner knots
		assert.InDelta(t, knots[i+1]-c2[i], c1[i+1]-knots[i+1], tolerance, "knot %d", i+1)
	}
}

func TestSolveAxisTwoKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c1, c2 := SolveAxis([]float64{0, 70})
	require.Len(t, c1, 1)
	require.Len(t, c2, 1)
	assert.InDelta(t, 10.0, c1[0], tolerance)
	assert.InDelta(t, 40.0, c2[0], tolerance)
	for _, v := range append(c1, c2...) {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

func TestSolveAxisThreeKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c1, c2 := SolveAxis([]float64{60, 220, 420})
	assert.InDeltaSlice(t, []float64{110, 280}, c1, tolerance)
	assert.InDeltaSlice(t, []float64{160, 350}, c2, tolerance)
}

func TestSolveAxisDeterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []float64{1, 5, 2, 8, 3}
	a1, a2 := SolveAxis(knots)
	b1, b2 := SolveAxis(knots)
	assert.Equal(t, a1, b1)
	assert.Equal(t, a2, b2)
	assert.Equal(t, []float64{1, 5, 2, 8, 3}, knots, "input must not be modified")
}

func TestFindControlsLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []knotedit.Pair{knotedit.P(0, 0)}
	for n := 2; n < 12; n++ {
		knots = append(knots, knotedit.P(float64(n*17%23), float64(n*n%31)))
		controls, err := FindControls(knots)
		require.NoError(t, err)
		assert.Equal(t, len(knots)-1, controls.N())
		c1x, c2x := controls.X()
		c1y, c2y := controls.Y()
		for _, axis := range [][]float64{c1x, c2x, c1y, c2y} {
			assert.Len(t, axis, len(knots)-1)
		}
		assert.Len(t, Segments(knots, controls), len(knots)-1)
	}
}

func TestFindControlsReferenceKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := referenceKnots()
	controls, err := FindControls(knots)
	require.NoError(t, err)
	assert.InDelta(t, 1004.0/9, controls.PostControl(0).X(), tolerance)
	assert.InDelta(t, 160.0, controls.PostControl(0).Y(), tolerance)
	assert.InDelta(t, 5404.0/9, controls.PreControl(3).X(), tolerance)
	assert.InDelta(t, 260.0, controls.PreControl(3).Y(), tolerance)
	assert.True(t, controls.PreControl(0).IsNaN())
	assert.True(t, controls.PostControl(3).IsNaN())
	segs := Segments(knots, controls)
	assert.Equal(t, knots[1], segs[0].P3)
	assert.Equal(t, knots[1], segs[1].P0)
}

func TestFindControlsRejectsTooFewKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := FindControls([]knotedit.Pair{knotedit.P(1, 1)})
	if !errors.Is(err, ErrTooFewKnots) {
		t.Fatalf("expected ErrTooFewKnots, got %v", err)
	}
	_, err = FindControls(nil)
	assert.ErrorIs(t, err, ErrTooFewKnots)
}

func TestFindControlsRejectsInvalidKnot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := FindControls([]knotedit.Pair{knotedit.P(0, 0), knotedit.P(math.NaN(), 0)})
	if !errors.Is(err, ErrInvalidKnot) {
		t.Fatalf("expected ErrInvalidKnot, got %v", err)
	}
}

func TestMustFindControlsPanicsOnInvalidCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mustPanic(t, func() { MustFindControls([]knotedit.Pair{knotedit.P(0, 0)}) })
}

func TestAsStringSnapshots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := referenceKnots()[:3]
	if got, want := AsString(knots, nil), "(60,60) .. (220,300) .. (420,300)"; got != want {
		t.Fatalf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
	controls := MustFindControls(knots)
	want := "(60,60) .. controls (110.0000,160.0000) and (160.0000,260.0000)\n" +
		"  .. (220,300) .. controls (280.0000,340.0000) and (350.0000,320.0000)\n" +
		"  .. (420,300)"
	assert.Equal(t, want, AsString(knots, controls))
}

func TestSegmentEval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := Segment{knotedit.P(0, 0), knotedit.P(0, 3), knotedit.P(3, 3), knotedit.P(3, 0)}
	assert.Equal(t, seg.P0, seg.Eval(0))
	assert.Equal(t, seg.P3, seg.Eval(1))
	mid := seg.Eval(0.5)
	assert.InDelta(t, 1.5, mid.X(), tolerance)
	assert.InDelta(t, 2.25, mid.Y(), tolerance)
}

// Find the controls for the reference curve of the editor, then print the
// curve in MetaPost-like notation.
func ExampleFindControls() {
	tracer().SetTraceLevel(tracing.LevelError)
	knots := []knotedit.Pair{knotedit.P(60, 60), knotedit.P(220, 300), knotedit.P(420, 300)}
	controls := MustFindControls(knots)
	fmt.Printf("smooth curve =\n%s\n", AsString(knots, controls))
	// Output:
	// smooth curve =
	// (60,60) .. controls (110.0000,160.0000) and (160.0000,260.0000)
	//   .. (220,300) .. controls (280.0000,340.0000) and (350.0000,320.0000)
	//   .. (420,300)
}
