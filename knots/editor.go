package knots

import (
	"github.com/npillmayer/knotedit"
	"github.com/npillmayer/knotedit/proximity"
	"github.com/npillmayer/knotedit/spline"
)

// Editor drives a Store from pointer interaction. It remembers the knot
// currently under the pointer (the hover knot), which is the target of
// dragging and removal.
//
// Inserting into or removing from the store directly, bypassing the
// editor, shifts knot indices; the editor then forgets its hover knot.
type Editor struct {
	store  *Store
	engine *proximity.Engine
	hover  int // index of hover knot, -1 for none
	seen   int // knot count when hover was set
}

// NewEditor creates an editor for a fresh store with the configured
// initial knots. A nil cfg selects NewDefaultConfig.
func NewEditor(cfg *Config) (*Editor, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	engine := proximity.NewEngine(cfg.HitRadius, cfg.StrokeHalfWidth)
	engine.Step = cfg.SampleStep
	ed := &Editor{
		store:  NewStore(cfg.HitRadius, cfg.InitialKnots()...),
		engine: engine,
		hover:  -1,
	}
	ed.seen = ed.store.Count()
	return ed, nil
}

// Store returns the knot store the editor works on.
func (ed *Editor) Store() *Store {
	return ed.store
}

// Count returns the number of knots.
func (ed *Editor) Count() int {
	return ed.store.Count()
}

// Knots returns a copy of the current knots.
func (ed *Editor) Knots() []knotedit.Pair {
	return ed.store.Knots()
}

// Controls returns freshly solved control points for the current knots.
func (ed *Editor) Controls() (*spline.Controls, error) {
	return ed.store.Controls()
}

// Segments returns the current curve as Bezier segments, ready for rendering.
func (ed *Editor) Segments() ([]spline.Segment, error) {
	controls, err := ed.Controls()
	if err != nil {
		return nil, err
	}
	return spline.Segments(ed.store.knots, controls), nil
}

// Hover returns the index of the hover knot, or -1.
func (ed *Editor) Hover() int {
	if ed.hover >= 0 && ed.seen != ed.store.Count() {
		tracer().Debugf("knot count changed behind the editor, dropping hover knot %d", ed.hover)
		ed.hover = -1
	}
	return ed.hover
}

// HasHover is a predicate: is there a hover knot?
func (ed *Editor) HasHover() bool {
	return ed.Hover() >= 0
}

func (ed *Editor) setHover(i int) int {
	ed.hover, ed.seen = i, ed.store.Count()
	return i
}

// UpdateHover makes the knot under pt the hover knot, or clears the hover
// knot if there is none. It returns the new hover index.
func (ed *Editor) UpdateHover(pt knotedit.Pair) int {
	return ed.setHover(ed.engine.HitTest(ed.store.knots, pt))
}

// MoveHover drags the hover knot to pt, clamped to the canvas. Without a
// hover knot MoveHover does nothing and returns false.
func (ed *Editor) MoveHover(pt knotedit.Pair, canvas knotedit.Canvas) bool {
	if !ed.HasHover() {
		return false
	}
	return ed.store.Move(ed.hover, pt, canvas)
}

// TryRemoveHover removes the hover knot, if there is one and the curve
// keeps at least MinKnots knots. The hover knot is cleared on success.
func (ed *Editor) TryRemoveHover() bool {
	if !ed.HasHover() || !ed.store.Remove(ed.hover) {
		return false
	}
	ed.setHover(-1)
	return true
}

// TryAddKnot inserts a new knot on the curve if pt is within the stroke
// half-width of it. The knot is placed at the closest point of the curve
// and becomes the hover knot. TryAddKnot returns its index, or -1 if pt is
// too far away from the curve.
func (ed *Editor) TryAddKnot(pt knotedit.Pair) int {
	hit, ok := ed.engine.FindInsertionPoint(ed.store.knots, pt)
	if !ok || !ed.store.Insert(hit.InsertAt(), hit.Point) {
		return -1
	}
	return ed.setHover(hit.InsertAt())
}

// String returns the current curve in MetaPost-like notation, including
// control points if the curve can be solved.
func (ed *Editor) String() string {
	controls, err := ed.Controls()
	if err != nil {
		return spline.AsString(ed.store.knots, nil)
	}
	return spline.AsString(ed.store.knots, controls)
}
