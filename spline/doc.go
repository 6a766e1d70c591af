// Package spline finds Bezier control points for a smooth curve through a
// sequence of knots.
/*

The curve through knots z.0 … z.n is built from n cubic Bezier segments,
one between each pair of neighbouring knots. Segment i starts at z.i, ends
at z.[i+1], and is shaped by a first control point c1.i and a second
control point c2.i. Requiring the curve's first and second derivatives to
be continuous at every inner knot yields, per coordinate axis, a
tridiagonal system of linear equations for the first control points:

	2⋅c1.0   +   c1.1              =   z.0   + 2⋅z.1
	  c1.i-1 + 4⋅c1.i + c1.i+1     = 4⋅z.i   + 2⋅z.i+1      (0 < i < n-1)
	2⋅c1.n-2 + 7⋅c1.n-1            = 8⋅z.n-1 +   z.n

The first and last rows are the boundary conditions at the open ends of
the curve. The system is solved with the Thomas algorithm in O(n); the
second control points follow without a second solve:

	c2.i   = 2⋅z.i+1 - c1.i+1                                (i < n-1)
	c2.n-1 = (z.n + c1.n-1) / 2

For a curve of just two knots the first and last row describe the same
segment; the last row wins and the system degenerates to one scalar
equation, c1.0 = (8⋅z.0 + z.1) / 7.

The two axes are independent, therefore SolveAxis works on plain ordinate
slices. FindControls applies it to both axes of a knot sequence and
collects the result in a Controls container.

Usage

	knots := []knotedit.Pair{knotedit.P(60, 60), knotedit.P(220, 300), knotedit.P(420, 300)}
	controls, err := spline.FindControls(knots)
	…
	fmt.Println(spline.AsString(knots, controls))

Nothing is cached. Controls are meant to be recomputed from the current
knots on every use, e.g. once per frame.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/knotedit"
)

// AsString returns
// a curve -- optionally including spline control points -- as a (debugging)
// string. The string contains newlines if control point information is present.
// Otherwise it will include the knot coordinates in one line.
//
// Example, three knots on a hump:
//
//	(60,60) .. controls (110.0000,160.0000) and (160.0000,260.0000)
//	  .. (220,300) .. controls (280.0000,340.0000) and (350.0000,320.0000)
//	  .. (420,300)
//
// The format is close to MetaPost's.
func AsString(knots []knotedit.Pair, contr *Controls) string {
	var sb strings.Builder
	for i, pt := range knots {
		if i > 0 {
			if contr != nil {
				fmt.Fprintf(&sb, " and %s\n  .. ", ptstring(contr.PreControl(i), true))
			} else {
				sb.WriteString(" .. ")
			}
		}
		sb.WriteString(ptstring(pt, false))
		if contr != nil && i < len(knots)-1 {
			fmt.Fprintf(&sb, " .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	return sb.String()
}
