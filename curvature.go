/*
Package curvature implements editable y(x) response curves: control points
with tangent handles, cubic Bézier evaluation and a baked lookup table which
is recomputed in the background while the curve is being edited.

The root package holds the numeric vocabulary shared by the sub-packages:
positions (pairs), epsilon predicates and interpolation helpers. Curves
themselves live in package curve, the background baking in package bake.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curvature

import (
	"fmt"
	"math"
)

// === Numeric Data Type =====================================================

// CmpEpsilon is the tolerance used when comparing curve abscissae, e.g. for
// zero-width segments and duplicate control points.
var CmpEpsilon float64 = 0.00001

// IsZeroApprox is a predicate: is n = 0 within CmpEpsilon?
func IsZeroApprox(n float64) bool {
	return math.Abs(n) < CmpEpsilon
}

// IsFinite is a predicate: is n neither NaN nor infinite?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// Clamp restricts n to [lo,hi].
func Clamp(n, lo, hi float64) float64 {
	if n < lo {
		return lo
	} else if n > hi {
		return hi
	}
	return n
}

// Lerp interpolates linearly between a and b; t=0 yields a, t=1 yields b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// BezierInterpolate evaluates a one-dimensional cubic Bézier with end values
// start and end and control values c1 and c2 at parameter t in [0,1].
func BezierInterpolate(start, c1, c2, end, t float64) float64 {
	omt := 1 - t
	omt2 := omt * omt
	omt3 := omt2 * omt
	t2 := t * t
	t3 := t2 * t
	return start*omt3 + c1*omt2*t*3 + c2*omt*t2*3 + end*t3
}

// === Pair Data Type ========================================================

// Pair is a 2D-point, used for control point positions (x = offset, y = value).
type Pair complex128

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// WithX returns a copy of p with the x-part replaced.
func (p Pair) WithX(x float64) Pair {
	return P(x, p.Y())
}

// WithY returns a copy of p with the y-part replaced.
func (p Pair) WithY(y float64) Pair {
	return P(p.X(), y)
}

// IsFinite is a predicate: are both parts of p finite?
func (p Pair) IsFinite() bool {
	return IsFinite(p.X()) && IsFinite(p.Y())
}

// Slope returns dy/dx of the vector pointing from a to b. If a and b are
// (nearly) vertically aligned the slope is reported as 0.
func Slope(a, b Pair) float64 {
	d := b - a
	if IsZeroApprox(d.X()) {
		return 0
	}
	return d.Y() / d.X()
}
