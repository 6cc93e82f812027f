package curve

import (
	"fmt"

	"github.com/npillmayer/curvature"
)

// findSegment returns the index of the point starting the segment which
// contains offset. Offsets left of the first point map to 0, offsets at or
// beyond the last point map to the last index. Callers handle curves with
// less than two points themselves.
func findSegment(points []Point, offset float64) int {
	i := upperBound(points, offset) - 1
	if i < 0 {
		return 0
	}
	return i
}

// sampleAt evaluates points at offset.
func sampleAt(points []Point, offset float64) float64 {
	if len(points) < 2 {
		return sampleSegment(points, 0, offset)
	}
	return sampleSegment(points, findSegment(points, offset), offset)
}

// sampleSegment evaluates the segment starting at point idx at offset.
// The curve is flat left of the first and right of the last point.
func sampleSegment(points []Point, idx int, offset float64) float64 {
	switch len(points) {
	case 0:
		return 0
	case 1:
		return points[0].Position.Y()
	}
	if idx == len(points)-1 {
		return points[idx].Position.Y()
	}
	local := offset - points[idx].Position.X()
	if idx == 0 && local <= 0 {
		return points[0].Position.Y()
	}
	return sampleLocal(points, idx, local)
}

/*
sampleLocal evaluates the cubic Bézier between points a = points[idx] and
b = points[idx+1], local being the offset relative to a.

	      ac-----bc
	     /         \
	    /           \     here with a.RightTangent > 0
	   /             \    and b.LeftTangent < 0
	  /               \
	 a                 b

	 |-d1--|-d2--|-d3--|

	 d1 == d2 == d3 == d / 3

The control values ac and bc are placed a third of the segment width from
the end points, following the tangents.
*/
func sampleLocal(points []Point, idx int, local float64) float64 {
	a, b := points[idx], points[idx+1]
	d := b.Position.X() - a.Position.X()
	if curvature.IsZeroApprox(d) {
		return b.Position.Y()
	}
	t := local / d
	d /= 3.0
	yac := a.Position.Y() + d*a.RightTangent
	ybc := b.Position.Y() - d*b.LeftTangent
	return curvature.BezierInterpolate(a.Position.Y(), yac, ybc, b.Position.Y(), t)
}

// Sample evaluates the curve at offset. With no points the curve is 0
// everywhere.
func (c *Curve) Sample(offset float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sampleAt(c.points, offset)
}

// Index returns the index of the point starting the segment containing
// offset. It returns -1 for an empty curve.
func (c *Curve) Index(offset float64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.points) == 0 {
		return -1
	}
	return findSegment(c.points, offset)
}

// SampleLocal evaluates segment idx at an offset relative to the segment's
// left point, without flattening outside of the segment.
func (c *Curve) SampleLocal(idx int, local float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx < 0 || idx+1 >= len(c.points) {
		err := fmt.Errorf("%w: no segment %d with %d points", ErrIndexOutOfRange, idx, len(c.points))
		tracer().Errorf("%v", err)
		return 0, err
	}
	return sampleLocal(c.points, idx, local), nil
}
