package curve

import (
	"slices"

	"github.com/npillmayer/curvature"
)

// PointCount returns the number of control points.
func (c *Curve) PointCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.points)
}

// SetPointCount truncates the curve to n points or appends points at (0,0)
// until it has n points.
func (c *Curve) SetPointCount(n int) error {
	changed := false
	err := c.mutate(func() error {
		if n < 0 {
			return ErrNegativeCount
		}
		if n == len(c.points) {
			return errUnchanged
		}
		if n < len(c.points) {
			c.points = c.points[:n:n]
		} else {
			for i := n - len(c.points); i > 0; i-- {
				c.insert(Point{})
			}
		}
		changed = true
		return nil
	})
	if changed {
		c.emit(SignalPointsChanged)
	}
	return err
}

// AddPoint inserts a point with flat, free tangents and returns its index.
// The offset is clamped to [0,1]. A position with NaN or infinite parts is
// rejected and -1 is returned.
func (c *Curve) AddPoint(pos curvature.Pair) int {
	i, _ := c.InsertPoint(Point{Position: pos})
	return i
}

// InsertPoint inserts a fully specified control point, keeping the points
// ordered by offset, and returns its index. A point with the same offset as
// existing points is inserted before them. Tangents of linear sides are
// recomputed, for the new point as well as for its neighbors.
func (c *Curve) InsertPoint(p Point) (int, error) {
	i, err := c.AddPointQuiet(p)
	if err == nil {
		c.emit(SignalPointsChanged)
	}
	return i, err
}

// AddPointQuiet is InsertPoint without the points-changed notification.
// Editors use it while a drag gesture is still going on.
func (c *Curve) AddPointQuiet(p Point) (int, error) {
	i := -1
	err := c.mutate(func() error {
		if err := checkPoint(p); err != nil {
			return err
		}
		i = c.insert(p)
		return nil
	})
	return i, err
}

// insert must be called with the point lock held.
func (c *Curve) insert(p Point) int {
	p.Position = p.Position.WithX(clampOffset(p.Position.X()))
	i := lowerBound(c.points, p.Position.X())
	c.points = slices.Insert(c.points, i, p)
	c.updateAutoTangents(i)
	return i
}

// RemovePoint deletes the point at index i.
func (c *Curve) RemovePoint(i int) error {
	err := c.mutate(func() error {
		if err := c.checkIndex(i); err != nil {
			return err
		}
		c.points = slices.Delete(c.points, i, i+1)
		return nil
	})
	if err == nil {
		c.emit(SignalPointsChanged)
	}
	return err
}

// ClearPoints removes all points. Clearing an empty curve does nothing.
func (c *Curve) ClearPoints() {
	changed := false
	c.mutate(func() error {
		if len(c.points) == 0 {
			return errUnchanged
		}
		c.points = nil
		changed = true
		return nil
	})
	if changed {
		c.emit(SignalPointsChanged)
	}
}

// Point returns a copy of the control point at index i.
func (c *Curve) Point(i int) (Point, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkIndex(i); err != nil {
		return Point{}, err
	}
	return c.points[i], nil
}

// Points returns a copy of all control points.
func (c *Curve) Points() []Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.points)
}

// Position returns the position of the point at index i.
func (c *Curve) Position(i int) (curvature.Pair, error) {
	p, err := c.Point(i)
	return p.Position, err
}

// SetPointValue sets the y-part of the point at index i.
func (c *Curve) SetPointValue(i int, y float64) error {
	return c.mutate(func() error {
		if err := c.checkIndex(i); err != nil {
			return err
		}
		if err := checkFinite("value", y); err != nil {
			return err
		}
		c.points[i].Position = c.points[i].Position.WithY(y)
		c.updateAutoTangents(i)
		return nil
	})
}

// SetPointOffset moves the point at index i to offset x, keeping its value,
// tangents and modes. It returns the new index of the point.
func (c *Curve) SetPointOffset(i int, x float64) (int, error) {
	moved := -1
	err := c.mutate(func() error {
		if err := c.checkIndex(i); err != nil {
			return err
		}
		if err := checkFinite("offset", x); err != nil {
			return err
		}
		p := c.points[i]
		c.points = slices.Delete(c.points, i, i+1)
		// the point formerly left of i now faces a new right neighbor
		left := i - 1
		moved = c.insert(Point{Position: curvature.P(x, p.Position.Y())})
		q := &c.points[moved]
		q.LeftTangent, q.RightTangent = p.LeftTangent, p.RightTangent
		q.LeftMode, q.RightMode = p.LeftMode, p.RightMode
		if left >= 0 {
			if moved <= left {
				left++
			}
			c.updateAutoTangents(left)
		}
		c.updateAutoTangents(moved)
		return nil
	})
	return moved, err
}

// CleanDuplicates removes every point whose offset is within
// curvature.CmpEpsilon of its left neighbor. It returns the number of
// removed points.
func (c *Curve) CleanDuplicates() int {
	removed := 0
	c.mutate(func() error {
		for i := 1; i < len(c.points); i++ {
			diff := c.points[i].Position.X() - c.points[i-1].Position.X()
			if diff <= curvature.CmpEpsilon {
				c.points = slices.Delete(c.points, i, i+1)
				i--
				removed++
			}
		}
		if removed == 0 {
			return errUnchanged
		}
		return nil
	})
	if removed > 0 {
		tracer().Debugf("removed %d duplicate points", removed)
		c.emit(SignalPointsChanged)
	}
	return removed
}
