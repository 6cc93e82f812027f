package curve

import "github.com/npillmayer/curvature"

// updateAutoTangents recomputes the linear tangents touching point i: the
// point's own sides and the facing sides of its neighbors.
// Must be called with the point lock held.
func (c *Curve) updateAutoTangents(i int) {
	p := &c.points[i]
	if i > 0 {
		prev := &c.points[i-1]
		slope := curvature.Slope(prev.Position, p.Position)
		if p.LeftMode == TangentLinear {
			p.LeftTangent = slope
		}
		if prev.RightMode == TangentLinear {
			prev.RightTangent = slope
		}
	}
	if i+1 < len(c.points) {
		next := &c.points[i+1]
		slope := curvature.Slope(p.Position, next.Position)
		if p.RightMode == TangentLinear {
			p.RightTangent = slope
		}
		if next.LeftMode == TangentLinear {
			next.LeftTangent = slope
		}
	}
}

// LeftTangent returns the left tangent of point i.
func (c *Curve) LeftTangent(i int) (float64, error) {
	p, err := c.Point(i)
	return p.LeftTangent, err
}

// RightTangent returns the right tangent of point i.
func (c *Curve) RightTangent(i int) (float64, error) {
	p, err := c.Point(i)
	return p.RightTangent, err
}

// LeftMode returns the left tangent mode of point i.
func (c *Curve) LeftMode(i int) (TangentMode, error) {
	p, err := c.Point(i)
	return p.LeftMode, err
}

// RightMode returns the right tangent mode of point i.
func (c *Curve) RightMode(i int) (TangentMode, error) {
	p, err := c.Point(i)
	return p.RightMode, err
}

// SetLeftTangent sets the left tangent of point i. The left side becomes free.
func (c *Curve) SetLeftTangent(i int, tangent float64) error {
	return c.mutate(func() error {
		if err := c.checkIndex(i); err != nil {
			return err
		}
		if err := checkFinite("tangent", tangent); err != nil {
			return err
		}
		c.points[i].LeftTangent = tangent
		c.points[i].LeftMode = TangentFree
		return nil
	})
}

// SetRightTangent sets the right tangent of point i. The right side becomes free.
func (c *Curve) SetRightTangent(i int, tangent float64) error {
	return c.mutate(func() error {
		if err := c.checkIndex(i); err != nil {
			return err
		}
		if err := checkFinite("tangent", tangent); err != nil {
			return err
		}
		c.points[i].RightTangent = tangent
		c.points[i].RightMode = TangentFree
		return nil
	})
}

// SetLeftMode sets the left tangent mode of point i. Switching to linear
// aligns the left tangent with the left neighbor at once.
func (c *Curve) SetLeftMode(i int, m TangentMode) error {
	return c.mutate(func() error {
		if err := c.checkIndex(i); err != nil {
			return err
		}
		if err := checkMode(m); err != nil {
			return err
		}
		p := &c.points[i]
		p.LeftMode = m
		if m == TangentLinear && i > 0 {
			p.LeftTangent = curvature.Slope(c.points[i-1].Position, p.Position)
		}
		return nil
	})
}

// SetRightMode sets the right tangent mode of point i. Switching to linear
// aligns the right tangent with the right neighbor at once.
func (c *Curve) SetRightMode(i int, m TangentMode) error {
	return c.mutate(func() error {
		if err := c.checkIndex(i); err != nil {
			return err
		}
		if err := checkMode(m); err != nil {
			return err
		}
		p := &c.points[i]
		p.RightMode = m
		if m == TangentLinear && i+1 < len(c.points) {
			p.RightTangent = curvature.Slope(p.Position, c.points[i+1].Position)
		}
		return nil
	})
}
