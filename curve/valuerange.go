package curve

import "github.com/npillmayer/curvature"

const (
	minSet uint8 = 0b10
	maxSet uint8 = 0b01
)

// MinValue returns the lower bound of the value range.
func (c *Curve) MinValue() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minValue
}

// MaxValue returns the upper bound of the value range.
func (c *Curve) MaxValue() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxValue
}

// Range returns MaxValue - MinValue.
func (c *Curve) Range() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxValue - c.minValue
}

// SetMinValue sets the lower bound of the value range. Once a bound has been
// set, min is kept at least MinYRange below max.
//
// The range is indicative only: points are not clamped to it.
func (c *Curve) SetMinValue(min float64) {
	c.mu.Lock()
	c.setMin(min)
	c.mu.Unlock()
	c.emit(SignalRangeChanged)
	c.emit(SignalChanged)
}

// SetMaxValue sets the upper bound of the value range. Once a bound has been
// set, max is kept at least MinYRange above min.
func (c *Curve) SetMaxValue(max float64) {
	c.mu.Lock()
	c.setMax(max)
	c.mu.Unlock()
	c.emit(SignalRangeChanged)
	c.emit(SignalChanged)
}

func (c *Curve) setMin(min float64) {
	if c.minmaxSet != 0 && min > c.maxValue-MinYRange {
		c.minValue = c.maxValue - MinYRange
		return
	}
	c.minmaxSet |= minSet
	c.minValue = min
}

func (c *Curve) setMax(max float64) {
	if c.minmaxSet != 0 && max < c.minValue+MinYRange {
		c.maxValue = c.minValue + MinYRange
		return
	}
	c.minmaxSet |= maxSet
	c.maxValue = max
}

// EnsureDefaultSetup turns a pristine curve, i.e. one without points and
// with the default range [0,1], into a flat curve at value 1 over the
// range [min,max]. Any other curve is left alone. Check and setup happen
// in a single step.
func (c *Curve) EnsureDefaultSetup(min, max float64) {
	seeded := false
	c.mutate(func() error {
		if len(c.points) != 0 || c.minValue != 0 || c.maxValue != 1 {
			return errUnchanged
		}
		c.insert(Point{Position: curvature.P(0, 1)})
		c.insert(Point{Position: curvature.P(1, 1)})
		c.setMin(min)
		c.setMax(max)
		seeded = true
		return nil
	})
	if seeded {
		tracer().Debugf("default setup over [%g,%g]", min, max)
		c.emit(SignalPointsChanged)
		c.emit(SignalRangeChanged)
	}
}
