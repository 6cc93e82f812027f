package curve

import (
	"context"
	"slices"

	"github.com/npillmayer/curvature/bake"
	"gonum.org/v1/gonum/floats"
)

// bakeValues samples points uniformly at resolution offsets i/(resolution-1).
// The end samples are the values of the first and last point, not
// evaluations of the Bézier segments.
func bakeValues(points []Point, resolution int) []float64 {
	values := make([]float64, resolution)
	if resolution > 2 {
		xs := make([]float64, resolution)
		floats.Span(xs, 0, 1)
		for i := 1; i < resolution-1; i++ {
			values[i] = sampleAt(points, xs[i])
		}
	}
	if len(points) > 0 {
		values[0] = points[0].Position.Y()
		values[resolution-1] = points[len(points)-1].Position.Y()
	}
	return values
}

// bakeOnce snapshots the points and publishes a freshly computed table.
func (c *Curve) bakeOnce() {
	c.mu.Lock()
	points := slices.Clone(c.points)
	resolution, revision := c.resolution, c.revision
	c.mu.Unlock()
	tracer().Debugf("baking %d points at resolution %d, revision %d", len(points), resolution, revision)
	c.cache.Publish(bake.NewTable(bakeValues(points, resolution), revision))
}

// Bake computes and publishes the baked table synchronously.
func (c *Curve) Bake() {
	c.bakeOnce()
	c.emit(SignalBaked)
}

// Wait blocks until all edits queued so far have been baked in the
// background, or ctx is done.
func (c *Curve) Wait(ctx context.Context) error {
	return c.scheduler.Wait(ctx)
}

// BakeResolution returns the number of samples of the baked table.
func (c *Curve) BakeResolution() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolution
}

// SetBakeResolution sets the number of samples of the baked table. The
// current table becomes stale; the next bake uses the new resolution.
func (c *Curve) SetBakeResolution(r int) error {
	return c.mutate(func() error {
		if err := checkResolution(r); err != nil {
			return err
		}
		c.resolution = r
		return nil
	})
}

// Stale is a predicate: does the baked table lag behind the latest edit?
func (c *Curve) Stale() bool {
	t := c.cache.Load()
	c.mu.Lock()
	defer c.mu.Unlock()
	return t == nil || t.Revision() != c.revision
}

// SampleBaked reads the value at offset from the latest baked table,
// interpolating linearly between samples. Before anything has been baked it
// returns the value of the first point, or 0 for an empty curve.
func (c *Curve) SampleBaked(offset float64) float64 {
	if v, ok := c.cache.Sample(offset); ok {
		return v
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.points) == 0 {
		return 0
	}
	return c.points[0].Position.Y()
}

// BakedValues returns a copy of the latest baked table.
func (c *Curve) BakedValues() []float64 {
	return c.cache.Load().Values()
}

// BakedBounds returns the smallest and largest baked value.
func (c *Curve) BakedBounds() (lo, hi float64, ok bool) {
	return c.cache.Load().Bounds()
}
