package curve

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/npillmayer/curvature"
)

// errUnchanged lets a mutation report that it left the curve untouched.
var errUnchanged = errors.New("unchanged")

// mutate runs f under the point lock. If f succeeds, the revision is bumped
// and a bake is queued.
func (c *Curve) mutate(f func() error) error {
	c.mu.Lock()
	err := f()
	if err == nil {
		c.revision++
	}
	c.mu.Unlock()
	if errors.Is(err, errUnchanged) {
		return nil
	} else if err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	c.queueUpdate()
	return nil
}

func (c *Curve) queueUpdate() {
	if err := c.scheduler.Queue(); err != nil {
		tracer().Debugf("no background bake: %v", err)
	}
	c.emit(SignalChanged)
}

// checkIndex must be called with the point lock held.
func (c *Curve) checkIndex(i int) error {
	if i < 0 || i >= len(c.points) {
		return fmt.Errorf("%w: index %d, point count %d", ErrIndexOutOfRange, i, len(c.points))
	}
	return nil
}

// checkFinite rejects NaN and infinite values, which would break the
// ordering of points and poison sampling.
func checkFinite(what string, vs ...float64) error {
	for _, v := range vs {
		if !curvature.IsFinite(v) {
			return fmt.Errorf("%w: %s %g", ErrNotFinite, what, v)
		}
	}
	return nil
}

// checkPoint validates a point before it enters the store.
func checkPoint(p Point) error {
	if err := checkFinite("position", p.Position.X(), p.Position.Y()); err != nil {
		return err
	}
	if err := checkFinite("tangent", p.LeftTangent, p.RightTangent); err != nil {
		return err
	}
	if err := checkMode(p.LeftMode); err != nil {
		return err
	}
	return checkMode(p.RightMode)
}

func checkMode(m TangentMode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidTangentMode, int(m))
	}
	return nil
}

func checkResolution(r int) error {
	if r < 1 || r > MaxBakeResolution {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrBakeResolution, r, MaxBakeResolution)
	}
	return nil
}

// lowerBound returns the index of the first point with an offset not less
// than x, or len(points) if there is none.
func lowerBound(points []Point, x float64) int {
	return sort.Search(len(points), func(i int) bool {
		return points[i].Position.X() >= x
	})
}

// upperBound returns the index of the first point with an offset greater
// than x, or len(points) if there is none.
func upperBound(points []Point, x float64) int {
	return sort.Search(len(points), func(i int) bool {
		return points[i].Position.X() > x
	})
}

func clampOffset(x float64) float64 {
	return curvature.Clamp(x, MinX, MaxX)
}

func ptstring(p curvature.Pair) string {
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	return math.Round(x*10000.0) / 10000.0
}
