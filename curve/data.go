package curve

import (
	"fmt"
	"slices"

	"github.com/npillmayer/curvature"
)

// TupleSize is the number of entries per point in the flat data format.
const TupleSize = 5

// Data exports the points as a flat sequence of tuples
//
//	position, left tangent, right tangent, left mode, right mode
//
// with types curvature.Pair, float64, float64, int, int.
func (c *Curve) Data() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	data := make([]any, 0, len(c.points)*TupleSize)
	for _, p := range c.points {
		data = append(data, p.Position, p.LeftTangent, p.RightTangent,
			int(p.LeftMode), int(p.RightMode))
	}
	return data
}

// SetData replaces all points by the tuples in data, in the format written
// by Data. Tangents may be given as any numeric type, modes as int or
// TangentMode. If any tuple is malformed, the curve is left unchanged and an
// error wrapping ErrMalformedData is returned.
//
// Positions are taken as they are; points are brought into offset order.
func (c *Curve) SetData(data []any) error {
	points, err := decodeData(data)
	if err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	sizeChanged := false
	c.mutate(func() error {
		sizeChanged = len(points) != len(c.points)
		c.points = points
		return nil
	})
	if sizeChanged {
		c.emit(SignalPointsChanged)
	}
	return nil
}

func decodeData(data []any) ([]Point, error) {
	if len(data)%TupleSize != 0 {
		return nil, fmt.Errorf("%w: %d entries is not a multiple of %d", ErrMalformedData, len(data), TupleSize)
	}
	points := make([]Point, 0, len(data)/TupleSize)
	for i := 0; i < len(data); i += TupleSize {
		var p Point
		var ok bool
		if p.Position, ok = data[i].(curvature.Pair); !ok {
			return nil, malformed(i, "position", data[i])
		}
		if p.LeftTangent, ok = toFloat(data[i+1]); !ok {
			return nil, malformed(i+1, "left tangent", data[i+1])
		}
		if p.RightTangent, ok = toFloat(data[i+2]); !ok {
			return nil, malformed(i+2, "right tangent", data[i+2])
		}
		if p.LeftMode, ok = toMode(data[i+3]); !ok {
			return nil, malformed(i+3, "left mode", data[i+3])
		}
		if p.RightMode, ok = toMode(data[i+4]); !ok {
			return nil, malformed(i+4, "right mode", data[i+4])
		}
		if err := checkPoint(p); err != nil {
			return nil, fmt.Errorf("%w: tuple at entry %d: %w", ErrMalformedData, i, err)
		}
		points = append(points, p)
	}
	slices.SortStableFunc(points, func(a, b Point) int {
		switch {
		case a.Position.X() < b.Position.X():
			return -1
		case a.Position.X() > b.Position.X():
			return 1
		}
		return 0
	})
	return points, nil
}

func malformed(at int, what string, v any) error {
	return fmt.Errorf("%w: entry %d (%s) has invalid value %v of type %T", ErrMalformedData, at, what, v, v)
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

func toMode(v any) (TangentMode, bool) {
	var m TangentMode
	switch x := v.(type) {
	case TangentMode:
		m = x
	case int:
		m = TangentMode(x)
	case int32:
		m = TangentMode(x)
	case int64:
		m = TangentMode(x)
	default:
		return 0, false
	}
	return m, m.Valid()
}
