package curve

import (
	"fmt"

	"github.com/npillmayer/curvature"
)

// PointField names a per-point attribute for indexed access.
type PointField int

// Point fields.
const (
	FieldPosition PointField = iota
	FieldLeftTangent
	FieldLeftMode
	FieldRightTangent
	FieldRightMode
	fieldCount
)

var fieldNames = [...]string{"position", "left_tangent", "left_mode", "right_tangent", "right_mode"}

func (f PointField) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("<field %d>", int(f))
	}
	return fieldNames[f]
}

// ParsePointField is the inverse of PointField.String.
func ParsePointField(name string) (PointField, bool) {
	for i, n := range fieldNames {
		if n == name {
			return PointField(i), true
		}
	}
	return 0, false
}

// Fields returns all point fields in canonical order.
func Fields() []PointField {
	return []PointField{FieldPosition, FieldLeftTangent, FieldLeftMode, FieldRightTangent, FieldRightMode}
}

// PointField returns a field of point i: a curvature.Pair for the position,
// float64 for tangents and TangentMode for modes.
func (c *Curve) PointField(i int, f PointField) (any, error) {
	p, err := c.Point(i)
	if err != nil {
		return nil, err
	}
	switch f {
	case FieldPosition:
		return p.Position, nil
	case FieldLeftTangent:
		return p.LeftTangent, nil
	case FieldLeftMode:
		return p.LeftMode, nil
	case FieldRightTangent:
		return p.RightTangent, nil
	case FieldRightMode:
		return p.RightMode, nil
	}
	return nil, fmt.Errorf("%w: unknown field %v", ErrMalformedData, f)
}

// SetPointField sets a field of point i, accepting the types PointField
// returns (numbers of any type for tangents, int for modes). Setting the
// position moves the point; the point's index after the operation is
// returned.
func (c *Curve) SetPointField(i int, f PointField, v any) (int, error) {
	switch f {
	case FieldPosition:
		pos, ok := v.(curvature.Pair)
		if !ok {
			return i, malformed(i, f.String(), v)
		}
		j, err := c.SetPointOffset(i, pos.X())
		if err != nil {
			return i, err
		}
		return j, c.SetPointValue(j, pos.Y())
	case FieldLeftTangent, FieldRightTangent:
		t, ok := toFloat(v)
		if !ok {
			return i, malformed(i, f.String(), v)
		}
		if f == FieldLeftTangent {
			return i, c.SetLeftTangent(i, t)
		}
		return i, c.SetRightTangent(i, t)
	case FieldLeftMode, FieldRightMode:
		m, ok := toMode(v)
		if !ok {
			return i, fmt.Errorf("%w: %v", ErrInvalidTangentMode, v)
		}
		if f == FieldLeftMode {
			return i, c.SetLeftMode(i, m)
		}
		return i, c.SetRightMode(i, m)
	}
	return i, fmt.Errorf("%w: unknown field %v", ErrMalformedData, f)
}
