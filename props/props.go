/*
Package props exposes the control points of a curve as named properties.

Property names have the form

	point_<i>/<field>

where field is one of position, left_tangent, left_mode, right_tangent and
right_mode. Positions are curvature.Pair values, tangents float64 and modes
int. Names which do not match this scheme are not handled; callers can fall
through to other property sources.

Package props is a thin layer on top of curve.PointField and
curve.SetPointField, intended for inspectors and serialization glue.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package props

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/curvature/curve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'props'
func tracer() tracing.Trace {
	return tracing.Select("props")
}

const prefix = "point_"

// ModeHint enumerates the tangent modes for properties of kind KindInt.
const ModeHint = "Free,Linear"

// Kind is the value type of a property.
type Kind int

// Property kinds.
const (
	KindPair  Kind = iota // curvature.Pair
	KindFloat             // float64
	KindInt               // int
)

func (k Kind) String() string {
	switch k {
	case KindPair:
		return "pair"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	}
	return fmt.Sprintf("<kind %d>", int(k))
}

// PropertyInfo describes a property for enumeration.
type PropertyInfo struct {
	Name string
	Kind Kind
	Hint string // comma separated enum labels, if any
}

// Name returns the property name of field f of point i.
func Name(i int, f curve.PointField) string {
	return prefix + strconv.Itoa(i) + "/" + f.String()
}

// ParseName splits a property name into point index and field.
func ParseName(name string) (i int, f curve.PointField, ok bool) {
	head, tail, found := strings.Cut(name, "/")
	if !found || !strings.HasPrefix(head, prefix) {
		return 0, 0, false
	}
	i, err := strconv.Atoi(strings.TrimPrefix(head, prefix))
	if err != nil || i < 0 {
		return 0, 0, false
	}
	if f, ok = curve.ParsePointField(tail); !ok {
		return 0, 0, false
	}
	return i, f, true
}

// Get returns the value of a property. It reports false if the name is not
// a point property or the point does not exist.
func Get(c *curve.Curve, name string) (any, bool) {
	i, f, ok := ParseName(name)
	if !ok {
		return nil, false
	}
	v, err := c.PointField(i, f)
	if err != nil {
		tracer().Debugf("property %q: %v", name, err)
		return nil, false
	}
	if m, isMode := v.(curve.TangentMode); isMode {
		return int(m), true
	}
	return v, true
}

// Set sets the value of a property. handled is false for names which are not
// point properties; err is non-nil if the curve rejected the value.
func Set(c *curve.Curve, name string, v any) (handled bool, err error) {
	i, f, ok := ParseName(name)
	if !ok {
		return false, nil
	}
	_, err = c.SetPointField(i, f, v)
	return true, err
}

// List enumerates the point properties of c. The left side of the first
// point and the right side of the last point do not contribute to the curve
// and are omitted.
func List(c *curve.Curve) []PropertyInfo {
	n := c.PointCount()
	list := make([]PropertyInfo, 0, n*len(curve.Fields()))
	for i := 0; i < n; i++ {
		list = append(list, PropertyInfo{Name: Name(i, curve.FieldPosition), Kind: KindPair})
		if i != 0 {
			list = append(list,
				PropertyInfo{Name: Name(i, curve.FieldLeftTangent), Kind: KindFloat},
				PropertyInfo{Name: Name(i, curve.FieldLeftMode), Kind: KindInt, Hint: ModeHint})
		}
		if i != n-1 {
			list = append(list,
				PropertyInfo{Name: Name(i, curve.FieldRightTangent), Kind: KindFloat},
				PropertyInfo{Name: Name(i, curve.FieldRightMode), Kind: KindInt, Hint: ModeHint})
		}
	}
	return list
}
