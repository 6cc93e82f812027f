package props

import (
	"testing"

	"github.com/npillmayer/curvature"
	"github.com/npillmayer/curvature/curve"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCurve(t *testing.T) *curve.Curve {
	c := curve.New()
	t.Cleanup(c.Close)
	c.AddPoint(curvature.P(0, 0))
	c.AddPoint(curvature.P(0.5, 0.5))
	c.AddPoint(curvature.P(1, 1))
	return c
}

func TestParseName(t *testing.T) {
	i, f, ok := ParseName("point_12/right_mode")
	require.True(t, ok)
	assert.Equal(t, 12, i)
	assert.Equal(t, curve.FieldRightMode, f)
	assert.Equal(t, "point_12/right_mode", Name(i, f))
	for _, name := range []string{
		"", "point_1", "point_/position", "point_x/position", "point_-1/position",
		"pt_1/position", "point_1/colour", "resolution",
	} {
		_, _, ok := ParseName(name)
		assert.False(t, ok, name)
	}
}

func TestGet(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newCurve(t)
	require.NoError(t, c.SetLeftMode(2, curve.TangentLinear))
	v, ok := Get(c, "point_1/position")
	require.True(t, ok)
	assert.Equal(t, curvature.P(0.5, 0.5), v)
	v, ok = Get(c, "point_2/left_mode")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = Get(c, "point_2/left_tangent")
	require.True(t, ok)
	assert.InDelta(t, 1.0, v.(float64), 1e-9)

	_, ok = Get(c, "point_3/position")
	assert.False(t, ok)
	_, ok = Get(c, "bake_resolution")
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newCurve(t)
	handled, err := Set(c, "point_0/right_tangent", 0.25)
	assert.True(t, handled)
	require.NoError(t, err)
	rt, _ := c.RightTangent(0)
	assert.Equal(t, 0.25, rt)

	handled, err = Set(c, "point_1/position", curvature.P(0.75, 0.1))
	assert.True(t, handled)
	require.NoError(t, err)
	p, _ := c.Position(1)
	assert.Equal(t, curvature.P(0.75, 0.1), p)

	handled, err = Set(c, "point_0/right_mode", 4)
	assert.True(t, handled)
	assert.ErrorIs(t, err, curve.ErrInvalidTangentMode)
	handled, err = Set(c, "point_9/left_tangent", 1.0)
	assert.True(t, handled)
	assert.ErrorIs(t, err, curve.ErrIndexOutOfRange)

	handled, err = Set(c, "min_value", 0.0)
	assert.False(t, handled)
	assert.NoError(t, err)
}

func TestList(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newCurve(t)
	list := List(c)
	var names []string
	for _, pi := range list {
		names = append(names, pi.Name)
	}
	assert.Equal(t, []string{
		"point_0/position", "point_0/right_tangent", "point_0/right_mode",
		"point_1/position", "point_1/left_tangent", "point_1/left_mode",
		"point_1/right_tangent", "point_1/right_mode",
		"point_2/position", "point_2/left_tangent", "point_2/left_mode",
	}, names)
	assert.Equal(t, KindPair, list[0].Kind)
	assert.Equal(t, KindInt, list[2].Kind)
	assert.Equal(t, ModeHint, list[2].Hint)
	for _, pi := range list {
		_, ok := Get(c, pi.Name)
		assert.True(t, ok, pi.Name)
	}

	empty := curve.New()
	defer empty.Close()
	assert.Empty(t, List(empty))
}
