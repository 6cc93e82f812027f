package curve

import (
	"math"
	"testing"

	"github.com/npillmayer/curvature"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newTestCurve(t)
	c.InsertPoint(Point{Position: curvature.P(0, 0.1), RightTangent: 1.5, RightMode: TangentFree})
	c.InsertPoint(Point{Position: curvature.P(0.4, 0.9), LeftMode: TangentLinear, RightTangent: -2})
	c.AddPoint(curvature.P(1, 0.3))
	data := c.Data()
	require.Len(t, data, 3*TupleSize)
	assert.Equal(t, curvature.P(0.4, 0.9), data[5])
	assert.Equal(t, int(TangentLinear), data[8])

	d := newTestCurve(t)
	require.NoError(t, d.SetData(data))
	assert.Equal(t, c.Points(), d.Points())
}

func TestSetDataSortsByOffset(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newTestCurve(t)
	err := c.SetData([]any{
		curvature.P(0.8, 1), 0.0, 0.0, 0, 0,
		curvature.P(0.2, 0), 1, float32(2), TangentLinear, int64(0),
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.8}, offsets(c))
	p, _ := c.Point(0)
	assert.Equal(t, 1.0, p.LeftTangent)
	assert.Equal(t, 2.0, p.RightTangent)
	assert.Equal(t, TangentLinear, p.LeftMode)
}

func TestSetDataRejectsMalformedData(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newTestCurve(t)
	c.AddPoint(curvature.P(0.5, 0.5))
	before := c.Points()
	good := []any{curvature.P(0, 0), 0.0, 0.0, 0, 0}
	cases := map[string][]any{
		"short tuple":    good[:4],
		"position":       {complex(0, 0), 0.0, 0.0, 0, 0},
		"left tangent":   {curvature.P(0, 0), "flat", 0.0, 0, 0},
		"right tangent":  {curvature.P(0, 0), 0.0, nil, 0, 0},
		"left mode":      {curvature.P(0, 0), 0.0, 0.0, 2, 0},
		"right mode":     {curvature.P(0, 0), 0.0, 0.0, 0, 1.0},
		"second tuple":   append(append([]any{}, good...), curvature.P(1, 1), 0.0, 0.0, 0, -1),
		"trailing entry": append(append([]any{}, good...), curvature.P(1, 1)),
		"nan position":   {curvature.P(math.NaN(), 0), 0.0, 0.0, 0, 0},
		"inf tangent":    {curvature.P(0, 0), 0.0, math.Inf(-1), 0, 0},
	}
	for name, data := range cases {
		err := c.SetData(data)
		assert.ErrorIs(t, err, ErrMalformedData, name)
		assert.Equal(t, before, c.Points(), name)
	}
	for _, name := range []string{"nan position", "inf tangent"} {
		assert.ErrorIs(t, c.SetData(cases[name]), ErrNotFinite, name)
	}
}

func TestSetDataEmptiesCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newTestCurve(t)
	c.AddPoint(curvature.P(0.5, 0.5))
	points := 0
	c.Connect(SignalPointsChanged, func(*Curve, Signal) { points++ })
	require.NoError(t, c.SetData(nil))
	assert.Equal(t, 0, c.PointCount())
	assert.Equal(t, 1, points)
	require.NoError(t, c.SetData([]any{}))
	assert.Equal(t, 1, points)
}
