package main

import (
	"testing"

	"github.com/npillmayer/curvature"
	"github.com/npillmayer/curvature/curve"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("0.25, 0.5")
	require.NoError(t, err)
	assert.Equal(t, curvature.P(0.25, 0.5), p.Position)
	p, err = parsePoint("1,1,0.5,-2")
	require.NoError(t, err)
	assert.Equal(t, 0.5, p.LeftTangent)
	assert.Equal(t, -2.0, p.RightTangent)

	for _, s := range []string{"", "1", "1,2,3", "a,b", "1,2,3,x"} {
		_, err := parsePoint(s)
		assert.Error(t, err, s)
	}
	_, err = parsePoint("1,2,3")
	assert.ErrorIs(t, err, errPointSyntax)
}

func TestPointListFlag(t *testing.T) {
	var l pointList
	require.NoError(t, l.Set("0,0"))
	require.NoError(t, l.Set("1,1"))
	assert.Error(t, l.Set("oops"))
	assert.Len(t, l, 2)
	assert.Equal(t, "(0,0) (1,1)", l.String())
}

func TestBuildLinear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := curve.New()
	defer c.Close()
	points := pointList{
		{Position: curvature.P(1, 1)},
		{Position: curvature.P(0, 0)},
	}
	require.NoError(t, build(c, points, true))
	assert.Equal(t, 2, c.PointCount())
	assert.InDelta(t, 0.3, c.Sample(0.3), 1e-12)
}
