/*
Package curve implements editable y(x) response curves over x in [0,1].

A curve is a sorted sequence of control points. Each point carries a
position and independent left and right tangents; between two neighboring
points the curve is a cubic Bézier whose control values lie one third of the
segment width away from the end points, following the tangents. Left of the
first point and right of the last point the curve is flat.

Each side of a point has a tangent mode. A free tangent keeps whatever value
has been set, a linear tangent follows the slope towards the neighboring
point and is recomputed whenever the geometry around it changes.

Usage

	c := curve.New(curve.WithBakeResolution(256))
	defer c.Close()
	c.AddPoint(curvature.P(0, 0))
	i := c.AddPoint(curvature.P(1, 1))
	c.SetLeftMode(i, curve.TangentLinear)
	y := c.Sample(0.3)         // exact evaluation
	yb := c.SampleBaked(0.3)   // lookup in the baked table

Every mutation queues a bake on a background worker (see package bake).
Bursts of edits, e.g. from a drag gesture, are coalesced into a single bake.
SampleBaked never waits for a bake; it reads whatever table has been
published last. Clients may subscribe to SignalBaked or call Wait to
synchronize with the worker.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve

import "fmt"

// AsString returns the control points of a curve as a (debugging) string,
// one segment per line. Tangents are given as slope and mode.
//
// Example, an ease-in curve:
//
//	(0,0) .. tangents 0.0000/free and 0.0000/free
//	  .. (0.5,0.25) .. tangents 1.0000/free and 2.0000/linear
//	  .. (1,1)
func AsString(c *Curve) string {
	points := c.Points()
	var s string
	for i, p := range points {
		if i > 0 {
			s += fmt.Sprintf(" and %.4f/%s\n  .. ", round(p.LeftTangent), p.LeftMode)
		}
		s += ptstring(p.Position)
		if i < len(points)-1 {
			s += fmt.Sprintf(" .. tangents %.4f/%s", round(p.RightTangent), p.RightMode)
		}
	}
	return s
}
