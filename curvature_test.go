package curvature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	if IsZeroApprox(0.001) {
		t.Errorf("Expected 0.001 not to be approx. zero")
	}
	if !IsZeroApprox(0.000001) {
		t.Errorf("Expected 0.000001 to be approx. zero")
	}
	for _, n := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(n) {
			t.Errorf("Expected %g not to be finite", n)
		}
	}
	if !IsFinite(-1024) {
		t.Errorf("Expected -1024 to be finite")
	}
}

func TestPairBasic(t *testing.T) {
	p := P(3, 2)
	q := P(-3, -2)
	if r := p + q; r != P(0, 0) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	if p.WithY(7) != P(3, 7) || p.WithX(0) != P(0, 2) {
		t.Errorf("unexpected WithX/WithY result")
	}
	assert.Equal(t, "(3,2)", p.String())
	assert.True(t, p.IsFinite())
	assert.False(t, P(math.NaN(), 1).IsFinite())
	assert.False(t, P(0, math.Inf(-1)).IsFinite())
}

func TestClampLerp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.5, 0, 1))
	assert.Equal(t, 1.0, Clamp(1.5, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
	assert.InDelta(t, 2.5, Lerp(2, 3, 0.5), 1e-12)
}

func TestBezierInterpolate(t *testing.T) {
	assert.InDelta(t, 0.0, BezierInterpolate(0, 0, 1, 1, 0), 1e-12)
	assert.InDelta(t, 1.0, BezierInterpolate(0, 0, 1, 1, 1), 1e-12)
	assert.InDelta(t, 0.5, BezierInterpolate(0, 0, 1, 1, 0.5), 1e-12)
	// 3·(3/4)²·(1/4)·0 + 3·(3/4)·(1/4)²·1 + (1/4)³
	assert.InDelta(t, 0.15625, BezierInterpolate(0, 0, 1, 1, 0.25), 1e-12)
}

func TestSlope(t *testing.T) {
	assert.InDelta(t, 2.0, Slope(P(0, 0), P(0.5, 1)), 1e-9)
	assert.InDelta(t, 2.0, Slope(P(0.5, 1), P(0, 0)), 1e-9)
	assert.InDelta(t, -1.0, Slope(P(0, 1), P(1, 0)), 1e-9)
	assert.Equal(t, 0.0, Slope(P(0.3, 0), P(0.3, 1)))
	assert.Equal(t, 0.0, Slope(P(0.3, 0.3), P(0.3, 0.3)))
}

func TestSlopeOfSteepSegment(t *testing.T) {
	assert.InDelta(t, 200000.0, Slope(P(0.5, 0), P(0.501, 200)), 1e-3)
	assert.InDelta(t, -2048000.0, Slope(P(0.2, 1024), P(0.201, -1024)), 1e-2)
	assert.InDelta(t, 1e5, Slope(P(0, 0), P(0.0001, 10)), 1e-3)
}
