package curve

import (
	"sync"
	"testing"

	"github.com/npillmayer/curvature"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaultRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newTestCurve(t)
	assert.Equal(t, 0.0, c.MinValue())
	assert.Equal(t, 1.0, c.MaxValue())
	assert.Equal(t, 1.0, c.Range())
}

func TestRangeKeepsMinimalGap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newTestCurve(t)
	c.SetMinValue(0.995)
	assert.Equal(t, 0.995, c.MinValue())
	c.SetMaxValue(0.5)
	assert.InDelta(t, 1.005, c.MaxValue(), 1e-12)
	assert.InDelta(t, MinYRange, c.Range(), 1e-12)
	c.SetMinValue(2)
	assert.InDelta(t, 0.995, c.MinValue(), 1e-12)
	c.SetMaxValue(5)
	c.SetMinValue(-3)
	assert.Equal(t, -3.0, c.MinValue())
	assert.Equal(t, 5.0, c.MaxValue())
}

func TestWithRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newTestCurve(t, WithRange(-1, 4))
	assert.Equal(t, -1.0, c.MinValue())
	assert.Equal(t, 4.0, c.MaxValue())
	c = newTestCurve(t, WithRange(0.5, 0.5))
	assert.InDelta(t, 0.51, c.MaxValue(), 1e-12)
}

func TestRangeSignals(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newTestCurve(t)
	var got []Signal
	c.Connect(SignalRangeChanged, func(_ *Curve, s Signal) { got = append(got, s) })
	c.Connect(SignalChanged, func(_ *Curve, s Signal) { got = append(got, s) })
	c.SetMaxValue(3)
	assert.Equal(t, []Signal{SignalRangeChanged, SignalChanged}, got)
}

func TestEnsureDefaultSetup(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newTestCurve(t)
	c.EnsureDefaultSetup(-1, 2)
	assert.Equal(t, []float64{0, 1}, offsets(c))
	assert.Equal(t, 1.0, c.Sample(0.5))
	assert.Equal(t, -1.0, c.MinValue())
	assert.Equal(t, 2.0, c.MaxValue())
	c.EnsureDefaultSetup(0, 1)
	assert.Equal(t, 2, c.PointCount())
	assert.Equal(t, -1.0, c.MinValue())

	d := newTestCurve(t)
	d.AddPoint(curvature.P(0.5, 0))
	d.EnsureDefaultSetup(-1, 2)
	assert.Equal(t, 1, d.PointCount())
	assert.Equal(t, 0.0, d.MinValue())
}

func TestEnsureDefaultSetupRunsOnce(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newTestCurve(t)
	var mu sync.Mutex
	counts := map[Signal]int{}
	for _, sig := range []Signal{SignalPointsChanged, SignalRangeChanged} {
		c.Connect(sig, func(_ *Curve, s Signal) {
			mu.Lock()
			counts[s]++
			mu.Unlock()
		})
	}
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.EnsureDefaultSetup(-1, 2)
		}()
	}
	wg.Wait()
	assert.Equal(t, []float64{0, 1}, offsets(c))
	assert.Equal(t, 1, counts[SignalPointsChanged])
	assert.Equal(t, 1, counts[SignalRangeChanged])
}

func TestEnsureDefaultSetupLosesToConcurrentEdit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newTestCurve(t)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.AddPoint(curvature.P(0.5, 0))
	}()
	go func() {
		defer wg.Done()
		c.EnsureDefaultSetup(-1, 2)
	}()
	wg.Wait()
	// either the setup ran on the empty curve, or it saw the new point
	switch c.PointCount() {
	case 1:
		assert.Equal(t, 0.0, c.MinValue())
	case 3:
		assert.Equal(t, []float64{0, 0.5, 1}, offsets(c))
		assert.Equal(t, -1.0, c.MinValue())
	default:
		t.Fatalf("unexpected point count %d", c.PointCount())
	}
}
