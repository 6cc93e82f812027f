package curve

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/npillmayer/curvature"
	"github.com/npillmayer/curvature/bake"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvature'
func tracer() tracing.Trace {
	return tracing.Select("curvature")
}

// Bounds of the curve domain and of bake parameters.
const (
	MinX = 0.0
	MaxX = 1.0

	// MinYRange is the smallest gap between min and max value, once both
	// have been set explicitly.
	MinYRange = 0.01

	DefaultBakeResolution = 100
	MaxBakeResolution     = 1000
)

var (
	// ErrIndexOutOfRange indicates a point index outside [0,count).
	ErrIndexOutOfRange = errors.New("point index out of range")
	// ErrNegativeCount indicates a negative point count.
	ErrNegativeCount = errors.New("point count must not be negative")
	// ErrBakeResolution indicates a bake resolution outside [1,1000].
	ErrBakeResolution = errors.New("bake resolution out of range")
	// ErrInvalidTangentMode indicates an unknown tangent mode.
	ErrInvalidTangentMode = errors.New("invalid tangent mode")
	// ErrNotFinite indicates a NaN or infinite coordinate or tangent.
	ErrNotFinite = errors.New("value is not finite")
	// ErrMalformedData indicates bulk data which cannot be imported.
	ErrMalformedData = errors.New("malformed curve data")
)

// TangentMode tells how the tangent on one side of a point is determined.
type TangentMode int

// Tangent modes.
const (
	TangentFree   TangentMode = iota // tangent value is set explicitly
	TangentLinear                    // tangent follows the slope to the neighbor
	tangentModeCount
)

func (m TangentMode) String() string {
	switch m {
	case TangentFree:
		return "free"
	case TangentLinear:
		return "linear"
	}
	return fmt.Sprintf("<mode %d>", int(m))
}

// Valid is a predicate: is m a known tangent mode?
func (m TangentMode) Valid() bool {
	return m >= 0 && m < tangentModeCount
}

// Point is a control point of a curve. Position.X() is the offset in [0,1],
// Position.Y() the value at that offset.
type Point struct {
	Position     curvature.Pair
	LeftTangent  float64
	RightTangent float64
	LeftMode     TangentMode
	RightMode    TangentMode
}

// Curve is an editable y(x) curve over [0,1], defined by control points and
// cubic Bézier segments between them.
//
// All methods are safe for concurrent use. Mutations queue a background
// bake; SampleBaked reads the latest finished bake without waiting for it.
// Clients must call Close when done with a curve, to stop its bake worker.
type Curve struct {
	mu         sync.Mutex // guards point store, value range and bake parameters
	points     []Point
	minValue   float64
	maxValue   float64
	minmaxSet  uint8 // bit 1: min set, bit 0: max set
	resolution int
	revision   uint64

	cache     bake.Cache
	scheduler *bake.Scheduler
	signals   emitter
}

// Option configures a curve in New.
type Option func(*settings)

type settings struct {
	resolution int
	debounce   time.Duration
	minValue   *float64
	maxValue   *float64
}

// WithBakeResolution sets the number of samples of the baked table.
func WithBakeResolution(r int) Option {
	return func(s *settings) {
		s.resolution = r
	}
}

// WithDebounce sets the quiescence window after the last edit before a
// background bake starts.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) {
		s.debounce = d
	}
}

// WithRange sets the initial value range. It counts as an explicit setting of
// both bounds.
func WithRange(min, max float64) Option {
	return func(s *settings) {
		s.minValue, s.maxValue = &min, &max
	}
}

// New creates an empty curve with value range [0,1].
func New(opts ...Option) *Curve {
	s := settings{resolution: DefaultBakeResolution, debounce: bake.DefaultDebounce}
	for _, opt := range opts {
		opt(&s)
	}
	c := &Curve{
		minValue:   0,
		maxValue:   1,
		resolution: DefaultBakeResolution,
	}
	if err := checkResolution(s.resolution); err != nil {
		tracer().Errorf("ignoring option: %v", err)
	} else {
		c.resolution = s.resolution
	}
	if s.minValue != nil {
		c.setMin(*s.minValue)
		c.setMax(*s.maxValue)
	}
	c.scheduler = bake.NewScheduler(s.debounce, c.bakeOnce, func() {
		c.emit(SignalBaked)
	})
	return c
}

// Close stops the background bake worker, waiting for a running bake to
// finish. Edits after Close no longer reach the baked table; use Bake to
// refresh it explicitly.
func (c *Curve) Close() {
	c.scheduler.Close()
}
