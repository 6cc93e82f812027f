// Package testutil provides test helpers for curves and baked tables.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

// T is the part of *testing.T the helpers need.
type T interface {
	Errorf(format string, args ...any)
	Helper()
}

// DefaultTolerance for comparing sampled values.
const DefaultTolerance = 1e-10

// AssertAscending verifies that s is sorted in non-decreasing order.
func AssertAscending(t T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not ascending: s[%d]=%f < s[%d]=%f",
				i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertSamplesEqual verifies that two sample tables have equal length and
// agree element-wise within tolerance.
func AssertSamplesEqual(t T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	if floats.EqualApprox(expected, actual, tolerance) {
		return true
	}
	for i := range expected {
		if math.Abs(expected[i]-actual[i]) > tolerance {
			return assert.Fail(t, fmt.Sprintf("samples differ at %d: expected %f, actual %f",
				i, expected[i], actual[i]), msgAndArgs...)
		}
	}
	return assert.Fail(t, "samples differ", msgAndArgs...)
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) || v < minVal || v > maxVal {
			return assert.Fail(t, fmt.Sprintf("value out of range: s[%d]=%f is outside [%f, %f]",
				i, v, minVal, maxVal), msgAndArgs...)
		}
	}
	return true
}
