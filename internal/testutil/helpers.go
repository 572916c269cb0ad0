// Package testutil provides reusable test helpers and signal generators for
// the retro rendering packages.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	DBTolerance      = 0.01
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// AssertPeakDB verifies the buffer's peak level in dBFS.
func AssertPeakDB(t *testing.T, s []float64, expectedDB, tolerance float64) bool {
	t.Helper()
	peak := Peak(s)
	if peak == 0 {
		return assert.Fail(t, "silent buffer", "expected peak %.2f dBFS", expectedDB)
	}
	return assert.InDelta(t, expectedDB, 20*math.Log10(peak), tolerance,
		"peak %.4f dBFS, want %.4f", 20*math.Log10(peak), expectedDB)
}

// Sine generates n samples of amp*sin(2π f t) at the given rate.
func Sine(freq, rate float64, n int, amp float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/rate)
	}
	return x
}

// Constant returns n copies of v.
func Constant(v float64, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = v
	}
	return x
}

// Peak returns the largest absolute sample.
func Peak(s []float64) float64 {
	var peak float64
	for _, v := range s {
		peak = max(peak, math.Abs(v))
	}
	return peak
}

// RMS returns the root mean square of s.
func RMS(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(s)))
}
