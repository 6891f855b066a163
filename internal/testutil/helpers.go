// Package testutil provides reusable test helper functions for the OFDM calculator tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-12
	TimeTolerance    = 1e-18 // Absolute, for durations in seconds
)

// T is the subset of *testing.T the helpers need.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d] is %v", i, v), msgAndArgs...)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if relError > tolerance {
		return assert.Fail(t, fmt.Sprintf(
			"relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
			relError, tolerance, expected, actual), msgAndArgs...)
	}
	return true
}

// AssertMultipleOf verifies that value is an exact multiple of quantum.
func AssertMultipleOf(t T, value, quantum float64, msgAndArgs ...any) bool {
	t.Helper()
	if rem := math.Mod(value, quantum); rem != 0 {
		return assert.Fail(t, fmt.Sprintf(
			"%g is not a multiple of %g (remainder %g)", value, quantum, rem), msgAndArgs...)
	}
	return true
}

// AssertSlicesClose verifies that two slices have equal length and agree
// element-wise within an absolute or relative tolerance.
func AssertSlicesClose(t T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	if !floats.EqualApprox(expected, actual, tolerance) {
		return assert.Fail(t, fmt.Sprintf(
			"slices differ: expected %v, got %v (tolerance %g)", expected, actual, tolerance), msgAndArgs...)
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, fmt.Sprintf(
				"value out of range: s[%d]=%g is outside [%g, %g]", i, v, minVal, maxVal), msgAndArgs...)
		}
	}
	return true
}
