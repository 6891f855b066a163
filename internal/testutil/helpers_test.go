package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder captures failures reported by the helpers.
type recorder struct {
	messages []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func TestHelpers_ForwardCallerMessage(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		run    func(r *recorder) bool
	}{
		{"NaN", "s[1] is NaN", func(r *recorder) bool {
			return AssertNoNaNOrInf(r, []float64{1, math.NaN()}, "profile %s", "7MHz")
		}},
		{"Inf", "s[0] is +Inf", func(r *recorder) bool {
			return AssertNoNaNOrInf(r, []float64{math.Inf(1)}, "profile %s", "7MHz")
		}},
		{"RelativeError", "exceeds tolerance", func(r *recorder) bool {
			return AssertRelativeError(r, 1, 1.1, 1e-3, "profile %s", "7MHz")
		}},
		{"MultipleOf", "not a multiple of 8000", func(r *recorder) bool {
			return AssertMultipleOf(r, 8001000, 8000, "profile %s", "7MHz")
		}},
		{"SlicesClose", "slices differ", func(r *recorder) bool {
			return AssertSlicesClose(r, []float64{1, 2}, []float64{1, 3}, 1e-9, "profile %s", "7MHz")
		}},
		{"SlicesLength", "should have 2 item(s)", func(r *recorder) bool {
			return AssertSlicesClose(r, []float64{1, 2}, []float64{1}, 1e-9, "profile %s", "7MHz")
		}},
		{"AllInRange", "s[1]=300 is outside", func(r *recorder) bool {
			return AssertAllInRange(r, []float64{1, 300}, 0, 200, "profile %s", "7MHz")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			assert.False(t, tt.run(r))
			if assert.Len(t, r.messages, 1) {
				assert.Contains(t, r.messages[0], tt.detail)
				assert.Contains(t, r.messages[0], "profile 7MHz")
			}
		})
	}
}

func TestHelpers_Pass(t *testing.T) {
	r := &recorder{}
	assert.True(t, AssertNoNaNOrInf(r, []float64{0, 1}))
	assert.True(t, AssertRelativeError(r, 2, 2, DefaultTolerance))
	assert.True(t, AssertMultipleOf(r, 8000000, 8000))
	assert.True(t, AssertSlicesClose(r, []float64{1, 2}, []float64{1, 2}, DefaultTolerance))
	assert.True(t, AssertAllInRange(r, []float64{1, 2}, 0, 2))
	assert.Empty(t, r.messages)
}
