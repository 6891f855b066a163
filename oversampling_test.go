package wimax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The factor table divisors are applied to the raw Hz value. These cases
// pin the resulting selection, including bandwidths New rejects.
func TestOversamplingFactor(t *testing.T) {
	tests := []struct {
		name      string
		bandwidth float64
		expected  float64
	}{
		{"7MHz_divisible_by_1.75", BW7MHz, 8.0 / 7},
		{"3.5MHz_divisible_by_1.75", BW3_5MHz, 8.0 / 7},
		{"1.75MHz_divisible_by_1.75", BW1_75MHz, 8.0 / 7},
		{"3MHz_divisible_by_1.5", BW3MHz, 86.0 / 75},
		{"5.5MHz_divisible_by_1.25", BW5_5MHz, 144.0 / 125},
		{"10MHz_divisible_by_1.25", BW10MHz, 144.0 / 125},
		{"MHz_scale_2.75", 2.75, 316.0 / 275},
		{"MHz_scale_2", 2, 57.0 / 50},
		{"MHz_scale_3", 3, 86.0 / 75},
		{"No_divisor_matches", 1.1, fallbackFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, oversamplingFactor(tt.bandwidth))
		})
	}
}

// First exact divisor wins even when a later row would also match.
func TestOversamplingFactor_FirstMatchWins(t *testing.T) {
	// 5.5 first matches 2.75; 5 500 000 already matches 1.25.
	assert.Equal(t, 316.0/275, oversamplingFactor(5.5))
	assert.Equal(t, 144.0/125, oversamplingFactor(5_500_000))

	// 3.5 MHz divides by both 1.75 and 1.25 (in Hz); 1.75 comes first.
	assert.Equal(t, 8.0/7, oversamplingFactor(3_500_000))
}

func TestSamplingFrequency(t *testing.T) {
	tests := []struct {
		n, bandwidth, expected float64
	}{
		{8.0 / 7, 7_000_000, 8_000_000},
		{86.0 / 75, 3_000_000, 3_440_000},
		{144.0 / 125, 5_500_000, 6_328_000},
		{144.0 / 125, 10_000_000, 11_520_000},
		{1, 7999, 0},
		{1, 15999, 8000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, samplingFrequency(tt.n, tt.bandwidth),
			"n=%v bw=%v", tt.n, tt.bandwidth)
	}
}
