package wimax

import "math"

// samplingFactor pairs a bandwidth divisor with the oversampling factor
// applied when the divisor divides the bandwidth exactly.
type samplingFactor struct {
	divisor float64
	n       float64
}

// samplingFactors is searched in order; the first exact divisor wins.
var samplingFactors = [...]samplingFactor{
	{1.75, 8.0 / 7},
	{1.5, 86.0 / 75},
	{1.25, 144.0 / 125},
	{2.75, 316.0 / 275},
	{2.0, 57.0 / 50},
}

// oversamplingFactor returns the sampling factor n for a bandwidth.
//
// The divisors are written in MHz but are applied to the bandwidth in Hz
// as-is. The remainder must be exactly zero.
func oversamplingFactor(bandwidth float64) float64 {
	for _, f := range samplingFactors {
		if math.Mod(bandwidth, f.divisor) == 0 {
			return f.n
		}
	}
	return fallbackFactor
}

// samplingFrequency truncates n*bandwidth down to a multiple of 8 kHz.
func samplingFrequency(n, bandwidth float64) float64 {
	return math.Floor(n*bandwidth/samplingQuantum) * samplingQuantum
}
