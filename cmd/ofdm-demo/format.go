package main

import (
	"math"
	"strconv"
	"strings"
)

// strSignificantDigits is the precision of the reference output format.
const strSignificantDigits = 12

// formatFloat renders v as %.12g, appending ".0" to values printed without
// a fraction or exponent, so 8/7 prints as "1.14285714286" and 8000000 as
// "8000000.0".
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(v, 'g', strSignificantDigits, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
