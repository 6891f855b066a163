package wimax

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseBandwidth parses a bandwidth such as "7MHz", "3.5 MHz", "1.75M",
// "7e6" or "7000000" into Hz. Prefixes that scale below 1 Hz are rejected.
// The value is not checked against the supported set; New does that.
func ParseBandwidth(s string) (float64, error) {
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var unit string
		v, unit, err = humanize.ParseSI(s)
		if err != nil {
			return 0, fmt.Errorf("parse bandwidth %q: %w", s, err)
		}
		if unit != "" && !strings.EqualFold(unit, "Hz") {
			return 0, fmt.Errorf("parse bandwidth %q: unexpected unit %q", s, unit)
		}
	}

	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("parse bandwidth %q: must be a positive finite value", s)
	}
	if v < minParsedBandwidth {
		return 0, fmt.Errorf("parse bandwidth %q: %g Hz is below 1 Hz (milli/micro prefix?)", s, v)
	}
	return v, nil
}

// ParseCyclicPrefix parses a cyclic prefix ratio written as a fraction
// ("1/16") or a decimal ("0.0625"). The value is not checked against the
// supported set.
func ParseCyclicPrefix(s string) (float64, error) {
	s = strings.TrimSpace(s)
	num, den, isFraction := strings.Cut(s, "/")
	if !isFraction {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("parse cyclic prefix %q: %w", s, err)
		}
		return v, nil
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("parse cyclic prefix %q: numerator: %w", s, err)
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil {
		return 0, fmt.Errorf("parse cyclic prefix %q: denominator: %w", s, err)
	}
	if d == 0 {
		return 0, fmt.Errorf("parse cyclic prefix %q: zero denominator", s)
	}
	return n / d, nil
}

// FormatCyclicPrefix renders a supported ratio as "1/N" and anything else
// in decimal form.
func FormatCyclicPrefix(cp float64) string {
	for _, v := range validCyclicPrefixes {
		if cp == v {
			return "1/" + strconv.FormatFloat(1/cp, 'f', -1, 64)
		}
	}
	return strconv.FormatFloat(cp, 'g', -1, 64)
}
