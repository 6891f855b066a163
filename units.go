package wimax

import (
	"fmt"

	"github.com/tphakala/go-wimax-ofdm/internal/simdops"
)

// Float is the element type accepted by the slice conversion helpers.
type Float = simdops.Float

// SecondsToMilliseconds converts a duration in seconds to milliseconds.
func SecondsToMilliseconds(s float64) float64 {
	return s * millisecondsPerSecond
}

// SecondsToMicroseconds converts a duration in seconds to microseconds.
func SecondsToMicroseconds(s float64) float64 {
	return s * microsecondsPerSecond
}

// SecondsToMillisecondsSlice writes src converted to milliseconds into dst.
// dst must be at least as long as src.
func SecondsToMillisecondsSlice[F Float](dst, src []F) error {
	return scaleInto(dst, src, millisecondsPerSecond)
}

// SecondsToMicrosecondsSlice writes src converted to microseconds into dst.
// dst must be at least as long as src.
func SecondsToMicrosecondsSlice[F Float](dst, src []F) error {
	return scaleInto(dst, src, microsecondsPerSecond)
}

func scaleInto[F Float](dst, src []F, factor F) error {
	if len(dst) < len(src) {
		return fmt.Errorf("destination too short: %d < %d", len(dst), len(src))
	}
	if len(src) == 0 {
		return nil
	}
	simdops.For[F]().Scale(dst[:len(src)], src, factor)
	return nil
}
