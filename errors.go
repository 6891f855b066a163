package wimax

import (
	"errors"
	"fmt"
)

// Common errors returned by the calculator.
var (
	// ErrInvalidBandwidth indicates a bandwidth outside the supported set.
	ErrInvalidBandwidth = errors.New("invalid bandwidth")

	// ErrInvalidCyclicPrefix indicates a cyclic prefix ratio outside the supported set.
	ErrInvalidCyclicPrefix = errors.New("invalid cyclic prefix")

	// ErrInconsistent indicates derived parameters that violate their invariants.
	ErrInconsistent = errors.New("inconsistent OFDM parameters")
)

// BandwidthError reports a rejected bandwidth. It matches ErrInvalidBandwidth
// under errors.Is.
type BandwidthError struct {
	Bandwidth float64 // Offending value in Hz
}

func (e *BandwidthError) Error() string {
	return fmt.Sprintf("%v: %.0f Hz", ErrInvalidBandwidth, e.Bandwidth)
}

func (e *BandwidthError) Unwrap() error { return ErrInvalidBandwidth }

// CyclicPrefixError reports a rejected cyclic prefix ratio. It matches
// ErrInvalidCyclicPrefix under errors.Is.
type CyclicPrefixError struct {
	Ratio float64
}

func (e *CyclicPrefixError) Error() string {
	return fmt.Sprintf("%v: %g", ErrInvalidCyclicPrefix, e.Ratio)
}

func (e *CyclicPrefixError) Unwrap() error { return ErrInvalidCyclicPrefix }
