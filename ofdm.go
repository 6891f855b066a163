package wimax

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// OFDM holds the physical-layer parameters derived from a channel bandwidth
// and a cyclic prefix ratio. All fields are computed by New and never
// modified afterwards, so an *OFDM may be shared between goroutines.
type OFDM struct {
	bandwidth    float64
	cyclicPrefix float64

	n                 float64 // Oversampling factor
	fs                float64 // Sampling frequency (Hz)
	subcarrierSpacing float64 // Hz
	usefulSymbolTime  float64 // Tb (s)
	cyclicPrefixTime  float64 // Tg (s)
	totalSymbolTime   float64 // Ts = Tb + Tg (s)
}

// New derives the OFDM parameters for the given bandwidth (Hz) and cyclic
// prefix ratio.
//
// The bandwidth must be one of BW3MHz, BW3_5MHz or BW7MHz and the ratio one
// of CP1_4, CP1_8, CP1_16 or CP1_32. Otherwise New returns a *BandwidthError
// or *CyclicPrefixError and no OFDM value.
func New(bandwidth, cyclicPrefix float64) (*OFDM, error) {
	if !slices.Contains(validBandwidths[:], bandwidth) {
		return nil, &BandwidthError{Bandwidth: bandwidth}
	}
	if !slices.Contains(validCyclicPrefixes[:], cyclicPrefix) {
		return nil, &CyclicPrefixError{Ratio: cyclicPrefix}
	}

	o := &OFDM{
		bandwidth:    bandwidth,
		cyclicPrefix: cyclicPrefix,
	}
	o.n = oversamplingFactor(bandwidth)
	o.fs = samplingFrequency(o.n, bandwidth)
	o.subcarrierSpacing = o.fs / Nfft
	o.calcSymbolTimes()

	return o, nil
}

func (o *OFDM) calcSymbolTimes() {
	o.usefulSymbolTime = 1.0 / o.subcarrierSpacing
	// The explicit conversion rounds the product, so the sum below is not
	// contracted into a fused multiply-add.
	o.cyclicPrefixTime = float64(o.cyclicPrefix * o.usefulSymbolTime)
	o.totalSymbolTime = o.usefulSymbolTime + o.cyclicPrefixTime
}

// Bandwidth returns the channel bandwidth in Hz.
func (o *OFDM) Bandwidth() float64 { return o.bandwidth }

// CyclicPrefix returns the cyclic prefix ratio G.
func (o *OFDM) CyclicPrefix() float64 { return o.cyclicPrefix }

// N returns the oversampling factor.
func (o *OFDM) N() float64 { return o.n }

// SamplingFrequency returns Fs in Hz. It is always a multiple of 8000.
func (o *OFDM) SamplingFrequency() float64 { return o.fs }

// SubcarrierSpacing returns Fs/Nfft in Hz.
func (o *OFDM) SubcarrierSpacing() float64 { return o.subcarrierSpacing }

// SymbolTime returns the total OFDM symbol duration Ts in seconds.
func (o *OFDM) SymbolTime() float64 { return o.totalSymbolTime }

// CyclicPrefixTime returns the guard duration Tg in seconds.
func (o *OFDM) CyclicPrefixTime() float64 { return o.cyclicPrefixTime }

// UsefulSymbolTime returns Tb = 1/SubcarrierSpacing in seconds.
func (o *OFDM) UsefulSymbolTime() float64 { return o.usefulSymbolTime }

// ChipDuration returns the sampling period 1/Fs in seconds.
func (o *OFDM) ChipDuration() float64 { return 1.0 / o.fs }

// PhysicalSlot returns the physical slot duration 4/Fs in seconds.
func (o *OFDM) PhysicalSlot() float64 { return physicalSlotSamples / o.fs }

// SymbolTimeInChips returns Ts expressed in chip durations. No rounding is applied.
func (o *OFDM) SymbolTimeInChips() float64 {
	return o.totalSymbolTime / o.ChipDuration()
}

// SymbolTimeInPhysicalSlots returns Ts expressed in physical slots.
func (o *OFDM) SymbolTimeInPhysicalSlots() float64 {
	return o.totalSymbolTime / o.PhysicalSlot()
}

// OccupiedBandwidth returns the bandwidth spanned by the used subcarriers in Hz.
func (o *OFDM) OccupiedBandwidth() float64 {
	return Nused * o.subcarrierSpacing
}

// String implements fmt.Stringer.
func (o *OFDM) String() string {
	return fmt.Sprintf("OFDM{BW: %.0f Hz, G: 1/%.0f, n: %.6f, Fs: %.0f Hz}",
		o.bandwidth, 1/o.cyclicPrefix, o.n, o.fs)
}

// Verify re-checks the relations between the derived parameters within the
// given relative tolerance. A tolerance <= 0 selects a default of 1e-12.
func (o *OFDM) Verify(tol float64) error {
	if tol <= 0 {
		tol = defaultVerifyTolerance
	}

	if o.fs < 0 || math.Mod(o.fs, samplingQuantum) != 0 {
		return fmt.Errorf("%w: sampling frequency %.0f Hz is not a multiple of %.0f", ErrInconsistent, o.fs, samplingQuantum)
	}

	checks := []struct {
		name          string
		got, expected float64
	}{
		{"subcarrier spacing", o.subcarrierSpacing, o.fs / Nfft},
		{"useful symbol time", o.usefulSymbolTime, 1 / o.subcarrierSpacing},
		{"cyclic prefix time", o.cyclicPrefixTime, o.cyclicPrefix * o.usefulSymbolTime},
		{"symbol time", o.totalSymbolTime, o.usefulSymbolTime * (1 + o.cyclicPrefix)},
	}
	for _, c := range checks {
		if !floats.EqualWithinAbsOrRel(c.got, c.expected, 0, tol) {
			return fmt.Errorf("%w: %s is %g, expected %g", ErrInconsistent, c.name, c.got, c.expected)
		}
	}

	return nil
}
