package wimax

import "fmt"

// Params is a flat snapshot of every derived parameter of an OFDM value,
// suitable for tabulation and serialization. Times are in seconds and
// frequencies in Hz.
type Params struct {
	Bandwidth                 float64 `yaml:"bandwidth"`
	CyclicPrefix              float64 `yaml:"cyclicPrefix"`
	N                         float64 `yaml:"n"`
	SamplingFrequency         float64 `yaml:"samplingFrequency"`
	SubcarrierSpacing         float64 `yaml:"subcarrierSpacing"`
	OccupiedBandwidth         float64 `yaml:"occupiedBandwidth"`
	UsefulSymbolTime          float64 `yaml:"usefulSymbolTime"`
	CyclicPrefixTime          float64 `yaml:"cyclicPrefixTime"`
	SymbolTime                float64 `yaml:"symbolTime"`
	ChipDuration              float64 `yaml:"chipDuration"`
	PhysicalSlot              float64 `yaml:"physicalSlot"`
	SymbolTimeInChips         float64 `yaml:"symbolTimeInChips"`
	SymbolTimeInPhysicalSlots float64 `yaml:"symbolTimeInPhysicalSlots"`
}

// Params returns a snapshot of the derived parameters.
func (o *OFDM) Params() Params {
	return Params{
		Bandwidth:                 o.bandwidth,
		CyclicPrefix:              o.cyclicPrefix,
		N:                         o.n,
		SamplingFrequency:         o.fs,
		SubcarrierSpacing:         o.subcarrierSpacing,
		OccupiedBandwidth:         o.OccupiedBandwidth(),
		UsefulSymbolTime:          o.usefulSymbolTime,
		CyclicPrefixTime:          o.cyclicPrefixTime,
		SymbolTime:                o.totalSymbolTime,
		ChipDuration:              o.ChipDuration(),
		PhysicalSlot:              o.PhysicalSlot(),
		SymbolTimeInChips:         o.SymbolTimeInChips(),
		SymbolTimeInPhysicalSlots: o.SymbolTimeInPhysicalSlots(),
	}
}

// Bandwidths returns the bandwidths accepted by New, in ascending order.
func Bandwidths() []float64 {
	out := make([]float64, len(validBandwidths))
	copy(out, validBandwidths[:])
	return out
}

// CyclicPrefixes returns the cyclic prefix ratios accepted by New, largest first.
func CyclicPrefixes() []float64 {
	out := make([]float64, len(validCyclicPrefixes))
	copy(out, validCyclicPrefixes[:])
	return out
}

// Profiles computes every supported bandwidth and cyclic prefix combination,
// bandwidth-major.
func Profiles() []*OFDM {
	profiles := make([]*OFDM, 0, len(validBandwidths)*len(validCyclicPrefixes))
	for _, bw := range validBandwidths {
		for _, cp := range validCyclicPrefixes {
			o, err := New(bw, cp)
			if err != nil {
				panic(fmt.Sprintf("wimax: supported profile rejected: %v", err))
			}
			profiles = append(profiles, o)
		}
	}
	return profiles
}
