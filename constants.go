package wimax

// OFDM symbol structure
const (
	Nfft  = 256 // FFT size
	Nused = 200 // Used subcarriers (data + pilots + DC)
)

// Channel bandwidths in Hz.
//
// Only BW3MHz, BW3_5MHz and BW7MHz are accepted by New; the others are
// named for callers that need to refer to them.
const (
	BW1_75MHz = 1_750_000.0
	BW3MHz    = 3_000_000.0
	BW3_5MHz  = 3_500_000.0
	BW5_5MHz  = 5_500_000.0
	BW7MHz    = 7_000_000.0
	BW10MHz   = 10_000_000.0
)

// Cyclic prefix ratios (G = Tg/Tb)
const (
	CP1_4  = 1.0 / 4.0
	CP1_8  = 1.0 / 8.0
	CP1_16 = 1.0 / 16.0
	CP1_32 = 1.0 / 32.0
)

// Sampling frequency derivation
const (
	samplingQuantum = 8000.0  // Fs is truncated to a multiple of 8 kHz
	fallbackFactor  = 8.0 / 7 // Used when no divisor in the factor table matches
)

// Physical slot duration in sampling periods
const physicalSlotSamples = 4.0

// Unit conversion
const (
	millisecondsPerSecond = 1000.0
	microsecondsPerSecond = 1_000_000.0
)

// Smallest bandwidth ParseBandwidth accepts, in Hz
const minParsedBandwidth = 1.0

// Default relative tolerance for Verify
const defaultVerifyTolerance = 1e-12

// validBandwidths lists the bandwidths accepted by New, in enumeration order.
var validBandwidths = [...]float64{BW3MHz, BW3_5MHz, BW7MHz}

// validCyclicPrefixes lists the cyclic prefix ratios accepted by New.
var validCyclicPrefixes = [...]float64{CP1_4, CP1_8, CP1_16, CP1_32}
