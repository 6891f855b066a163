// Package wimax computes the derived physical-layer timing and frequency
// parameters of a WiMAX (IEEE 802.16 OFDM PHY) configuration.
//
// Given a channel bandwidth and a cyclic prefix ratio, the calculator derives
// the oversampling factor, the sampling frequency, the subcarrier spacing and
// the OFDM symbol timing. It only computes parameters; it never generates or
// processes signals.
//
// # Quick Start
//
//	o, err := wimax.New(wimax.BW7MHz, wimax.CP1_16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(o.N(), o.SamplingFrequency(), o.SubcarrierSpacing())
//
// # Derivation
//
// Construction performs, in order:
//
//  1. Validation of the bandwidth against [BW3MHz], [BW3_5MHz] and [BW7MHz]
//     and of the cyclic prefix ratio against [CP1_4], [CP1_8], [CP1_16] and
//     [CP1_32].
//  2. Lookup of the oversampling factor n in an ordered divisor table. The
//     first divisor that divides the bandwidth exactly selects n; 8/7 is the
//     fallback.
//  3. Fs = floor(n·BW / 8000) · 8000.
//  4. Δf = Fs / [Nfft].
//  5. Tb = 1/Δf, Tg = G·Tb, Ts = Tb + Tg.
//
// The constants [BW1_75MHz], [BW5_5MHz] and [BW10MHz] name other WiMAX
// channel widths but are rejected by [New].
//
// # Errors
//
// [New] returns a [*BandwidthError] or [*CyclicPrefixError] for unsupported
// inputs. They match [ErrInvalidBandwidth] and [ErrInvalidCyclicPrefix]
// under errors.Is and carry the rejected value.
//
// # Thread Safety
//
// An [OFDM] value is never modified after [New] returns, so it may be read
// from multiple goroutines without synchronization.
package wimax
