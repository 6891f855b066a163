// Command ofdm-demo prints the oversampling factor, sampling frequency and
// subcarrier spacing of a 7 MHz channel with a 1/16 cyclic prefix.
package main

import (
	"fmt"
	"log"
	"os"

	wimax "github.com/tphakala/go-wimax-ofdm"
)

func main() {
	o, err := wimax.New(wimax.BW7MHz, wimax.CP1_16)
	if err != nil {
		log.Fatal(err)
	}

	for _, v := range []float64{o.N(), o.SamplingFrequency(), o.SubcarrierSpacing()} {
		fmt.Fprintln(os.Stdout, formatFloat(v))
	}
}
