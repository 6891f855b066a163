package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	wimax "github.com/tphakala/go-wimax-ofdm"
)

// Table layout
const (
	tabMinWidth = 0
	tabWidth    = 8
	tabPadding  = 2
	tabPadChar  = ' '
)

type result struct {
	Name string
	OFDM *wimax.OFDM
}

type yamlResult struct {
	Name         string `yaml:"name"`
	wimax.Params `yaml:",inline"`
}

func defaultName(o *wimax.OFDM) string {
	return humanize.SIWithDigits(o.Bandwidth(), 2, "Hz") + "@" + wimax.FormatCyclicPrefix(o.CyclicPrefix())
}

func render(opts *options, results []result) error {
	switch opts.format {
	case formatYAML:
		return writeYAML(opts.out, results)
	default:
		return writeText(opts.out, results)
	}
}

func writeYAML(w io.Writer, results []result) error {
	docs := make([]yamlResult, len(results))
	for i, r := range results {
		docs[i] = yamlResult{Name: r.Name, Params: r.OFDM.Params()}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return enc.Close()
}

func writeText(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, tabPadChar, 0)

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		p := r.OFDM.Params()
		fmt.Fprintf(tw, "Profile:\t%s\n", r.Name)
		fmt.Fprintf(tw, "Bandwidth:\t%s\n", humanize.SI(p.Bandwidth, "Hz"))
		fmt.Fprintf(tw, "Cyclic prefix:\t%s\n", wimax.FormatCyclicPrefix(p.CyclicPrefix))
		fmt.Fprintf(tw, "Oversampling factor:\t%.6f\n", p.N)
		fmt.Fprintf(tw, "Sampling frequency:\t%s (%.0f Hz)\n", humanize.SI(p.SamplingFrequency, "Hz"), p.SamplingFrequency)
		fmt.Fprintf(tw, "Subcarrier spacing:\t%s\n", humanize.SI(p.SubcarrierSpacing, "Hz"))
		fmt.Fprintf(tw, "Occupied bandwidth:\t%s\n", humanize.SI(p.OccupiedBandwidth, "Hz"))
		fmt.Fprintf(tw, "Useful symbol time:\t%.3f µs\n", wimax.SecondsToMicroseconds(p.UsefulSymbolTime))
		fmt.Fprintf(tw, "Cyclic prefix time:\t%.3f µs\n", wimax.SecondsToMicroseconds(p.CyclicPrefixTime))
		fmt.Fprintf(tw, "Symbol time:\t%.3f µs\n", wimax.SecondsToMicroseconds(p.SymbolTime))
		fmt.Fprintf(tw, "Chip duration:\t%.3f ns\n", p.ChipDuration*1e9)
		fmt.Fprintf(tw, "Symbol time (chips):\t%g\n", p.SymbolTimeInChips)
		fmt.Fprintf(tw, "Symbol time (PS):\t%g\n", p.SymbolTimeInPhysicalSlots)
	}

	return tw.Flush()
}

// writeTable prints one row per result with times in microseconds.
func writeTable(w io.Writer, results []result) error {
	times := make([]float64, 0, len(results)*3)
	for _, r := range results {
		times = append(times, r.OFDM.UsefulSymbolTime(), r.OFDM.CyclicPrefixTime(), r.OFDM.SymbolTime())
	}
	micros := make([]float64, len(times))
	if err := wimax.SecondsToMicrosecondsSlice(micros, times); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, tabPadChar, 0)
	fmt.Fprintln(tw, "BW\tCP\tn\tFs\tΔf\tTb (µs)\tTg (µs)\tTs (µs)")
	for i, r := range results {
		o := r.OFDM
		fmt.Fprintf(tw, "%s\t%s\t%.6f\t%s\t%s\t%.3f\t%.3f\t%.3f\n",
			humanize.SI(o.Bandwidth(), "Hz"),
			wimax.FormatCyclicPrefix(o.CyclicPrefix()),
			o.N(),
			humanize.SI(o.SamplingFrequency(), "Hz"),
			humanize.SI(o.SubcarrierSpacing(), "Hz"),
			micros[3*i], micros[3*i+1], micros[3*i+2])
	}
	return tw.Flush()
}
