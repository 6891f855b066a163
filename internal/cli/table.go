package cli

import (
	"github.com/spf13/cobra"

	wimax "github.com/tphakala/go-wimax-ofdm"
)

func newTableCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Tabulate every supported bandwidth and cyclic prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := wimax.Profiles()
			results := make([]result, len(profiles))
			for i, o := range profiles {
				results[i] = result{Name: defaultName(o), OFDM: o}
			}

			if opts.format == formatText {
				return writeTable(opts.out, results)
			}
			return render(opts, results)
		},
	}
}
