package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	wimax "github.com/tphakala/go-wimax-ofdm"
)

func newShowCmd(opts *options) *cobra.Command {
	var bandwidth, cyclicPrefix string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the parameters of one configuration",
		Example: `  wimax-params show --bandwidth 7MHz --cp 1/16
  wimax-params show -b 3.5MHz -g 0.25 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bw, err := wimax.ParseBandwidth(bandwidth)
			if err != nil {
				return err
			}
			cp, err := wimax.ParseCyclicPrefix(cyclicPrefix)
			if err != nil {
				return err
			}

			o, err := wimax.New(bw, cp)
			if err != nil {
				return err
			}
			opts.logger.WithFields(logrus.Fields{
				"bandwidth":    bw,
				"cyclicPrefix": cp,
			}).Debug("computed parameters")

			return render(opts, []result{{Name: bandwidth + "@" + cyclicPrefix, OFDM: o}})
		},
	}

	cmd.Flags().StringVarP(&bandwidth, "bandwidth", "b", "7MHz", "Channel bandwidth (e.g. 7MHz, 3.5 MHz, 3000000)")
	cmd.Flags().StringVarP(&cyclicPrefix, "cp", "g", "1/16", "Cyclic prefix ratio (e.g. 1/16, 0.25)")

	return cmd
}
