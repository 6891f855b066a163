package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tphakala/go-wimax-ofdm/internal/config"
)

func newBatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Compute every configuration listed in a YAML batch file",
		Long: `Compute every configuration listed in a YAML batch file:

  profiles:
    - name: fixed-7
      bandwidth: 7MHz
      cyclicPrefix: 1/16

Invalid entries are logged and skipped; the command fails if any entry failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := config.Load(args[0])
			if err != nil {
				return err
			}

			results, failed := resolveBatch(opts.logger, batch)
			if len(results) > 0 {
				if err := render(opts, results); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d profiles failed", failed, len(batch.Profiles))
			}
			return nil
		},
	}
}

func resolveBatch(logger *logrus.Logger, batch *config.Batch) ([]result, int) {
	results := make([]result, 0, len(batch.Profiles))
	failed := 0

	for _, spec := range batch.Profiles {
		log := logger.WithFields(logrus.Fields{
			"profile":      spec.Label(),
			"bandwidth":    spec.Bandwidth,
			"cyclicPrefix": spec.CyclicPrefix,
		})

		o, err := spec.Resolve()
		if err != nil {
			log.WithError(err).Warn("skipping profile")
			failed++
			continue
		}

		log.Debug("computed parameters")
		results = append(results, result{Name: spec.Label(), OFDM: o})
	}

	return results, failed
}
