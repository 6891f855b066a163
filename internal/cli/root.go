// Package cli implements the wimax-params command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Output formats
const (
	formatText = "text"
	formatYAML = "yaml"
)

type options struct {
	logLevel string
	format   string

	out    io.Writer
	logger *logrus.Logger
}

// NewRootCmd builds the command tree. Results go to out, logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{
		out:    out,
		logger: logrus.New(),
	}
	opts.logger.SetOutput(errOut)
	opts.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cmd := &cobra.Command{
		Use:   "wimax-params",
		Short: "Compute WiMAX OFDM physical-layer parameters",
		Long: `wimax-params derives the oversampling factor, sampling frequency,
subcarrier spacing and symbol timing of a WiMAX OFDM channel.

Supported bandwidths: 3MHz, 3.5MHz, 7MHz
Supported cyclic prefixes: 1/4, 1/8, 1/16, 1/32`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			opts.logger.SetLevel(level)

			if opts.format != formatText && opts.format != formatYAML {
				return fmt.Errorf("invalid --format %q (want %s or %s)", opts.format, formatText, formatYAML)
			}
			return nil
		},
	}

	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetGlobalNormalizationFunc(normalizeFlagName)

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "o", formatText,
		"Output format: text, yaml")

	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newTableCmd(opts))
	cmd.AddCommand(newBatchCmd(opts))

	return cmd
}

// flagAliases maps accepted spellings to canonical flag names.
var flagAliases = map[string]string{
	"bw":            "bandwidth",
	"cyclic-prefix": "cp",
	"cyclicprefix":  "cp",
	"guard":         "cp",
	"output":        "format",
	"loglevel":      "log-level",
}

func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	name = strings.ToLower(strings.ReplaceAll(name, "_", "-"))
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

// Execute runs the CLI with os.Args against stdout and stderr.
func Execute() error {
	return NewRootCmd(os.Stdout, os.Stderr).Execute()
}
