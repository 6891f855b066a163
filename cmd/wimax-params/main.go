// Command wimax-params computes WiMAX OFDM physical-layer parameters.
//
// Usage:
//
//	wimax-params show --bandwidth 7MHz --cp 1/16
//	wimax-params table
//	wimax-params batch profiles.yaml -o yaml
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/tphakala/go-wimax-ofdm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
