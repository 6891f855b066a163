// Package config loads batch files describing OFDM configurations to compute.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	wimax "github.com/tphakala/go-wimax-ofdm"
)

// ErrEmptyBatch is returned when a batch file lists no profiles.
var ErrEmptyBatch = errors.New("batch contains no profiles")

// Batch represents a batch file.
//
//	profiles:
//	  - name: fixed-7
//	    bandwidth: 7MHz
//	    cyclicPrefix: 1/16
type Batch struct {
	Profiles []ProfileSpec `yaml:"profiles"`
}

// ProfileSpec is one requested configuration. Bandwidth and CyclicPrefix are
// kept as text so they can use SI suffixes and fractions.
type ProfileSpec struct {
	Name         string `yaml:"name"`
	Bandwidth    string `yaml:"bandwidth"`
	CyclicPrefix string `yaml:"cyclicPrefix"`
}

// Load reads and decodes a batch file.
func Load(path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer func() { _ = f.Close() }()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Decode reads a batch from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Batch, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var b Batch
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBatch
		}
		return nil, fmt.Errorf("failed to decode batch: %w", err)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate checks that the batch is structurally complete. Value ranges are
// left to the calculator.
func (b *Batch) Validate() error {
	if len(b.Profiles) == 0 {
		return ErrEmptyBatch
	}
	for i, p := range b.Profiles {
		if p.Bandwidth == "" {
			return fmt.Errorf("profile %d (%s): bandwidth is required", i, p.Label())
		}
		if p.CyclicPrefix == "" {
			return fmt.Errorf("profile %d (%s): cyclicPrefix is required", i, p.Label())
		}
	}
	return nil
}

// Label returns the profile name, or a name built from its inputs.
func (p ProfileSpec) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Bandwidth + "@" + p.CyclicPrefix
}

// Resolve parses the textual inputs and builds the calculator.
func (p ProfileSpec) Resolve() (*wimax.OFDM, error) {
	bw, err := wimax.ParseBandwidth(p.Bandwidth)
	if err != nil {
		return nil, err
	}
	cp, err := wimax.ParseCyclicPrefix(p.CyclicPrefix)
	if err != nil {
		return nil, err
	}
	return wimax.New(bw, cp)
}
