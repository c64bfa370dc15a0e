package main

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rib-format/go-rib/format"
)

// FileConfig holds the defaults read with -config.  Flags given on the
// command line take precedence.
type FileConfig struct {
	Color    *bool  `yaml:"color"`
	Format   string `yaml:"format"`
	Strict   *bool  `yaml:"strict"`
	Debounce string `yaml:"debounce"`

	format   *format.Format
	debounce time.Duration
}

func loadFileConfig(path string) (*FileConfig, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseFileConfig(d)
}

func parseFileConfig(d []byte) (*FileConfig, error) {
	fc := &FileConfig{}
	if err := yaml.UnmarshalWithOptions(d, fc, yaml.Strict()); err != nil {
		return nil, err
	}
	if fc.Format != "" {
		f, err := format.ParseFormat(fc.Format)
		if err != nil {
			return nil, err
		}
		fc.format = &f
	}
	if fc.Debounce != "" {
		d, err := time.ParseDuration(fc.Debounce)
		if err != nil {
			return nil, fmt.Errorf("debounce: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("debounce: negative duration %s", d)
		}
		fc.debounce = d
	}
	return fc, nil
}
