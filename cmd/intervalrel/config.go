package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config is the interval file format:
//
//	intervals:
//	- name: exon-1
//	  interval: "[1,10]"
//	- name: exon-2
//	  interval: "[10,11)"
type Config struct {
	Intervals []NamedInterval `yaml:"intervals"`
}

type NamedInterval struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval"`
}

func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return decodeConfig(f)
}

func decodeConfig(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "decode interval file")
	}
	seen := map[string]struct{}{}
	for i, ni := range cfg.Intervals {
		if ni.Name == "" {
			return nil, errors.Newf("interval %d has no name", i)
		}
		if _, ok := seen[ni.Name]; ok {
			return nil, errors.Newf("duplicate interval name %q", ni.Name)
		}
		seen[ni.Name] = struct{}{}
	}
	return cfg, nil
}
