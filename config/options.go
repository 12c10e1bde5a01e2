package config

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"
)

// Options is the full set of tunables the command surface recognizes,
// independent of whether they arrived via YAML file or CLI flag.
type Options struct {
	ReachMM       float64 `yaml:"reach"`
	SeparationMM  float64 `yaml:"separation"`
	Seed          int64   `yaml:"seed"`
	Generations   int     `yaml:"generations"`
	Population    int     `yaml:"population"`
	MutationRate  float64 `yaml:"mutation_rate"`
	CrossoverRate float64 `yaml:"crossover_rate"`
	MinPartitions int     `yaml:"min_partitions"`
	MaxPartitions int     `yaml:"max_partitions"`
}

// Default returns the documented defaults: mutation_rate 0.2,
// crossover_rate 0.65, everything else left at its zero value for the
// caller (CLI or file) to supply.
func Default() Options {
	return Options{
		MutationRate:  0.2,
		CrossoverRate: 0.65,
	}
}

// Load reads a YAML config file into Options, starting from Default() so
// a file that omits mutation_rate/crossover_rate still gets their
// documented defaults. A file that cannot be read (including a missing
// file) returns the read error alongside Default().
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Merge overrides every field of base that has a non-zero value in
// override, modeling "CLI flags override YAML values": callers populate
// override only with flags the user actually set.
func Merge(base, override Options) Options {
	out := base
	if override.ReachMM != 0 {
		out.ReachMM = override.ReachMM
	}
	if override.SeparationMM != 0 {
		out.SeparationMM = override.SeparationMM
	}
	if override.Seed != 0 {
		out.Seed = override.Seed
	}
	if override.Generations != 0 {
		out.Generations = override.Generations
	}
	if override.Population != 0 {
		out.Population = override.Population
	}
	if override.MutationRate != 0 {
		out.MutationRate = override.MutationRate
	}
	if override.CrossoverRate != 0 {
		out.CrossoverRate = override.CrossoverRate
	}
	if override.MinPartitions != 0 {
		out.MinPartitions = override.MinPartitions
	}
	if override.MaxPartitions != 0 {
		out.MaxPartitions = override.MaxPartitions
	}
	return out
}
