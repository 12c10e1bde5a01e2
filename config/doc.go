// Package config centralizes the command surface's tunable parameters:
// Options mirrors exactly the name/effect list the CLI recognizes (reach,
// separation, seed, generations, population, mutation_rate, crossover_rate,
// min_partitions, max_partitions), loadable from an optional YAML file via
// gopkg.in/yaml.v3, with CLI flags taking precedence over file values —
// the same "YAML defaults, flags override" shape as a config loader
// flagged in DESIGN.md as the source this pattern is grounded on.
package config
