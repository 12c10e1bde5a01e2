package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chipletpart/chipletpart/config"
)

var (
	flagPartitionFile string
	flagGeneticMode   bool
	flagCanonicalGA   bool
	flagTechNodes     string
	flagGenerations   int
	flagPopulation    int
	flagSeed          int64
	flagMinPartitions int
	flagMaxPartitions int
	flagMutationRate  float64
	flagCrossoverRate float64
	flagConfigFile    string
	flagWorkers       int
)

var rootCmd = &cobra.Command{
	Use:   "chipletpart <io_xml> <layer_xml> <wafer_xml> <assembly_xml> <test_xml> <netlist_xml> <blocks_txt> <reach> <separation> [tech_node]",
	Short: "Partitions a block-level SoC netlist into chiplets minimizing fabrication, assembly, and test cost",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(9)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errArgument, err)
		}
		return nil
	},
	RunE:  runRoot,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&flagPartitionFile, "partition", "", "skip search and evaluate the supplied partition/tech assignment")
	flags.BoolVar(&flagGeneticMode, "genetic-tech-part", false, "run the genetic technology-assignment optimizer")
	flags.BoolVar(&flagCanonicalGA, "canonical-ga", false, "canonicalize individuals during the genetic search to dedup symmetric solutions")
	flags.StringVar(&flagTechNodes, "tech-nodes", "", "comma-separated technology node names for genetic mode")
	flags.IntVar(&flagGenerations, "generations", 0, "genetic loop generation count")
	flags.IntVar(&flagPopulation, "population", 0, "genetic individual count per generation")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed")
	flags.IntVar(&flagMinPartitions, "min-partitions", 0, "lower bound on the number of chiplets")
	flags.IntVar(&flagMaxPartitions, "max-partitions", 0, "upper bound on the number of chiplets")
	flags.Float64Var(&flagMutationRate, "mutation-rate", 0, "genetic mutation probability")
	flags.Float64Var(&flagCrossoverRate, "crossover-rate", 0, "genetic crossover probability")
	flags.StringVar(&flagConfigFile, "config", "", "YAML file of defaults; CLI flags override its values")
	flags.IntVar(&flagWorkers, "workers", 0, "concurrent trial/evaluation workers (defaults to NumCPU)")
}

// Execute runs the root command and maps its outcome to the documented
// exit codes: 0 success, 1 argument error, nonzero on internal failure.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errArgument) {
			return 1
		}
		return 2
	}
	return 0
}

func runRoot(cmd *cobra.Command, args []string) error {
	opts := config.Default()
	if flagConfigFile != "" {
		fileOpts, err := config.Load(flagConfigFile)
		if err != nil {
			return fmt.Errorf("%w: reading config file: %v", errArgument, err)
		}
		opts = fileOpts
	}
	opts = config.Merge(opts, flagOverrides())

	reach, err := strconv.ParseFloat(args[7], 64)
	if err != nil {
		return fmt.Errorf("%w: reach must be a float: %v", errArgument, err)
	}
	separation, err := strconv.ParseFloat(args[8], 64)
	if err != nil {
		return fmt.Errorf("%w: separation must be a float: %v", errArgument, err)
	}
	if opts.ReachMM == 0 {
		opts.ReachMM = reach
	}
	if opts.SeparationMM == 0 {
		opts.SeparationMM = separation
	}

	in, err := loadInputs(args[0], args[1], args[2], args[3], args[4], args[5], args[6])
	if err != nil {
		logrus.Fatalf("failed to parse input files: %v", err)
	}

	workers := config.WorkerPool{Requested: flagWorkers}.Count()

	netlistPath := args[5]

	if flagPartitionFile != "" {
		return runEvaluateMode(in, opts, flagPartitionFile, netlistPath, workers)
	}
	if flagGeneticMode {
		if flagTechNodes == "" {
			return fmt.Errorf("%w: --genetic-tech-part requires --tech-nodes", errArgument)
		}
		techNodes := strings.Split(flagTechNodes, ",")
		return runGeneticMode(in, opts, techNodes, flagCanonicalGA, netlistPath, workers)
	}
	if len(args) < 10 {
		return fmt.Errorf("%w: standard mode requires a technology node argument", errArgument)
	}
	return runStandardMode(in, opts, args[9], netlistPath, workers)
}

// flagOverrides packs only the flags the user actually set into an
// Options value, so config.Merge leaves file/default values alone for
// everything else.
func flagOverrides() config.Options {
	var out config.Options
	if flagSeed != 0 {
		out.Seed = flagSeed
	}
	if flagGenerations != 0 {
		out.Generations = flagGenerations
	}
	if flagPopulation != 0 {
		out.Population = flagPopulation
	}
	if flagMinPartitions != 0 {
		out.MinPartitions = flagMinPartitions
	}
	if flagMaxPartitions != 0 {
		out.MaxPartitions = flagMaxPartitions
	}
	if flagMutationRate != 0 {
		out.MutationRate = flagMutationRate
	}
	if flagCrossoverRate != 0 {
		out.CrossoverRate = flagCrossoverRate
	}
	return out
}
