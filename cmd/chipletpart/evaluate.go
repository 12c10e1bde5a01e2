package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/chipletpart/chipletpart/chiptree"
	"github.com/chipletpart/chipletpart/config"
	"github.com/chipletpart/chipletpart/floorplan"
	"github.com/chipletpart/chipletpart/netlistio"
	"github.com/chipletpart/chipletpart/partition"
	"github.com/chipletpart/chipletpart/refine"
)

// runEvaluateMode skips the search entirely and scores a partition/tech
// assignment supplied on disk: partitionFile is the ".cpart.<k>" file,
// and its ".techs.<k>" sibling is found by substituting "techs" for
// "cpart" in the file name.
func runEvaluateMode(in parsedInputs, opts config.Options, partitionFile, netlistPath string, workers int) error {
	part, err := parseFile(partitionFile, netlistio.ParsePartitionFile)
	if err != nil {
		return fmt.Errorf("%w: reading partition file: %v", errArgument, err)
	}
	techsFile := techsFileFor(partitionFile)
	techPerPart, err := parseFile(techsFile, netlistio.ParseTechsFile)
	if err != nil {
		return fmt.Errorf("%w: reading techs file %q: %v", errArgument, techsFile, err)
	}

	k := len(techPerPart)
	for _, p := range part {
		if p < 0 || p >= k {
			return fmt.Errorf("%w: partition file references partition %d outside [0,%d)", errArgument, p, k)
		}
	}
	state := refine.PartitionState{Part: part, K: k}

	techNames := uniqueTechs(techPerPart)
	catalog, err := netlistio.BuildCatalog(techNames, in.Wafers, in.Assemblies, in.Tests, in.Layers, in.IOs)
	if err != nil {
		logrus.Fatalf("failed to build technology catalog: %v", err)
	}

	cfg := partition.TrialConfig{
		Catalog:          catalog,
		Oracle:           chiptree.NewOracle(),
		EvalParams:       evalParams(opts, catalog, techPerPart[0]),
		FloorplanParams:  floorplan.DefaultParams(),
		FloorplanWorkers: workers,
		RefineCfg:        refine.DefaultConfig(),
		Seed:             opts.Seed,
	}
	cand := partition.EvaluateCandidate(in.H, state, techPerPart, cfg)

	logrus.WithFields(logrus.Fields{"k": cand.State.K, "cost": cand.Cost, "valid": cand.Valid}).Info("evaluated supplied partition")
	return writeResult(netlistPath, cand)
}

// techsFileFor derives the sibling ".techs.<k>" path from a ".cpart.<k>"
// path by substituting the last occurrence of "cpart" with "techs".
func techsFileFor(partitionFile string) string {
	idx := strings.LastIndex(partitionFile, "cpart")
	if idx < 0 {
		return partitionFile
	}
	return partitionFile[:idx] + "techs" + partitionFile[idx+len("cpart"):]
}

// uniqueTechs returns the distinct technology names in techPerPart,
// preserving first-seen order, for building a catalog sized to exactly
// what the supplied assignment needs.
func uniqueTechs(techPerPart []string) []string {
	seen := make(map[string]bool, len(techPerPart))
	var out []string
	for _, t := range techPerPart {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
