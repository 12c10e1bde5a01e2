package main

import (
	"github.com/sirupsen/logrus"

	"github.com/chipletpart/chipletpart/config"
	"github.com/chipletpart/chipletpart/floorplan"
	"github.com/chipletpart/chipletpart/gatech"
	"github.com/chipletpart/chipletpart/netlistio"
	"github.com/chipletpart/chipletpart/partition"
	"github.com/chipletpart/chipletpart/refine"
)

// runGeneticMode runs the genetic technology-assignment optimizer over
// the given technology node names and writes the winning individual's
// result triple next to the netlist file.
func runGeneticMode(in parsedInputs, opts config.Options, techNodes []string, canonical bool, netlistPath string, workers int) error {
	catalog, err := netlistio.BuildCatalog(techNodes, in.Wafers, in.Assemblies, in.Tests, in.Layers, in.IOs)
	if err != nil {
		logrus.Fatalf("failed to build technology catalog: %v", err)
	}

	gaOpts := gatech.Options{
		TechNodes:       techNodes,
		MinParts:        defaultInt(opts.MinPartitions, 1),
		MaxParts:        defaultInt(opts.MaxPartitions, 8),
		PopulationSize:  defaultInt(opts.Population, 20),
		Generations:     defaultInt(opts.Generations, 30),
		MutationRate:    opts.MutationRate,
		CrossoverRate:   opts.CrossoverRate,
		Seed:            opts.Seed,
		Workers:         workers,
		Canonical:       canonical,
		Catalog:         catalog,
		EvalParams:      evalParams(opts, catalog, techNodes[0]),
		FloorplanParams: floorplan.DefaultParams(),
		RefineCfg:       refine.DefaultConfig(),
	}

	logrus.WithFields(logrus.Fields{"tech_nodes": techNodes, "generations": gaOpts.Generations, "population": gaOpts.PopulationSize}).Info("running genetic tech-assignment search")
	result, err := gatech.Run(in.H, gaOpts)
	if err != nil {
		logrus.WithError(err).Warn("genetic search failed to produce a population")
		return err
	}

	best := result.Best
	logrus.WithFields(logrus.Fields{"k": best.State.K, "cost": best.Cost, "valid": best.Valid, "generation": len(result.Trace) - 1}).Info("best individual found")

	cand := partition.Candidate{State: best.State, TechPerPart: best.Tech, Cost: best.Cost, Valid: best.Valid}
	return writeResult(netlistPath, cand)
}
