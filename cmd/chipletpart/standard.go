package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/chipletpart/chipletpart/chiptree"
	"github.com/chipletpart/chipletpart/config"
	"github.com/chipletpart/chipletpart/floorplan"
	"github.com/chipletpart/chipletpart/netlistio"
	"github.com/chipletpart/chipletpart/partition"
	"github.com/chipletpart/chipletpart/refine"
	"github.com/chipletpart/chipletpart/techlib"
)

// runStandardMode partitions the parsed netlist over a single technology
// node and writes the result triple (.cpart.<k>, .techs.<k>, .summary.txt)
// next to the netlist file.
func runStandardMode(in parsedInputs, opts config.Options, techNode, netlistPath string, workers int) error {
	catalog, err := netlistio.BuildCatalog([]string{techNode}, in.Wafers, in.Assemblies, in.Tests, in.Layers, in.IOs)
	if err != nil {
		logrus.Fatalf("failed to build technology catalog: %v", err)
	}

	partOpts := partition.Options{
		MinParts:        defaultInt(opts.MinPartitions, 1),
		MaxParts:        defaultInt(opts.MaxPartitions, 8),
		Tech:            techNode,
		Seed:            opts.Seed,
		Workers:         workers,
		TopN:            5,
		EvalParams:      evalParams(opts, catalog, techNode),
		FloorplanParams: floorplan.DefaultParams(),
		RefineCfg:       refine.DefaultConfig(),
	}

	logrus.WithFields(logrus.Fields{"tech": techNode, "min_k": partOpts.MinParts, "max_k": partOpts.MaxParts}).Info("running partition sweep")
	report, err := partition.Run(in.H, catalog, partOpts)
	if err != nil {
		logrus.WithError(err).Warn("partition sweep did not find a feasible solution")
		return err
	}

	logrus.WithFields(logrus.Fields{"k": report.Best.State.K, "cost": report.Best.Cost, "valid": report.Best.Valid}).Info("best partition found")
	return writeResult(netlistPath, report.Best)
}

// evalParams derives chiptree.EvalParams from the resolved config and the
// primary technology's assembly process (for the bonding pitch the
// pad-grid sizer needs).
func evalParams(opts config.Options, catalog techlib.Catalog, techNode string) chiptree.EvalParams {
	bondingPitch := 0.1
	if lib, ok := catalog.Lookup(techNode); ok && lib.Assembly != nil {
		bondingPitch = lib.Assembly.BondingPitchMM
	}
	return chiptree.EvalParams{
		DieSeparationMM: opts.SeparationMM,
		BondingPitchMM:  bondingPitch,
		PadAspectRatio:  1,
	}
}

func defaultInt(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

func writeResult(netlistPath string, cand partition.Candidate) error {
	suffix := fmt.Sprintf(".%d", cand.State.K)

	if err := writeFile(netlistPath+".cpart"+suffix, func(f *os.File) error {
		return netlistio.WritePartition(f, cand.State.Part)
	}); err != nil {
		return err
	}
	if err := writeFile(netlistPath+".techs"+suffix, func(f *os.File) error {
		return netlistio.WriteTechs(f, cand.TechPerPart)
	}); err != nil {
		return err
	}
	return writeFile(netlistPath+".summary.txt", func(f *os.File) error {
		return netlistio.WriteSummary(f, cand)
	})
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
