package gatech_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chipletpart/chipletpart/chiptree"
	"github.com/chipletpart/chipletpart/floorplan"
	"github.com/chipletpart/chipletpart/gatech"
	"github.com/chipletpart/chipletpart/hypergraph"
	"github.com/chipletpart/chipletpart/refine"
	"github.com/chipletpart/chipletpart/techlib"
)

func chainHypergraph(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	blocks := make([]hypergraph.Block, 8)
	for i := range blocks {
		blocks[i] = hypergraph.Block{Name: "b", Area: 1, Power: 0.1, LogicFrac: 1}
	}
	nets := make([]hypergraph.Net, 7)
	netBlocks := make([][]int, 7)
	for i := 0; i < 7; i++ {
		nets[i] = hypergraph.Net{Weight: []float64{1}, Bandwidth: 1, IOType: "std", Reach: 1000}
		netBlocks[i] = []int{i, i + 1}
	}
	h, err := hypergraph.New(blocks, nets, netBlocks)
	require.NoError(t, err)
	return h
}

func smallCatalog(techs ...string) techlib.Catalog {
	wafer := &techlib.WaferProcess{
		DiameterMM: 300, EdgeExclusionMM: 3, ProcessYield: 0.95,
		DicingDistanceMM: 0.1, ReticleXMM: 26, ReticleYMM: 33,
	}
	assembly := &techlib.Assembly{
		PickAndPlaceLifetimeSec: 1, BondingLifetimeSec: 1,
		PickAndPlaceGroupSize: 1, BondingGroupSize: 1,
		AlignmentYield: 0.99, BondingYield: 0.999,
		BondingPitchMM: 0.1, MaxPadCurrentDensity: 1, CoreVoltageV: 1,
	}
	test := &techlib.Test{
		TimePerTestCycleSec: 1e-7, CostPerSecond: 0.01, SamplesPerInput: 1,
		Self:     techlib.TestConfig{DefectCoverage: 0.9},
		Assembly: techlib.TestConfig{DefectCoverage: 0.9},
	}
	layers := []techlib.Layer{{Active: true, CostPerMM2: 1, DefectDensityPerMM2: 0.001, CriticalAreaFraction: 1}}
	io := &techlib.IO{Type: "std", RxAreaMM2: 0.001, TxAreaMM2: 0.001, BandwidthBPS: 1e9, WireCount: 1, ReachMM: 1000}

	c := techlib.Catalog{
		Techs: make(map[string]techlib.Library),
		IOs:   map[string]*techlib.IO{"std": io},
	}
	for _, name := range techs {
		c.Techs[name] = techlib.Library{Name: name, Wafer: wafer, Assembly: assembly, Test: test, Layers: layers}
	}
	return c
}

func TestCanonicalize_Idempotent(t *testing.T) {
	ind := gatech.Individual{
		State: refine.PartitionState{Part: []int{2, 0, 1, 2, 0}, K: 3},
		Tech:  []string{"10nm", "7nm", "45nm"},
	}
	once := gatech.Canonicalize(ind)
	twice := gatech.Canonicalize(once)
	require.Equal(t, once.State.Part, twice.State.Part)
	require.Equal(t, once.Tech, twice.Tech)
}

func TestCanonicalize_RelabelingConverges(t *testing.T) {
	a := gatech.Individual{
		State: refine.PartitionState{Part: []int{0, 0, 1, 1}, K: 2},
		Tech:  []string{"7nm", "10nm"},
	}
	// Same grouping, swapped IDs and tech order: must canonicalize identically.
	b := gatech.Individual{
		State: refine.PartitionState{Part: []int{1, 1, 0, 0}, K: 2},
		Tech:  []string{"10nm", "7nm"},
	}
	ca := gatech.Canonicalize(a)
	cb := gatech.Canonicalize(b)
	require.Equal(t, ca.State.Part, cb.State.Part)
	require.Equal(t, ca.Tech, cb.Tech)
}

func TestRun_FindsFeasibleSolution(t *testing.T) {
	h := chainHypergraph(t)
	catalog := smallCatalog("7nm", "10nm")

	opts := gatech.Options{
		TechNodes:        []string{"7nm", "10nm"},
		MinParts:         2,
		MaxParts:         3,
		PopulationSize:   6,
		Generations:      4,
		Seed:             1,
		Workers:          2,
		Catalog:          catalog,
		FloorplanParams:  floorplan.DefaultParams(),
		RefineCfg:        refine.DefaultConfig(),
		EvalParams: chiptree.EvalParams{
			DieSeparationMM: 0.1,
			BondingPitchMM:  0.1,
			PadAspectRatio:  1,
		},
	}

	result, err := gatech.Run(h, opts)
	require.NoError(t, err)
	require.True(t, result.Best.Valid)
	require.NotEmpty(t, result.Trace)
	// Elitism: the recorded trace never worsens.
	for i := 1; i < len(result.Trace); i++ {
		require.LessOrEqual(t, result.Trace[i], result.Trace[i-1])
	}
}

func TestRun_RequiresTechNodes(t *testing.T) {
	h := chainHypergraph(t)
	_, err := gatech.Run(h, gatech.Options{Catalog: smallCatalog("7nm")})
	require.ErrorIs(t, err, gatech.ErrNoTechNodes)
}

func TestRun_Deterministic(t *testing.T) {
	h := chainHypergraph(t)
	catalog := smallCatalog("7nm", "10nm")
	mkOpts := func() gatech.Options {
		return gatech.Options{
			TechNodes:       []string{"7nm", "10nm"},
			MinParts:        2,
			MaxParts:        2,
			PopulationSize:  4,
			Generations:     3,
			Seed:            42,
			Workers:         1,
			Catalog:         catalog,
			FloorplanParams: floorplan.DefaultParams(),
			RefineCfg:       refine.DefaultConfig(),
			EvalParams: chiptree.EvalParams{
				DieSeparationMM: 0.1,
				BondingPitchMM:  0.1,
				PadAspectRatio:  1,
			},
		}
	}
	r1, err := gatech.Run(h, mkOpts())
	require.NoError(t, err)
	r2, err := gatech.Run(h, mkOpts())
	require.NoError(t, err)
	require.Equal(t, r1.Best.Cost, r2.Best.Cost)
}
