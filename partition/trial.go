package partition

import (
	"math"
	"math/rand"

	"github.com/chipletpart/chipletpart/chiptree"
	"github.com/chipletpart/chipletpart/floorplan"
	"github.com/chipletpart/chipletpart/hypergraph"
	"github.com/chipletpart/chipletpart/refine"
	"github.com/chipletpart/chipletpart/techlib"
)

// Candidate is one scored partition: the assignment, its technology
// choice per partition, the floorplan that realized it, and the cost
// oracle's verdict.
type Candidate struct {
	State       refine.PartitionState
	TechPerPart []string
	Floorplan   floorplan.Result
	Cost        float64
	Valid       bool
	WorkerIndex int
}

// TrialConfig bundles the fixed inputs one trial needs beyond the
// partition seed itself.
type TrialConfig struct {
	Catalog          techlib.Catalog
	Oracle           *chiptree.Oracle
	EvalParams       chiptree.EvalParams
	FloorplanParams  floorplan.Params
	FloorplanWorkers int
	RefineCfg        refine.Config
	Seed             int64
	WorkerIndex      int
}

// EvaluateCandidate floorplans the seed partition, refines it against the
// floorplanner's feedback, re-floorplans the refined result, and scores
// the outcome through the cost oracle. techPerPart must have one entry
// per partition in seed. Exported so the genetic tech optimizer can reuse
// the driver's single-candidate evaluation as its fitness function.
func EvaluateCandidate(h *hypergraph.Hypergraph, seed refine.PartitionState, techPerPart []string, cfg TrialConfig) Candidate {
	return runTrial(h, seed, techPerPart, cfg)
}

func runTrial(h *hypergraph.Hypergraph, seed refine.PartitionState, techPerPart []string, cfg TrialConfig) Candidate {
	cand := Candidate{State: seed, TechPerPart: techPerPart, WorkerIndex: cfg.WorkerIndex, Cost: math.Inf(1)}

	fpResult, fpErr := floorplan.RunPool(buildFloorplanInstance(h, seed), cfg.FloorplanParams, cfg.Seed, cfg.FloorplanWorkers)
	if fpErr != nil && !fpResult.Feasible {
		cand.Floorplan = fpResult
		return cand
	}

	coords := coordsFromResult(fpResult)
	runner := func(s refine.PartitionState) (refine.Coordinates, bool) {
		inst := buildFloorplanInstance(h, s)
		r, err := floorplan.RunPool(inst, cfg.FloorplanParams, cfg.Seed, cfg.FloorplanWorkers)
		return coordsFromResult(r), err == nil && r.Feasible
	}

	refiner := &refine.Refiner{H: h, Cfg: cfg.RefineCfg, Floorplan: runner}
	refined, err := refiner.Run(seed, coords)
	if err != nil {
		cand.Floorplan = fpResult
		return cand
	}

	finalInst := buildFloorplanInstance(h, refined.State)
	finalFP, err := floorplan.RunPool(finalInst, cfg.FloorplanParams, cfg.Seed, cfg.FloorplanWorkers)
	cand.State = refined.State
	cand.Floorplan = finalFP
	if err != nil || !finalFP.Feasible {
		return cand
	}

	tree, err := buildChipTree(h, cfg.Catalog, refined.State, techPerPart, finalFP, 0, 0)
	if err != nil {
		return cand
	}
	cost, valid, err := cfg.Oracle.Evaluate(tree, cfg.EvalParams)
	if err != nil {
		return cand
	}
	cand.Cost = cost
	cand.Valid = valid
	return cand
}

func coordsFromResult(r floorplan.Result) refine.Coordinates {
	if !r.Feasible {
		return nil
	}
	coords := make(refine.Coordinates, len(r.X))
	for i := range r.X {
		coords[i] = [2]float64{r.X[i], r.Y[i]}
	}
	return coords
}

// randomTechAssignment picks one tech name per partition uniformly at
// random from the available list.
func randomTechAssignment(k int, techs []string, rng *rand.Rand) []string {
	out := make([]string, k)
	for i := range out {
		out[i] = techs[rng.Intn(len(techs))]
	}
	return out
}
