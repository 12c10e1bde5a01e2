package refine

import "github.com/chipletpart/chipletpart/hypergraph"

// Refiner alternates FM and KL passes over a partition, re-running the
// floorplanner every FloorplanEveryNMoves moves (or once per pass, if
// zero) to refresh the coordinates the reach-aware gain function uses.
// It stops after MaxPasses passes or the first pass that makes no
// progress, whichever comes first.
type Refiner struct {
	H         *hypergraph.Hypergraph
	Cfg       Config
	Floorplan FloorplanRunner
	Observer  Observer
}

// Result summarizes one refinement run.
type Result struct {
	State     PartitionState
	Coords    Coordinates
	Feasible  bool
	TotalGain float64
	PassesRun int
}

// Run refines state in place (on a clone, which it returns) by
// alternating an FM pass and a KL pass per iteration until convergence
// or MaxPasses is reached.
func (r *Refiner) Run(initial PartitionState, initialCoords Coordinates) (Result, error) {
	state := initial.Clone()
	coords := initialCoords
	feasible := true
	var totalGain float64
	passes := 0

	for passes < r.Cfg.MaxPasses {
		fmGain, fmCoords, fmFeasible, err := FMPass(r.H, &state, r.Cfg, coords, r.Floorplan, r.Observer)
		if err != nil {
			return Result{}, err
		}
		coords, feasible = fmCoords, fmFeasible

		klGain, klCoords, klFeasible, err := KLPass(r.H, &state, r.Cfg, coords, r.Floorplan, r.Observer)
		if err != nil {
			return Result{}, err
		}
		coords, feasible = klCoords, klFeasible

		passes++
		totalGain += fmGain + klGain

		// FloorplanEveryNMoves == 0 means "once per pass": FMPass/KLPass
		// never refresh mid-pass in that case, so refresh here instead.
		if r.Cfg.FloorplanEveryNMoves == 0 && r.Floorplan != nil {
			newCoords, ok := r.Floorplan(state)
			coords = newCoords
			feasible = ok
		}

		if fmGain <= 0 && klGain <= 0 {
			break
		}
	}

	return Result{
		State:     state,
		Coords:    coords,
		Feasible:  feasible,
		TotalGain: totalGain,
		PassesRun: passes,
	}, nil
}
