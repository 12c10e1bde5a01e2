package floorplan

import (
	"math"
	"math/rand"
)

// Params configures one annealing run.
type Params struct {
	InitialTemp   float64
	CoolingRate   float64 // geometric cooling factor, default 0.95
	MaxSteps      int
	TempFloor     float64
	Weights       ObjectiveWeights
}

// DefaultParams returns reasonable defaults (geometric cooling at 0.95).
func DefaultParams() Params {
	return Params{
		InitialTemp: 100,
		CoolingRate: 0.95,
		MaxSteps:    2000,
		TempFloor:   1e-3,
		Weights:     DefaultWeights(),
	}
}

// engine holds one annealing run's mutable search state in a dedicated
// struct: explicit RNG, current and best-incumbent state, and a bounded
// step budget, rather than anonymous closures over shared state.
type engine struct {
	inst   *Instance
	params Params
	rng    *rand.Rand

	current  SequencePair
	currObj  float64
	currFeas bool

	best     SequencePair
	bestObj  float64
	bestFeas bool
}

func newEngine(inst *Instance, params Params, rng *rand.Rand) *engine {
	n := len(inst.Chiplets)
	plus := identityPerm(n)
	minus := identityPerm(n)
	aspect := make([]int, n)
	sp := SequencePair{Plus: plus, Minus: minus, AspectIdx: aspect}

	e := &engine{inst: inst, params: params, rng: rng}
	e.current = sp
	e.currObj, e.currFeas = e.score(sp)
	e.best = sp.Clone()
	e.bestObj, e.bestFeas = e.currObj, e.currFeas
	return e
}

func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func (e *engine) score(sp SequencePair) (float64, bool) {
	pl := decode(e.inst, sp)
	return evaluate(e.inst, pl, e.params.Weights)
}

// moveKind enumerates the four move types the search can propose.
type moveKind int

const (
	moveSwapPlus moveKind = iota
	moveSwapMinus
	moveSwapBoth
	movePerturbAspect
)

// propose returns a candidate neighbor of sp via a random move.
func (e *engine) propose(sp SequencePair) SequencePair {
	n := len(e.inst.Chiplets)
	cand := sp.Clone()
	if n < 2 {
		return cand
	}
	switch moveKind(e.rng.Intn(4)) {
	case moveSwapPlus:
		i, j := e.rng.Intn(n), e.rng.Intn(n)
		cand.Plus[i], cand.Plus[j] = cand.Plus[j], cand.Plus[i]
	case moveSwapMinus:
		i, j := e.rng.Intn(n), e.rng.Intn(n)
		cand.Minus[i], cand.Minus[j] = cand.Minus[j], cand.Minus[i]
	case moveSwapBoth:
		i, j := e.rng.Intn(n), e.rng.Intn(n)
		cand.Plus[i], cand.Plus[j] = cand.Plus[j], cand.Plus[i]
		cand.Minus[i], cand.Minus[j] = cand.Minus[j], cand.Minus[i]
	case movePerturbAspect:
		idx := e.rng.Intn(n)
		choices := len(e.inst.Chiplets[idx].AspectRatios)
		if choices > 1 {
			cand.AspectIdx[idx] = e.rng.Intn(choices)
		}
	}
	return cand
}

// run executes the Metropolis annealing loop: geometric cooling, fixed
// step budget or temperature floor termination.
func (e *engine) run() {
	temp := e.params.InitialTemp
	for step := 0; step < e.params.MaxSteps && temp > e.params.TempFloor; step++ {
		cand := e.propose(e.current)
		candObj, candFeas := e.score(cand)

		if e.accept(e.currObj, candObj, temp) {
			e.current = cand
			e.currObj = candObj
			e.currFeas = candFeas

			if betterThanBest(candObj, candFeas, e.bestObj, e.bestFeas) {
				e.best = cand.Clone()
				e.bestObj = candObj
				e.bestFeas = candFeas
			}
		}

		temp *= e.params.CoolingRate
	}
}

// accept implements standard Metropolis acceptance: always accept
// improving moves, accept worsening moves with probability
// exp(-delta/temp).
func (e *engine) accept(currObj, candObj, temp float64) bool {
	if candObj <= currObj {
		return true
	}
	if temp <= 0 {
		return false
	}
	p := math.Exp(-(candObj - currObj) / temp)
	return e.rng.Float64() < p
}

// betterThanBest prefers feasible solutions over infeasible ones
// regardless of objective, and lower objective among equally-feasible
// candidates.
func betterThanBest(obj float64, feas bool, bestObj float64, bestFeas bool) bool {
	if feas != bestFeas {
		return feas
	}
	return obj < bestObj
}

// Anneal runs one simulated-annealing search and returns the best
// solution found.
func Anneal(inst *Instance, params Params, rng *rand.Rand) (Result, error) {
	if len(inst.Chiplets) == 0 {
		return Result{}, ErrEmptyInstance
	}
	e := newEngine(inst, params, rng)
	e.run()
	return toResult(inst, e.best, e.bestObj, e.bestFeas, 0), nil
}

func toResult(inst *Instance, sp SequencePair, objective float64, feasible bool, workerIdx int) Result {
	pl := decode(inst, sp)
	n := len(pl)
	res := Result{
		AspectRatios: make([]float64, n),
		X:            make([]float64, n),
		Y:            make([]float64, n),
		W:            make([]float64, n),
		H:            make([]float64, n),
		Feasible:     feasible,
		Objective:    objective,
		WorkerIndex:  workerIdx,
	}
	for i, p := range pl {
		res.AspectRatios[i] = inst.Chiplets[i].AspectRatios[sp.AspectIdx[i]]
		res.X[i], res.Y[i], res.W[i], res.H[i] = p.X, p.Y, p.W, p.H
	}
	return res
}
