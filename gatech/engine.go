package gatech

import (
	"math"
	"math/rand"
	"sync"

	"github.com/chipletpart/chipletpart/chiptree"
	"github.com/chipletpart/chipletpart/floorplan"
	"github.com/chipletpart/chipletpart/hypergraph"
	"github.com/chipletpart/chipletpart/partition"
	"github.com/chipletpart/chipletpart/refine"
	"github.com/chipletpart/chipletpart/techlib"
)

// Options configures one genetic tech-assignment run.
type Options struct {
	TechNodes []string
	MinParts  int
	MaxParts  int

	PopulationSize    int
	Generations       int
	MutationRate      float64 // default 0.2
	CrossoverRate     float64 // default 0.65
	MaxNoImprovement  int     // default 10
	Seed              int64
	Workers           int
	Canonical         bool // dedup symmetric individuals via explicit canonicalization

	Catalog         techlib.Catalog
	EvalParams      chiptree.EvalParams
	FloorplanParams floorplan.Params
	RefineCfg       refine.Config
}

func (o *Options) applyDefaults() {
	if o.MutationRate == 0 {
		o.MutationRate = 0.2
	}
	if o.CrossoverRate == 0 {
		o.CrossoverRate = 0.65
	}
	if o.MaxNoImprovement == 0 {
		o.MaxNoImprovement = 10
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.PopulationSize < 1 {
		o.PopulationSize = 20
	}
}

// Result is the outcome of a genetic run: the best individual found and
// the best-cost trace across generations, for convergence diagnosis.
type Result struct {
	Best  Individual
	Trace []float64
}

// engine carries the mutable state of one genetic run: the shared cost
// oracle and the fitness memoization table.
type engine struct {
	h      *hypergraph.Hypergraph
	opts   Options
	oracle *chiptree.Oracle
	memo   map[string]Individual
	memoMu sync.Mutex
}

// Run executes the population loop: seed, evaluate, then repeatedly
// select/crossover/mutate/repair/evaluate with elitism, stopping after
// Options.Generations or after MaxNoImprovement generations whose best
// cost changes by less than 0.1% relatively.
func Run(h *hypergraph.Hypergraph, opts Options) (Result, error) {
	if len(opts.TechNodes) == 0 {
		return Result{}, ErrNoTechNodes
	}
	opts.applyDefaults()

	e := &engine{h: h, opts: opts, oracle: chiptree.NewOracle(), memo: make(map[string]Individual)}
	rng := rand.New(rand.NewSource(opts.Seed))

	pop := seedPopulation(h, opts.MinParts, opts.MaxParts, opts.PopulationSize, opts.TechNodes, rng)
	pop = e.evaluateAll(pop)

	best := bestOf(pop)
	trace := []float64{best.Cost}
	noImprove := 0

	for gen := 1; gen < opts.Generations; gen++ {
		next := make([]Individual, 0, len(pop))
		next = append(next, best) // elitism: the incumbent always survives

		for len(next) < len(pop) {
			a := tournamentSelect(pop, rng)
			b := tournamentSelect(pop, rng)
			child := a
			if rng.Float64() < opts.CrossoverRate {
				child = crossover(a, b, rng)
			}
			if rng.Float64() < opts.MutationRate {
				child = mutate(child, opts.MinParts, opts.MaxParts, opts.TechNodes, rng)
			}
			repaired, ok := repair(child, opts.MinParts, opts.MaxParts, opts.TechNodes, rng)
			if !ok {
				continue
			}
			if opts.Canonical {
				repaired = Canonicalize(repaired)
			}
			next = append(next, repaired)
		}

		pop = e.evaluateAll(next)
		if len(pop) == 0 {
			return Result{}, ErrEmptyPopulation
		}

		genBest := bestOf(pop)
		improved := relativeImprovement(best.Cost, genBest.Cost) >= 0.001
		if genBest.Cost < best.Cost {
			best = genBest
		}
		trace = append(trace, best.Cost)

		if improved {
			noImprove = 0
		} else {
			noImprove++
			if noImprove >= opts.MaxNoImprovement {
				break
			}
		}
	}

	return Result{Best: best, Trace: trace}, nil
}

// relativeImprovement returns the fractional cost reduction from prev to
// cur, or 1 (a full improvement) if prev is non-positive or infinite.
func relativeImprovement(prev, cur float64) float64 {
	if math.IsInf(prev, 0) || prev <= 0 {
		return 1
	}
	if cur >= prev {
		return 0
	}
	return (prev - cur) / prev
}

// bestOf returns the fittest individual in pop; invalid individuals lose
// to any valid one regardless of cost.
func bestOf(pop []Individual) Individual {
	best := pop[0]
	for _, ind := range pop[1:] {
		if fitter(ind, best) {
			best = ind
		}
	}
	return best
}

// evaluateAll scores every individual in pop concurrently, reusing the
// memoization table for canonically-identical individuals already scored
// this run. Evaluations prepare inputs in parallel but serialize on the
// shared cost oracle internally.
func (e *engine) evaluateAll(pop []Individual) []Individual {
	out := make([]Individual, len(pop))
	var wg sync.WaitGroup
	sem := make(chan struct{}, e.opts.Workers)
	for i, ind := range pop {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, ind Individual) {
			defer wg.Done()
			defer func() { <-sem }()
			out[idx] = e.evaluateOne(ind, idx)
		}(i, ind)
	}
	wg.Wait()
	return out
}

// evaluateOne scores a single individual, consulting and updating the
// fitness memo keyed by canonical (partition, tech) form.
func (e *engine) evaluateOne(ind Individual, workerIdx int) Individual {
	key := canonicalKey(ind)

	e.memoMu.Lock()
	if cached, ok := e.memo[key]; ok {
		e.memoMu.Unlock()
		ind.Cost, ind.Valid = cached.Cost, cached.Valid
		return ind
	}
	e.memoMu.Unlock()

	cfg := partition.TrialConfig{
		Catalog:          e.opts.Catalog,
		Oracle:           e.oracle,
		EvalParams:       e.opts.EvalParams,
		FloorplanParams:  e.opts.FloorplanParams,
		FloorplanWorkers: 1,
		RefineCfg:        e.opts.RefineCfg,
		Seed:             e.opts.Seed + int64(workerIdx),
		WorkerIndex:      workerIdx,
	}
	cand := partition.EvaluateCandidate(e.h, ind.State, ind.Tech, cfg)
	ind.State = cand.State
	ind.Cost = cand.Cost
	ind.Valid = cand.Valid
	if !ind.Valid {
		ind.Cost = math.Inf(1)
	}

	e.memoMu.Lock()
	e.memo[key] = ind
	e.memoMu.Unlock()
	return ind
}
