package partition

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/chipletpart/chipletpart/chiptree"
	"github.com/chipletpart/chipletpart/floorplan"
	"github.com/chipletpart/chipletpart/hypergraph"
	"github.com/chipletpart/chipletpart/refine"
	"github.com/chipletpart/chipletpart/techlib"
)

// Options configures one partition-driver run.
type Options struct {
	MinParts  int
	MaxParts  int
	Tech      string // single technology node used for every partition
	Seed      int64
	Workers   int // trials run concurrently per k
	TopN      int // candidates retained in Report.RunnersUp

	EvalParams      chiptree.EvalParams
	FloorplanParams floorplan.Params
	RefineCfg       refine.Config
}

// Report is the outcome of a full k-sweep: the single best feasible
// candidate plus the next-best runners-up, for display or diagnosis.
type Report struct {
	Best      Candidate
	RunnersUp []Candidate
}

// Run sweeps k from opts.MinParts to opts.MaxParts, seeding METIS-like,
// spectral, and random trials at each k, refining and scoring every
// trial in parallel, and reducing to the best feasible result across the
// whole sweep.
func Run(h *hypergraph.Hypergraph, catalog techlib.Catalog, opts Options) (Report, error) {
	if h.NumBlocks() == 0 {
		return Report{}, ErrEmptyHypergraph
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	var all []Candidate
	var mu sync.Mutex
	oracle := chiptree.NewOracle()

	for k := opts.MinParts; k <= opts.MaxParts; k++ {
		seeds := seedsForK(h, k, opts.Seed)
		var wg sync.WaitGroup
		sem := make(chan struct{}, opts.Workers)
		for i, seed := range seeds {
			wg.Add(1)
			sem <- struct{}{}
			go func(workerIdx int, s refine.PartitionState) {
				defer wg.Done()
				defer func() { <-sem }()
				techPerPart := make([]string, s.K)
				for p := range techPerPart {
					techPerPart[p] = opts.Tech
				}
				cfg := TrialConfig{
					Catalog:          catalog,
					Oracle:           oracle,
					EvalParams:       opts.EvalParams,
					FloorplanParams:  opts.FloorplanParams,
					FloorplanWorkers: opts.Workers,
					RefineCfg:        opts.RefineCfg,
					Seed:             opts.Seed + int64(workerIdx),
					WorkerIndex:      workerIdx,
				}
				cand := runTrial(h, s, techPerPart, cfg)
				mu.Lock()
				all = append(all, cand)
				mu.Unlock()
			}(i, seed)
		}
		wg.Wait()
	}

	sort.SliceStable(all, func(i, j int) bool {
		return betterCandidate(all[i], all[j])
	})

	if len(all) == 0 || !all[0].Valid {
		if len(all) > 0 {
			return Report{Best: all[0]}, ErrNoFeasibleSolution
		}
		return Report{}, ErrNoFeasibleSolution
	}

	topN := opts.TopN
	if topN <= 0 {
		topN = 5
	}
	runnersUp := all[1:]
	if len(runnersUp) > topN {
		runnersUp = runnersUp[:topN]
	}
	return Report{Best: all[0], RunnersUp: runnersUp}, nil
}


// betterCandidate orders feasible-and-valid candidates by ascending
// cost, placing any infeasible/invalid candidate after every valid one.
func betterCandidate(a, b Candidate) bool {
	if a.Valid != b.Valid {
		return a.Valid
	}
	return a.Cost < b.Cost
}

// seedsForK produces one METIS-like, one spectral, and several random
// seeds for a given k, skipping any seeding method that errors.
func seedsForK(h *hypergraph.Hypergraph, k int, seed int64) []refine.PartitionState {
	var seeds []refine.PartitionState
	if s, err := MetisSeed(h, k); err == nil {
		seeds = append(seeds, s)
	}
	if s, err := SpectralSeed(h, k, seed+int64(k)); err == nil {
		seeds = append(seeds, s)
	}
	const randomSeedCount = 3
	for i := 0; i < randomSeedCount; i++ {
		rng := rand.New(rand.NewSource(seed + int64(k*1000+i)))
		seeds = append(seeds, RandomSeed(h, k, rng))
	}
	return seeds
}
