package gatech

import (
	"math"
	"math/rand"

	"github.com/chipletpart/chipletpart/hypergraph"
	"github.com/chipletpart/chipletpart/partition"
	"github.com/chipletpart/chipletpart/refine"
)

// Individual is one point in the joint (k, partition, tech) search space,
// plus its cached fitness.
type Individual struct {
	State refine.PartitionState
	Tech  []string

	Cost  float64
	Valid bool
}

// balancedPartition assigns vertices to partitions round-robin by index,
// giving every partition close to V/k vertices regardless of hypergraph
// structure — the cheap, structure-blind counterpart to the METIS-like and
// spectral seeds.
func balancedPartition(h *hypergraph.Hypergraph, k int) refine.PartitionState {
	n := h.NumBlocks()
	part := make([]int, n)
	for v := 0; v < n; v++ {
		part[v] = v % k
	}
	return refine.PartitionState{Part: part, K: k}
}

// randomTech picks one technology name per partition uniformly at random.
func randomTech(k int, techs []string, rng *rand.Rand) []string {
	out := make([]string, k)
	for p := range out {
		out[p] = techs[rng.Intn(len(techs))]
	}
	return out
}

// seedPopulation builds the initial generation: for every k in
// [minK,maxK] it contributes a balanced, a METIS-like, a spectral, and
// several random partitions, each given a random technology assignment.
// Seeding methods that error on a given k (e.g. spectral on a
// near-singular Laplacian) are skipped rather than retried.
func seedPopulation(h *hypergraph.Hypergraph, minK, maxK, size int, techs []string, rng *rand.Rand) []Individual {
	var pop []Individual
	for k := minK; k <= maxK && len(pop) < size; k++ {
		candidates := []refine.PartitionState{balancedPartition(h, k)}
		if s, err := partition.MetisSeed(h, k); err == nil {
			candidates = append(candidates, s)
		}
		if s, err := partition.SpectralSeed(h, k, rng.Int63()); err == nil {
			candidates = append(candidates, s)
		}
		candidates = append(candidates, partition.RandomSeed(h, k, rng), partition.RandomSeed(h, k, rng))

		for _, s := range candidates {
			pop = append(pop, Individual{State: s, Tech: randomTech(k, techs, rng), Cost: math.Inf(1)})
		}
	}
	// Pad or trim to the requested population size with extra random
	// individuals spread across the k range.
	for len(pop) < size {
		k := minK + rng.Intn(maxK-minK+1)
		s := partition.RandomSeed(h, k, rng)
		pop = append(pop, Individual{State: s, Tech: randomTech(k, techs, rng), Cost: math.Inf(1)})
	}
	if len(pop) > size {
		pop = pop[:size]
	}
	return pop
}
