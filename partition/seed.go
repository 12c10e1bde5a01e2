package partition

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/chipletpart/chipletpart/hypergraph"
	"github.com/chipletpart/chipletpart/refine"
)

// unionFind is a disjoint-set over block indices with path compression
// and union by size, used by the heavy-edge coarsening seed.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	return &unionFind{parent: parent, size: size}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.size[ra] < u.size[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	u.size[ra] += u.size[rb]
}

type weightedPair struct {
	a, b   int
	weight float64
}

// cliqueWeights expands every hyperedge into a weighted clique over its
// incident blocks, each pair contributing net.Bandwidth / (degree-1), and
// aggregates duplicate pairs across nets.
func cliqueWeights(h *hypergraph.Hypergraph) []weightedPair {
	acc := make(map[[2]int]float64)
	for eid := 0; eid < h.NumNets(); eid++ {
		blocks, err := h.NetBlocks(eid)
		if err != nil || len(blocks) < 2 {
			continue
		}
		net, err := h.Net(eid)
		if err != nil {
			continue
		}
		w := net.Bandwidth
		if w == 0 {
			w = 1
		}
		share := w / float64(len(blocks)-1)
		for i := 0; i < len(blocks); i++ {
			for j := i + 1; j < len(blocks); j++ {
				a, b := blocks[i], blocks[j]
				if a > b {
					a, b = b, a
				}
				acc[[2]int{a, b}] += share
			}
		}
	}
	pairs := make([]weightedPair, 0, len(acc))
	for k, w := range acc {
		pairs = append(pairs, weightedPair{a: k[0], b: k[1], weight: w})
	}
	return pairs
}

// MetisSeed produces a k-way partition via heavy-edge-matching
// coarsening: pairs of blocks are greedily merged in descending edge-
// weight order (a from-scratch multilevel heuristic; no binding to the
// real METIS library exists, nor is one retrievable for this stack), then
// the resulting coarse groups are split or merged down to exactly k
// partitions.
func MetisSeed(h *hypergraph.Hypergraph, k int) (refine.PartitionState, error) {
	n := h.NumBlocks()
	if n == 0 {
		return refine.PartitionState{}, ErrEmptyHypergraph
	}
	if k < 1 {
		k = 1
	}

	pairs := cliqueWeights(h)
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].weight > pairs[j].weight })

	uf := newUnionFind(n)
	targetGroups := k
	if targetGroups < 1 {
		targetGroups = 1
	}
	groups := n
	for _, p := range pairs {
		if groups <= targetGroups {
			break
		}
		ra, rb := uf.find(p.a), uf.find(p.b)
		if ra == rb {
			continue
		}
		uf.union(p.a, p.b)
		groups--
	}

	return groupsToPartition(uf, n, k), nil
}

// groupsToPartition renumbers union-find components to dense partition
// IDs, then merges the smallest groups together (if there are more than
// k) or splits the largest groups in half (if there are fewer than k)
// until exactly k partitions remain.
func groupsToPartition(uf *unionFind, n, k int) refine.PartitionState {
	members := make(map[int][]int)
	for v := 0; v < n; v++ {
		r := uf.find(v)
		members[r] = append(members[r], v)
	}
	groupIDs := make([]int, 0, len(members))
	for r := range members {
		groupIDs = append(groupIDs, r)
	}
	sort.Slice(groupIDs, func(i, j int) bool { return len(members[groupIDs[i]]) > len(members[groupIDs[j]]) })

	for len(groupIDs) > k {
		last := groupIDs[len(groupIDs)-1]
		prev := groupIDs[len(groupIDs)-2]
		members[prev] = append(members[prev], members[last]...)
		delete(members, last)
		groupIDs = groupIDs[:len(groupIDs)-1]
	}
	for len(groupIDs) < k && len(groupIDs) > 0 {
		sort.Slice(groupIDs, func(i, j int) bool { return len(members[groupIDs[i]]) > len(members[groupIDs[j]]) })
		biggest := groupIDs[0]
		verts := members[biggest]
		if len(verts) < 2 {
			break
		}
		half := len(verts) / 2
		newID := -1 - len(groupIDs) // guaranteed not to collide with any find() root
		members[biggest] = verts[:half]
		members[newID] = verts[half:]
		groupIDs = append(groupIDs, newID)
	}

	part := make([]int, n)
	sort.Ints(groupIDs)
	for id, r := range groupIDs {
		for _, v := range members[r] {
			part[v] = id
		}
	}
	return refine.PartitionState{Part: part, K: len(groupIDs)}
}

// RandomSeed assigns every block to a uniformly random partition in
// [0,k), then repairs to guarantee every partition ID is used (borrowing
// one vertex from the largest partition for any empty one).
func RandomSeed(h *hypergraph.Hypergraph, k int, rng *rand.Rand) refine.PartitionState {
	n := h.NumBlocks()
	part := make([]int, n)
	for v := range part {
		part[v] = rng.Intn(k)
	}
	return repairDense(part, k)
}

func repairDense(part []int, k int) refine.PartitionState {
	counts := make([]int, k)
	for _, p := range part {
		counts[p]++
	}
	for id := 0; id < k; id++ {
		if counts[id] > 0 {
			continue
		}
		// Steal one vertex from the largest partition.
		biggest := 0
		for i := 1; i < k; i++ {
			if counts[i] > counts[biggest] {
				biggest = i
			}
		}
		for v := range part {
			if part[v] == biggest {
				part[v] = id
				counts[biggest]--
				counts[id]++
				break
			}
		}
	}
	return refine.PartitionState{Part: part, K: k}
}

// SpectralSeed embeds the blocks using the graph Laplacian's first k-1
// non-trivial eigenvectors (the Fiedler vector, for the second-smallest
// eigenvalue, first) and runs a simple k-means over those coordinates,
// producing k clusters directly rather than via repeated bisection. seed drives both the eigen-solver
// fallback's random partition and the k-means initialization, so the same
// seed reproduces the same result.
func SpectralSeed(h *hypergraph.Hypergraph, k int, seed int64) (refine.PartitionState, error) {
	n := h.NumBlocks()
	if n == 0 {
		return refine.PartitionState{}, ErrEmptyHypergraph
	}
	if k < 1 {
		k = 1
	}
	if k == 1 || n <= 2 {
		part := make([]int, n)
		return refine.PartitionState{Part: part, K: 1}, nil
	}

	pairs := cliqueWeights(h)
	lap := mat.NewSymDense(n, nil)
	deg := make([]float64, n)
	for _, p := range pairs {
		lap.SetSym(p.a, p.b, -p.weight)
		deg[p.a] += p.weight
		deg[p.b] += p.weight
	}
	for v := 0; v < n; v++ {
		lap.SetSym(v, v, deg[v])
	}

	var eig mat.EigenSym
	ok := eig.Factorize(lap, true)
	if !ok {
		return RandomSeed(h, k, rand.New(rand.NewSource(seed))), nil
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Eigenvalues come back ascending; column 0 is the trivial all-ones
	// (or near-constant) eigenvector for the zero eigenvalue. Use the next
	// few columns (up to k-1) as embedding coordinates for k-means.
	dims := k - 1
	if dims > n-1 {
		dims = n - 1
	}
	if dims < 1 {
		dims = 1
	}
	points := make([][]float64, n)
	for v := 0; v < n; v++ {
		pt := make([]float64, dims)
		for d := 0; d < dims; d++ {
			pt[d] = vecs.At(v, d+1)
		}
		points[v] = pt
	}

	assignment := kMeans(points, k, rand.New(rand.NewSource(seed)))
	return repairDense(assignment, k), nil
}

// kMeans runs a fixed number of Lloyd's-algorithm iterations over points
// in dims-dimensional space, returning a cluster assignment in [0,k).
func kMeans(points [][]float64, k int, rng *rand.Rand) []int {
	n := len(points)
	dims := 0
	if n > 0 {
		dims = len(points[0])
	}
	centers := make([][]float64, k)
	perm := rng.Perm(n)
	for i := 0; i < k; i++ {
		centers[i] = append([]float64(nil), points[perm[i%n]]...)
	}

	assignment := make([]int, n)
	const iterations = 20
	for iter := 0; iter < iterations; iter++ {
		for v, pt := range points {
			best, bestDist := 0, sqDist(pt, centers[0])
			for c := 1; c < k; c++ {
				d := sqDist(pt, centers[c])
				if d < bestDist {
					best, bestDist = c, d
				}
			}
			assignment[v] = best
		}
		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for v, pt := range points {
			c := assignment[v]
			counts[c]++
			for d := range pt {
				sums[c][d] += pt[d]
			}
		}
		for c := range centers {
			if counts[c] == 0 {
				continue
			}
			for d := 0; d < dims; d++ {
				centers[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}
	return assignment
}

func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}
