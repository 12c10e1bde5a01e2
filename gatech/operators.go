package gatech

import (
	"math/rand"

	"github.com/chipletpart/chipletpart/refine"
)

// tournamentSelect runs a 3-way tournament and returns the fittest of
// three individuals drawn uniformly at random from pop.
func tournamentSelect(pop []Individual, rng *rand.Rand) Individual {
	const tournamentSize = 3
	best := pop[rng.Intn(len(pop))]
	for i := 1; i < tournamentSize; i++ {
		cand := pop[rng.Intn(len(pop))]
		if fitter(cand, best) {
			best = cand
		}
	}
	return best
}

// fitter reports whether a should be preferred over b: valid beats
// invalid, then lower cost wins.
func fitter(a, b Individual) bool {
	if a.Valid != b.Valid {
		return a.Valid
	}
	return a.Cost < b.Cost
}

// crossover picks one of the three operators described for this search
// (partition one-point, uniform tech, or k/tech hybrid) uniformly at
// random and applies it to parents a and b.
func crossover(a, b Individual, rng *rand.Rand) Individual {
	switch rng.Intn(3) {
	case 0:
		return onePointPartitionCrossover(a, b, rng)
	case 1:
		return uniformTechCrossover(a, b, rng)
	default:
		return hybridCrossover(a, b, rng)
	}
}

// onePointPartitionCrossover splits the fitter parent's partition array at
// a random vertex index and splices in the other parent's assignment for
// the tail, inheriting technology entirely from the fitter parent. The
// child's k matches the fitter parent's k; spliced vertex IDs from the
// other parent's partition are taken modulo that k.
func onePointPartitionCrossover(a, b Individual, rng *rand.Rand) Individual {
	strong, weak := a, b
	if !fitter(a, b) {
		strong, weak = b, a
	}
	n := len(strong.State.Part)
	cut := rng.Intn(n + 1)
	part := make([]int, n)
	copy(part, strong.State.Part)
	for v := cut; v < n && v < len(weak.State.Part); v++ {
		part[v] = weak.State.Part[v] % strong.State.K
	}
	tech := append([]string(nil), strong.Tech...)
	return Individual{State: refine.PartitionState{Part: part, K: strong.State.K}, Tech: tech}
}

// uniformTechCrossover keeps the fitter parent's partition untouched and
// blends technology assignments by flipping an independent coin per
// partition between the two parents' tech tuples (padded/truncated to the
// fitter parent's k).
func uniformTechCrossover(a, b Individual, rng *rand.Rand) Individual {
	strong, weak := a, b
	if !fitter(a, b) {
		strong, weak = b, a
	}
	k := strong.State.K
	tech := make([]string, k)
	for p := 0; p < k; p++ {
		if p < len(weak.Tech) && rng.Intn(2) == 0 {
			tech[p] = weak.Tech[p]
		} else {
			tech[p] = strong.Tech[p]
		}
	}
	return Individual{State: strong.State.Clone(), Tech: tech}
}

// hybridCrossover picks k (and its partition) from one randomly chosen
// parent, then blends per-partition technology from both parents wherever
// their partition counts overlap.
func hybridCrossover(a, b Individual, rng *rand.Rand) Individual {
	base, other := a, b
	if rng.Intn(2) == 0 {
		base, other = b, a
	}
	k := base.State.K
	tech := make([]string, k)
	for p := 0; p < k; p++ {
		if p < len(other.Tech) && rng.Intn(2) == 0 {
			tech[p] = other.Tech[p]
		} else {
			tech[p] = base.Tech[p]
		}
	}
	return Individual{State: base.State.Clone(), Tech: tech}
}

// mutate picks one of the three mutation operators (vertex reassignment,
// tech re-roll, structural merge/split) uniformly at random and applies it
// in place on a copy of ind.
func mutate(ind Individual, minK, maxK int, techs []string, rng *rand.Rand) Individual {
	switch rng.Intn(3) {
	case 0:
		return mutateReassignVertices(ind, rng)
	case 1:
		return mutateRerollTech(ind, techs, rng)
	default:
		return mutateStructural(ind, minK, maxK, techs, rng)
	}
}

// mutateReassignVertices reassigns roughly 5% of vertices to a uniformly
// random partition.
func mutateReassignVertices(ind Individual, rng *rand.Rand) Individual {
	const fraction = 0.05
	out := Individual{State: ind.State.Clone(), Tech: append([]string(nil), ind.Tech...)}
	n := len(out.State.Part)
	count := int(float64(n)*fraction + 0.5)
	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		v := rng.Intn(n)
		out.State.Part[v] = rng.Intn(out.State.K)
	}
	return out
}

// mutateRerollTech re-rolls roughly one third of the per-partition
// technology assignments to a new random choice from techs.
func mutateRerollTech(ind Individual, techs []string, rng *rand.Rand) Individual {
	const fraction = 1.0 / 3.0
	out := Individual{State: ind.State.Clone(), Tech: append([]string(nil), ind.Tech...)}
	count := int(float64(len(out.Tech))*fraction + 0.5)
	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		p := rng.Intn(len(out.Tech))
		out.Tech[p] = techs[rng.Intn(len(techs))]
	}
	return out
}

// mutateStructural merges two random partitions (if k > minK) or splits
// one partition in half (if k < maxK), chosen with equal probability
// among the legal options.
func mutateStructural(ind Individual, minK, maxK int, techs []string, rng *rand.Rand) Individual {
	k := ind.State.K
	canMerge := k > minK
	canSplit := k < maxK
	if !canMerge && !canSplit {
		return Individual{State: ind.State.Clone(), Tech: append([]string(nil), ind.Tech...)}
	}
	doSplit := canSplit && (!canMerge || rng.Intn(2) == 0)
	if doSplit {
		return splitPartition(ind, rng)
	}
	return mergePartitions(ind, rng)
}

// mergePartitions folds a randomly chosen partition into another,
// renumbering IDs to stay dense, and drops the absorbed partition's
// technology entry.
func mergePartitions(ind Individual, rng *rand.Rand) Individual {
	k := ind.State.K
	a := rng.Intn(k)
	b := rng.Intn(k - 1)
	if b >= a {
		b++
	}
	part := append([]int(nil), ind.State.Part...)
	for v, p := range part {
		if p == a {
			part[v] = b
		}
	}
	remap := make(map[int]int)
	next := 0
	for p := 0; p < k; p++ {
		if p == a {
			continue
		}
		remap[p] = next
		next++
	}
	for v, p := range part {
		part[v] = remap[p]
	}
	tech := make([]string, 0, k-1)
	for p := 0; p < k; p++ {
		if p == a {
			continue
		}
		tech = append(tech, ind.Tech[p])
	}
	return Individual{State: refine.PartitionState{Part: part, K: k - 1}, Tech: tech}
}

// splitPartition picks a random partition with at least 2 vertices, moves
// roughly half of its vertices into a newly created partition, and gives
// the new partition either the parent's technology or, with equal
// probability, a random pick from the individual's own technology tuple.
// If no partition has 2 or more vertices, ind is returned unchanged.
func splitPartition(ind Individual, rng *rand.Rand) Individual {
	k := ind.State.K
	counts := make([]int, k)
	for _, p := range ind.State.Part {
		if p >= 0 && p < k {
			counts[p]++
		}
	}
	var splittable []int
	for p, c := range counts {
		if c >= 2 {
			splittable = append(splittable, p)
		}
	}
	if len(splittable) == 0 {
		return Individual{State: ind.State.Clone(), Tech: append([]string(nil), ind.Tech...)}
	}
	src := splittable[rng.Intn(len(splittable))]
	var members []int
	for v, p := range ind.State.Part {
		if p == src {
			members = append(members, v)
		}
	}
	rng.Shuffle(len(members), func(i, j int) { members[i], members[j] = members[j], members[i] })

	part := append([]int(nil), ind.State.Part...)
	newID := k
	for _, v := range members[:len(members)/2] {
		part[v] = newID
	}
	tech := append([]string(nil), ind.Tech...)
	newTech := tech[src]
	if rng.Intn(2) == 0 && len(tech) > 0 {
		newTech = tech[rng.Intn(len(tech))]
	}
	tech = append(tech, newTech)
	return Individual{State: refine.PartitionState{Part: part, K: k + 1}, Tech: tech}
}
