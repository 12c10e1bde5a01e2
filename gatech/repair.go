package gatech

import (
	"math/rand"

	"github.com/chipletpart/chipletpart/refine"
)

// repair renumbers ind's partition IDs to a dense, contiguous range,
// resizes its technology slice to match, and clamps k back into
// [minK,maxK] by merging or splitting partitions as needed. It reports
// false when no legal repair exists (fewer vertices than minK demands).
func repair(ind Individual, minK, maxK int, techs []string, rng *rand.Rand) (Individual, bool) {
	out := Individual{State: ind.State.Clone(), Tech: append([]string(nil), ind.Tech...)}

	if len(out.State.Part) < minK {
		return Individual{}, false
	}

	densify(&out)

	for out.State.K > maxK {
		out = mergePartitions(out, rand.New(rand.NewSource(rng.Int63())))
	}
	for out.State.K < minK {
		split := splitPartition(out, rand.New(rand.NewSource(rng.Int63())))
		if split.State.K == out.State.K {
			return Individual{}, false
		}
		out = split
	}

	densify(&out)
	for len(out.Tech) < out.State.K {
		out.Tech = append(out.Tech, techs[rng.Intn(len(techs))])
	}
	out.Tech = out.Tech[:out.State.K]

	if err := out.State.Validate(true); err != nil {
		return Individual{}, false
	}
	return out, true
}

// densify remaps ind's partition IDs onto a contiguous [0,k') range in
// order of first appearance, dropping any empty partitions, and trims its
// technology slice to match.
func densify(ind *Individual) {
	remap := make(map[int]int)
	next := 0
	part := ind.State.Part
	for _, p := range part {
		if _, ok := remap[p]; !ok {
			remap[p] = next
			next++
		}
	}
	newPart := make([]int, len(part))
	for v, p := range part {
		newPart[v] = remap[p]
	}
	newTech := make([]string, next)
	for oldP, newP := range remap {
		if oldP < len(ind.Tech) {
			newTech[newP] = ind.Tech[oldP]
		}
	}
	ind.State = refine.PartitionState{Part: newPart, K: next}
	ind.Tech = newTech
}
