package gatech

import (
	"sort"
	"strconv"
	"strings"
)

// canonicalOrder resolves the Open Question of what "canonical" means for
// an individual: the lexicographically-least part[] array consistent with
// a fixed tech[] tuple ordering. Partitions are renumbered in order of
// first appearance after sorting by (tech[p], min vertex id assigned to
// p); two individuals that differ only by a relabeling of partition IDs
// collapse to the same canonical form.
func canonicalOrder(part []int, tech []string) (newPart []int, newTech []string) {
	k := len(tech)
	minVertex := make([]int, k)
	for p := range minVertex {
		minVertex[p] = len(part)
	}
	for v, p := range part {
		if v < minVertex[p] {
			minVertex[p] = v
		}
	}

	order := make([]int, k)
	for p := range order {
		order[p] = p
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if tech[a] != tech[b] {
			return tech[a] < tech[b]
		}
		return minVertex[a] < minVertex[b]
	})

	newID := make([]int, k)
	newTech = make([]string, k)
	for rank, oldP := range order {
		newID[oldP] = rank
		newTech[rank] = tech[oldP]
	}

	newPart = make([]int, len(part))
	for v, p := range part {
		newPart[v] = newID[p]
	}
	return newPart, newTech
}

// Canonicalize returns a copy of ind with its partition IDs and technology
// tuple renumbered into canonical form.
func Canonicalize(ind Individual) Individual {
	part, tech := canonicalOrder(ind.State.Part, ind.Tech)
	out := ind
	out.State = ind.State.Clone()
	out.State.Part = part
	out.Tech = tech
	return out
}

// canonicalKey produces the fitness-memoization key: the canonical tech
// tuple joined with the canonical partition array.
func canonicalKey(ind Individual) string {
	part, tech := canonicalOrder(ind.State.Part, ind.Tech)
	var b strings.Builder
	b.WriteString(strings.Join(tech, ","))
	b.WriteByte('|')
	for i, p := range part {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}
