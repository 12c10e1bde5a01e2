package floorplan

import "math"

// chipletDims resolves width/height for chiplet i under its currently
// chosen aspect ratio.
func chipletDims(inst *Instance, sp SequencePair, i int) (w, h float64) {
	spec := inst.Chiplets[i]
	ratio := spec.AspectRatios[sp.AspectIdx[i]]
	area := spec.MinAreaMM2
	return math.Sqrt(area * ratio), math.Sqrt(area / ratio)
}

// decode walks the horizontal and vertical constraint DAGs a sequence
// pair encodes and returns each chiplet's (w,h,x,y).
//
// If i precedes j in both Plus and Minus, i is west of j (horizontal
// edge i->j). If i precedes j in Plus but follows it in Minus, i is
// south of j (vertical edge i->j). Both edge sets are topologically
// ordered by ascending Plus-position, so one pass over
// Plus order computes longest-path x and y simultaneously — the same
// DFS/topological-longest-path idiom the same package
// uses for traversal.
func decode(inst *Instance, sp SequencePair) []Placement {
	n := len(inst.Chiplets)
	posPlus := make([]int, n)
	posMinus := make([]int, n)
	for pos, id := range sp.Plus {
		posPlus[id] = pos
	}
	for pos, id := range sp.Minus {
		posMinus[id] = pos
	}

	w := make([]float64, n)
	h := make([]float64, n)
	for i := 0; i < n; i++ {
		w[i], h[i] = chipletDims(inst, sp, i)
	}

	x := make([]float64, n)
	y := make([]float64, n)

	for _, j := range sp.Plus {
		for i := 0; i < n; i++ {
			if i == j {
				continue
			}
			if posPlus[i] >= posPlus[j] {
				continue
			}
			if posMinus[i] < posMinus[j] {
				// i west of j
				if cand := x[i] + w[i]; cand > x[j] {
					x[j] = cand
				}
			} else {
				// i south of j
				if cand := y[i] + h[i]; cand > y[j] {
					y[j] = cand
				}
			}
		}
	}

	out := make([]Placement, n)
	for i := 0; i < n; i++ {
		out[i] = Placement{W: w[i], H: h[i], X: x[i], Y: y[i]}
	}
	return out
}

// boundingBox returns the total (width, height) spanned by a decoded
// placement.
func boundingBox(pl []Placement) (w, h float64) {
	for _, p := range pl {
		if r := p.X + p.W; r > w {
			w = r
		}
		if t := p.Y + p.H; t > h {
			h = t
		}
	}
	return w, h
}
