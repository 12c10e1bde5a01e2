package chiptree

import (
	"math"
	"sort"
)

// reachBucket accumulates the signal-pad count for all nets sharing a
// given (reach - die_separation) budget.
type reachBucket struct {
	reachMM float64 // reach already net of die_separation
	pads    int
}

// padGridDims is the final (grid_x, grid_y) pad-grid sizing in bonding-
// pitch units, plus the resulting area in mm².
type padGridDims struct {
	gridX, gridY int
	areaMM2      float64
}

// signalPadBuckets groups a chip's nets by net reach (minus die
// separation), each bucket's pad count being its nets' wire counts times
// their outgoing+incoming connection counts.
func signalPadBuckets(c *Chip, dieSeparationMM float64) ([]reachBucket, error) {
	byReach := make(map[float64]int)
	for _, n := range c.Nets {
		r := n.ReachMM - dieSeparationMM
		if r < 0 {
			return nil, ErrReachInfeasible
		}
		wires := n.IO.WireCount
		byReach[r] += wires * (n.Outgoing + n.Incoming)
	}
	buckets := make([]reachBucket, 0, len(byReach))
	for r, pads := range byReach {
		buckets = append(buckets, reachBucket{reachMM: r, pads: pads})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].reachMM < buckets[j].reachMM })
	return buckets, nil
}

// rectForCount returns the smallest (width, height) in mm, at aspect ratio
// aspect = width/height, that can host padCount pads of footprint
// pitch² mm² each, subject to every point of the rectangle lying within
// reachMM of some edge (i.e. min(width,height)/2 <= reachMM). Dimensions
// are then rounded up to whole bonding-pitch units.
func rectForCount(padCount int, pitchMM, aspect, reachMM float64) (gx, gy int) {
	if padCount <= 0 {
		return 0, 0
	}
	area := float64(padCount) * pitchMM * pitchMM
	w := math.Sqrt(area * aspect)
	h := math.Sqrt(area / aspect)

	if short := math.Min(w, h); short > 2*reachMM && reachMM > 0 {
		// Enlarge along whichever dimension violates the reach
		// constraint: clamp the short side to 2*reach and grow the long
		// side until area is restored.
		if w < h {
			w = 2 * reachMM
			h = area / w
		} else {
			h = 2 * reachMM
			w = area / h
		}
	}

	gx = int(math.Ceil(w / pitchMM))
	gy = int(math.Ceil(h / pitchMM))
	if gx < 1 {
		gx = 1
	}
	if gy < 1 {
		gy = 1
	}
	return gx, gy
}

// sizePadGrid sizes the pad grid: buckets are
// processed in ascending reach order, pad counts accumulate across
// buckets, and the final grid must satisfy every bucket's (looser-as-
// reach-grows) constraint simultaneously — taken as the componentwise max
// of each bucket's candidate rectangle.
func sizePadGrid(c *Chip, dieSeparationMM, pitchMM, aspect float64, powerPads int) (padGridDims, error) {
	buckets, err := signalPadBuckets(c, dieSeparationMM)
	if err != nil {
		return padGridDims{}, err
	}

	accumulated := 0
	var maxGX, maxGY int
	for _, b := range buckets {
		accumulated += b.pads
		gx, gy := rectForCount(accumulated, pitchMM, aspect, b.reachMM)
		if gx > maxGX {
			maxGX = gx
		}
		if gy > maxGY {
			maxGY = gy
		}
	}

	totalPads := accumulated + powerPads + c.TestPadCount
	if totalPads > accumulated {
		gx, gy := rectForCount(totalPads, pitchMM, aspect, math.Inf(1))
		if gx > maxGX {
			maxGX = gx
		}
		if gy > maxGY {
			maxGY = gy
		}
	}

	return padGridDims{
		gridX:   maxGX,
		gridY:   maxGY,
		areaMM2: float64(maxGX) * float64(maxGY) * pitchMM * pitchMM,
	}, nil
}
