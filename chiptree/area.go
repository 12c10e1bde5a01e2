package chiptree

import "math"

// childRectMM returns the (x0,y0,x1,y1) bounding rectangle of a placed
// child chip, derived from its CoreAreaMM2 / AspectRatio / X / Y.
func childRectMM(c *Chip) (x0, y0, x1, y1 float64) {
	w := math.Sqrt(c.CoreAreaMM2 * c.AspectRatio)
	h := math.Sqrt(c.CoreAreaMM2 / c.AspectRatio)
	return c.X, c.Y, c.X + w, c.Y + h
}

// ioCellAreaMM2 sums the IO-cell footprint contributed by a chip's nets:
// (outgoing + incoming) instances of wire_count pads at rx+tx area each.
func ioCellAreaMM2(c *Chip) float64 {
	var total float64
	for _, n := range c.Nets {
		conns := float64(n.Outgoing + n.Incoming)
		total += conns * float64(n.IO.WireCount) * n.IO.AreaPerPad()
	}
	return total
}

// stackedBoundingAreaMM2 computes the union of all children's rectangles,
// each expanded by die_separation/2, then the union itself expanded by
// edge_exclusion on every side.
func stackedBoundingAreaMM2(t *Tree, c *Chip, dieSeparationMM, edgeExclusionMM float64) float64 {
	if len(c.Children) == 0 {
		return 0
	}
	half := dieSeparationMM / 2
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, ci := range c.Children {
		child, _ := t.Chip(ci)
		x0, y0, x1, y1 := childRectMM(child)
		x0, y0 = x0-half, y0-half
		x1, y1 = x1+half, y1+half
		minX, minY = math.Min(minX, x0), math.Min(minY, y0)
		maxX, maxY = math.Max(maxX, x1), math.Max(maxY, y1)
	}
	w := (maxX - minX) + 2*edgeExclusionMM
	h := (maxY - minY) + 2*edgeExclusionMM
	return w * h
}

// computeArea computes chip area as the max of (core+IO area),
// (pad-grid area), (stacked-die bounding area), overridden by BBArea.
func computeArea(t *Tree, c *Chip, dieSeparationMM, pitchMM, aspect float64, powerPads int) (float64, error) {
	if bb, ok := c.BBArea.Get(); ok {
		return bb, nil
	}

	coreIO := c.CoreAreaMM2 + ioCellAreaMM2(c)

	padGrid, err := sizePadGrid(c, dieSeparationMM, pitchMM, aspect, powerPads)
	if err != nil {
		return 0, err
	}

	edgeExclusion := 0.0
	if c.Assembly != nil {
		edgeExclusion = c.Assembly.EdgeExclusionMM
	}
	stacked := stackedBoundingAreaMM2(t, c, dieSeparationMM, edgeExclusion)

	return math.Max(coreIO, math.Max(padGrid.areaMM2, stacked)), nil
}
