package chiptree

import "math"

// nreCostPerMM2 pulls the six per-kind-per-side NRE cost-per-mm² constants
// from a chip's wafer process, blended by its memory/logic/analog split.
func nreCostPerMM2(c *Chip) float64 {
	if c.Wafer == nil {
		return 0
	}
	w := c.Wafer
	return c.MemoryFrac*(w.NREMemoryFrontMM2+w.NREMemoryBackMM2) +
		c.LogicFrac*(w.NRELogicFrontMM2+w.NRELogicBackMM2) +
		c.AnalogFrac*(w.NREAnalogFrontMM2+w.NREAnalogBackMM2)
}

// layerAwareCost sums cost-per-mm² x area over every active layer.
func layerAwareCost(c *Chip, areaMM2 float64) float64 {
	var total float64
	for i := range c.Layers {
		if c.Layers[i].Active {
			total += c.Layers[i].Cost(areaMM2)
		}
	}
	return total
}

// trueYield is the Π of active-layer yields at the given area.
func trueYield(c *Chip, areaMM2 float64) float64 {
	y := 1.0
	for i := range c.Layers {
		if c.Layers[i].Active {
			y *= c.Layers[i].Yield(areaMM2)
		}
	}
	return y
}

// countBonds estimates the total bond-pad count across a chip's children:
// each child contributes one bond per incident net plus one per test pad
// (power pads are not counted). Used only for the assembly-yield exponent.
func countBonds(t *Tree, c *Chip) int {
	total := 0
	for _, ci := range c.Children {
		child, _ := t.Chip(ci)
		total += len(child.Nets) + child.TestPadCount
	}
	return total
}

// Initialize runs the bottom-up pass over the whole tree rooted
// at t.Root(): area, power, yield/quality, cost, and NRE cost for every
// chip. dieSeparationMM/pitchMM/aspect/powerPads configure pad-grid
// sizing.
//
// Evaluation never returns an error for a locally ill-defined chip: an
// infeasible or NaN/Inf result, including reach infeasibility during
// pad-grid sizing, is
// represented as cost=+Inf, valid=false on that chip (and therefore on
// every ancestor, since total cost sums children). Errors are reserved
// for structural problems (an empty tree, or a chip missing its wafer,
// assembly, or test process).
func (t *Tree) Initialize(dieSeparationMM, pitchMM, aspect float64, powerPadsFn func(*Chip) int) error {
	if t.root < 0 {
		return ErrInvalidIndex
	}
	for _, idx := range t.postOrder(t.root) {
		c := t.nodes[idx]
		if c.Wafer == nil || c.Assembly == nil || c.Test == nil {
			return ErrMissingProcess
		}

		powerPads := 0
		if powerPadsFn != nil {
			powerPads = powerPadsFn(c)
		}

		area, err := computeArea(t, c, dieSeparationMM, pitchMM, aspect, powerPads)
		if err != nil {
			c.valid = false
			c.derived = derivedValues{TotalCost: math.Inf(1)}
			continue
		}
		c.derived.AreaMM2 = area
		c.derived.PowerW = computePower(t, c)

		ty := trueYield(c, area)
		selfTestYield := c.Test.SelfYield(ty)
		selfQuality := Quality(ty, selfTestYield)

		nChildren := len(c.Children)
		childQualityProduct := 1.0
		childCostSum := 0.0
		childrenValid := true
		for _, ci := range c.Children {
			child, _ := t.Chip(ci)
			if !child.valid {
				childrenValid = false
			}
			childQualityProduct *= child.derived.Quality
			childCostSum += child.derived.TotalCost
		}

		assembledYield := selfQuality * childQualityProduct
		assemblyCost := 0.0
		assemblyTestCost := 0.0
		assemblyTestYield := 1.0
		if nChildren > 0 {
			nBonds := countBonds(t, c)
			assemblyYield := c.Assembly.Yield(nChildren, nBonds, area)
			assembledYield *= assemblyYield * c.Wafer.ProcessYield

			assemblyCost = c.Assembly.MaterialsCostPerMM2*area +
				c.Assembly.PickAndPlaceCostPerSecond()*c.Assembly.PickAndPlaceTimeSec/float64(c.Assembly.PickAndPlaceGroupSize) +
				c.Assembly.BondingCostPerSecond()*c.Assembly.BondingTimeSec/float64(c.Assembly.BondingGroupSize)
			assemblyTestCost = c.Test.AssemblyTestCost()
			assemblyTestYield = c.Test.AssemblyTestYield(assembledYield)
		}

		selfCost := (layerAwareCost(c, area) + c.Test.SelfTestCost())
		// A zero true yield produces no good die, so the cost is +Inf.
		if selfTestYield > 0 && ty > 0 {
			selfCost /= selfTestYield
		} else {
			selfCost = math.Inf(1)
		}

		totalCost := selfCost + childCostSum + assemblyCost + assemblyTestCost
		if assemblyTestYield > 0 {
			totalCost /= assemblyTestYield
		} else {
			totalCost = math.Inf(1)
		}

		finalQuality := Quality(assembledYield, assemblyTestYield)
		if bb, ok := c.BBQuality.Get(); ok {
			finalQuality = bb
		}
		ownNRE := ownNRECost(c, area)
		if bb, ok := c.BBCost.Get(); ok {
			totalCost = bb
		} else {
			// childCostSum already folds in every descendant's own NRE
			// (each chip adds only its own share here, bottom-up), so only
			// this chip's own contribution is added at this level.
			totalCost += ownNRE
		}
		rolledNRE := ownNRE
		for _, ci := range c.Children {
			child, _ := t.Chip(ci)
			rolledNRE += child.derived.NRECost
		}

		valid := childrenValid && !math.IsNaN(totalCost) && !math.IsInf(totalCost, 0) &&
			finalQuality >= 0 && finalQuality <= 1+1e-9 && !math.IsNaN(finalQuality)

		c.derived.TrueYield = ty
		c.derived.TestYield = selfTestYield
		c.derived.Quality = finalQuality
		c.derived.SelfCost = selfCost
		c.derived.TotalCost = totalCost
		c.derived.NRECost = rolledNRE
		c.valid = valid
	}
	return nil
}

// ownNRECost is (design_cost + mask_cost*reticle_share)/quantity for this
// chip alone, excluding its children's NRE (Initialize rolls those up
// separately into derived.NRECost for reporting, and into TotalCost
// transitively through childCostSum).
func ownNRECost(c *Chip, areaMM2 float64) float64 {
	designCost := nreCostPerMM2(c) * areaMM2
	maskCost := 0.0
	for i := range c.Layers {
		if c.Layers[i].Active {
			maskCost += c.Layers[i].MaskCost
		}
	}
	quantity := c.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	return (designCost + maskCost*c.ReticleShare) / quantity
}

// Valid reports whether the chip at idx evaluated to a well-defined state
// in the last Initialize pass.
func (t *Tree) Valid(idx int) (bool, error) {
	c, err := t.Chip(idx)
	if err != nil {
		return false, err
	}
	return c.valid, nil
}
