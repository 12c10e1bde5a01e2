package chiptree

import "github.com/chipletpart/chipletpart/techlib"

// ioPowerW computes the io_power contribution of a chip's nets:
// connections are summed per IO-type first, and the bandwidth/
// energy-per-bit/bidirectional scaling is applied once to that per-type
// sum, not re-applied per net.
func ioPowerW(c *Chip) float64 {
	type acc struct {
		conns float64
		io    *techlib.IO
	}
	byType := make(map[string]*acc)
	for _, n := range c.Nets {
		a, ok := byType[n.IO.Type]
		if !ok {
			a = &acc{io: n.IO}
			byType[n.IO.Type] = a
		}
		a.conns += float64(n.Outgoing + n.Incoming)
	}

	var total float64
	for _, a := range byType {
		factor := 1.0
		if a.io.Bidirectional {
			factor = 0.5
		}
		total += a.conns * a.io.BandwidthBPS * a.io.EnergyPerBitPJ * factor
	}
	return total
}

// computePower composes power bottom-up:
// own_power + io_power + sum(child.total_power), or bb_power (+
// stack_power) if overridden.
func computePower(t *Tree, c *Chip) float64 {
	total := c.OwnPowerW + ioPowerW(c)
	if bb, ok := c.BBPower.Get(); ok {
		total = bb
	}
	for _, ci := range c.Children {
		child, _ := t.Chip(ci)
		total += child.derived.PowerW
	}
	return total
}
