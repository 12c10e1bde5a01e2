package partition

import (
	"github.com/chipletpart/chipletpart/chiptree"
	"github.com/chipletpart/chipletpart/floorplan"
	"github.com/chipletpart/chipletpart/hypergraph"
	"github.com/chipletpart/chipletpart/refine"
	"github.com/chipletpart/chipletpart/techlib"
)

// defaultAspectRatios is offered to every chiplet the floorplanner sizes,
// absent a per-chiplet override.
var defaultAspectRatios = []float64{1, 2, 0.5, 4, 0.25}

// partitionAreas sums Block.Area per partition.
func partitionAreas(h *hypergraph.Hypergraph, part []int, k int) []float64 {
	areas := make([]float64, k)
	for v, p := range part {
		b, err := h.Block(v)
		if err != nil {
			continue
		}
		areas[p] += b.Area
	}
	return areas
}

// buildFloorplanInstance projects the hypergraph partition into a
// chiplet-level netlist: one node per partition, one weighted bundle per
// pair of partitions a cut net spans.
func buildFloorplanInstance(h *hypergraph.Hypergraph, state refine.PartitionState) *floorplan.Instance {
	areas := partitionAreas(h, state.Part, state.K)
	chiplets := make([]floorplan.ChipletSpec, state.K)
	for p := 0; p < state.K; p++ {
		minArea := areas[p]
		if minArea <= 0 {
			minArea = 0.01
		}
		chiplets[p] = floorplan.ChipletSpec{
			MinAreaMM2:   minArea,
			AspectRatios: defaultAspectRatios,
		}
	}

	type bundleKey struct{ a, b int }
	bundles := make(map[bundleKey]*floorplan.Bundle)
	for eid := 0; eid < h.NumNets(); eid++ {
		blocks, err := h.NetBlocks(eid)
		if err != nil {
			continue
		}
		net, err := h.Net(eid)
		if err != nil {
			continue
		}
		touched := make(map[int]bool)
		for _, v := range blocks {
			touched[state.Part[v]] = true
		}
		if len(touched) < 2 {
			continue
		}
		parts := make([]int, 0, len(touched))
		for p := range touched {
			parts = append(parts, p)
		}
		for i := 0; i < len(parts); i++ {
			for j := i + 1; j < len(parts); j++ {
				a, b := parts[i], parts[j]
				if a > b {
					a, b = b, a
				}
				key := bundleKey{a, b}
				bw := net.Bandwidth
				if bw == 0 {
					bw = 1
				}
				if bundles[key] == nil {
					bundles[key] = &floorplan.Bundle{From: a, To: b, IOType: net.IOType, ReachMM: net.Reach}
				}
				bundles[key].BandwidthWeight += bw
				if net.Reach > 0 && (bundles[key].ReachMM <= 0 || net.Reach < bundles[key].ReachMM) {
					bundles[key].ReachMM = net.Reach
				}
			}
		}
	}

	inst := &floorplan.Instance{Chiplets: chiplets}
	for _, b := range bundles {
		inst.Bundles = append(inst.Bundles, *b)
	}
	return inst
}

// buildChipTree assembles a two-level chip tree from a partition: one
// leaf chip per partition, aggregating its assigned blocks' area, power,
// and kind fractions, and a root chip representing the reconstituted
// package. The root inherits the first partition's technology process as
// a simplification (a dedicated package-level process is outside this
// model's scope); every other process assignment is per-partition.
func buildChipTree(h *hypergraph.Hypergraph, catalog techlib.Catalog, state refine.PartitionState, techPerPart []string, placement floorplan.Result, powerPadsPerPart int, testPadsPerPart int) (*chiptree.Tree, error) {
	if len(techPerPart) != state.K {
		return nil, ErrTechMismatch
	}

	areas := partitionAreas(h, state.Part, state.K)
	power := make([]float64, state.K)
	memA := make([]float64, state.K)
	logA := make([]float64, state.K)
	anaA := make([]float64, state.K)
	for v, p := range state.Part {
		b, err := h.Block(v)
		if err != nil {
			continue
		}
		power[p] += b.Power
		memA[p] += b.MemoryFrac * b.Area
		logA[p] += b.LogicFrac * b.Area
		anaA[p] += b.AnalogFrac * b.Area
	}

	// externalNets[p][ioType] accumulates connection counts to other
	// partitions, excluding internal (same-partition) nets.
	type netAcc struct {
		io    *techlib.IO
		reach float64
		conns int
	}
	externalNets := make([]map[string]*netAcc, state.K)
	for p := range externalNets {
		externalNets[p] = make(map[string]*netAcc)
	}
	for eid := 0; eid < h.NumNets(); eid++ {
		blocks, err := h.NetBlocks(eid)
		if err != nil {
			continue
		}
		net, err := h.Net(eid)
		if err != nil {
			continue
		}
		touched := make(map[int]bool)
		for _, v := range blocks {
			touched[state.Part[v]] = true
		}
		if len(touched) < 2 {
			continue
		}
		io := catalog.IOs[net.IOType]
		for p := range touched {
			acc, ok := externalNets[p][net.IOType]
			if !ok {
				acc = &netAcc{io: io, reach: net.Reach}
				externalNets[p][net.IOType] = acc
			}
			acc.conns++
		}
	}

	tree := chiptree.NewTree()
	rootLib, ok := catalog.Lookup(techPerPart[0])
	if !ok {
		return nil, ErrTechMismatch
	}
	totalArea := 0.0
	for _, a := range areas {
		totalArea += a
	}
	root := &chiptree.Chip{
		Name:         "package",
		Wafer:        rootLib.Wafer,
		Assembly:     rootLib.Assembly,
		Test:         rootLib.Test,
		Layers:       rootLib.Layers,
		CoreAreaMM2:  totalArea,
		AspectRatio:  1,
		ReticleShare: 1,
		Quantity:     1,
		MemoryFrac:   1,
	}
	rootIdx, err := tree.AddChip(techlib.None[int](), root)
	if err != nil {
		return nil, err
	}

	for p := 0; p < state.K; p++ {
		lib, ok := catalog.Lookup(techPerPart[p])
		if !ok {
			return nil, ErrTechMismatch
		}
		area := areas[p]
		total := memA[p] + logA[p] + anaA[p]
		memFrac, logFrac, anaFrac := 1.0, 0.0, 0.0
		if total > 0 {
			memFrac, logFrac, anaFrac = memA[p]/total, logA[p]/total, anaA[p]/total
		}

		var nets []chiptree.ChipNet
		for _, acc := range externalNets[p] {
			nets = append(nets, chiptree.ChipNet{IO: acc.io, ReachMM: acc.reach, Outgoing: acc.conns})
		}

		aspect := 1.0
		x, y := 0.0, 0.0
		if p < len(placement.AspectRatios) {
			aspect = placement.AspectRatios[p]
		}
		if p < len(placement.X) {
			x, y = placement.X[p], placement.Y[p]
		}

		child := &chiptree.Chip{
			Name:         lib.Name,
			Wafer:        lib.Wafer,
			Assembly:     lib.Assembly,
			Test:         lib.Test,
			Layers:       lib.Layers,
			CoreAreaMM2:  area,
			AspectRatio:  aspect,
			X:            x,
			Y:            y,
			ReticleShare: 1,
			Quantity:     1,
			MemoryFrac:   memFrac,
			LogicFrac:    logFrac,
			AnalogFrac:   anaFrac,
			OwnPowerW:    power[p],
			Nets:         nets,
			TestPadCount: testPadsPerPart,
		}
		if _, err := tree.AddChip(techlib.Some(rootIdx), child); err != nil {
			return nil, err
		}
	}

	return tree, nil
}
