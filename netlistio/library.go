package netlistio

import (
	"encoding/xml"
	"io"

	"github.com/chipletpart/chipletpart/techlib"
)

// ParseWaferProcesses reads the wafer-process library file and returns one
// WaferProcess per <wafer_process> element, each already latched static.
func ParseWaferProcesses(r io.Reader) ([]*techlib.WaferProcess, error) {
	var doc xmlWaferList
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, ErrParse
	}
	out := make([]*techlib.WaferProcess, len(doc.Processes))
	for i, p := range doc.Processes {
		w := &techlib.WaferProcess{
			Name:              p.Name,
			DiameterMM:        p.DiameterMM,
			EdgeExclusionMM:   p.EdgeExclusionMM,
			ProcessYield:      p.ProcessYield,
			DicingDistanceMM:  p.DicingDistanceMM,
			ReticleXMM:        p.ReticleXMM,
			ReticleYMM:        p.ReticleYMM,
			WaferFillGrid:     p.WaferFillGrid,
			NREMemoryFrontMM2: p.NREMemoryFrontMM2,
			NREMemoryBackMM2:  p.NREMemoryBackMM2,
			NRELogicFrontMM2:  p.NRELogicFrontMM2,
			NRELogicBackMM2:   p.NRELogicBackMM2,
			NREAnalogFrontMM2: p.NREAnalogFrontMM2,
			NREAnalogBackMM2:  p.NREAnalogBackMM2,
		}
		if err := w.FullyDefined(); err != nil {
			return nil, err
		}
		w.MakeStatic()
		out[i] = w
	}
	return out, nil
}

// ParseLayers reads the layer-stackup library file, preserving element
// order as stackup order.
func ParseLayers(r io.Reader) ([]techlib.Layer, error) {
	var doc xmlLayerList
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, ErrParse
	}
	out := make([]techlib.Layer, len(doc.Layers))
	for i, l := range doc.Layers {
		layer := techlib.Layer{
			Name:                 l.Name,
			Active:               l.Active,
			CostPerMM2:           l.CostPerMM2,
			DefectDensityPerMM2:  l.DefectDensityPerMM2,
			CriticalAreaFraction: l.CriticalAreaFraction,
			GatesPerMM2:          l.GatesPerMM2,
			MaskCost:             l.MaskCost,
		}
		if err := layer.FullyDefined(); err != nil {
			return nil, err
		}
		layer.MakeStatic()
		out[i] = layer
	}
	return out, nil
}

// ParseIOs reads the IO-cell library file into a name-keyed catalog.
func ParseIOs(r io.Reader) (map[string]*techlib.IO, error) {
	var doc xmlIOList
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, ErrParse
	}
	out := make(map[string]*techlib.IO, len(doc.IOs))
	for _, e := range doc.IOs {
		io := &techlib.IO{
			Type:           e.Type,
			RxAreaMM2:      e.RxAreaMM2,
			TxAreaMM2:      e.TxAreaMM2,
			ShorelineUM:    e.ShorelineUM,
			BandwidthBPS:   e.BandwidthBPS,
			WireCount:      e.WireCount,
			Bidirectional:  e.Bidirectional,
			EnergyPerBitPJ: e.EnergyPerBitPJ,
			ReachMM:        e.ReachMM,
		}
		if err := io.FullyDefined(); err != nil {
			return nil, err
		}
		io.MakeStatic()
		out[e.Type] = io
	}
	return out, nil
}

// ParseAssemblies reads the assembly-process library file.
func ParseAssemblies(r io.Reader) ([]*techlib.Assembly, error) {
	var doc xmlAssemblyList
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, ErrParse
	}
	out := make([]*techlib.Assembly, len(doc.Assemblies))
	for i, a := range doc.Assemblies {
		asm := &techlib.Assembly{
			Name:                        a.Name,
			MaterialsCostPerMM2:         a.MaterialsCostPerMM2,
			PickAndPlaceMachineCost:     a.PickAndPlaceMachineCost,
			PickAndPlaceLifetimeSec:     a.PickAndPlaceLifetimeSec,
			PickAndPlaceUptime:          a.PickAndPlaceUptime,
			PickAndPlaceYearlyTechCost:  a.PickAndPlaceYearlyTechCost,
			PickAndPlaceTimeSec:         a.PickAndPlaceTimeSec,
			PickAndPlaceGroupSize:       a.PickAndPlaceGroupSize,
			BondingMachineCost:          a.BondingMachineCost,
			BondingLifetimeSec:          a.BondingLifetimeSec,
			BondingUptime:               a.BondingUptime,
			BondingYearlyTechCost:       a.BondingYearlyTechCost,
			BondingTimeSec:              a.BondingTimeSec,
			BondingGroupSize:            a.BondingGroupSize,
			DieSeparationMM:             a.DieSeparationMM,
			EdgeExclusionMM:             a.EdgeExclusionMM,
			MaxPadCurrentDensity:        a.MaxPadCurrentDensity,
			CoreVoltageV:                a.CoreVoltageV,
			BondingPitchMM:              a.BondingPitchMM,
			AlignmentYield:              a.AlignmentYield,
			BondingYield:                a.BondingYield,
			DielectricBondDefectDensity: a.DielectricBondDefectDensity,
		}
		if err := asm.FullyDefined(); err != nil {
			return nil, err
		}
		asm.MakeStatic()
		out[i] = asm
	}
	return out, nil
}

// ParseTests reads the test-process library file.
func ParseTests(r io.Reader) ([]*techlib.Test, error) {
	var doc xmlTestList
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, ErrParse
	}
	out := make([]*techlib.Test, len(doc.Tests))
	for i, t := range doc.Tests {
		test := &techlib.Test{
			Name:                t.Name,
			TimePerTestCycleSec: t.TimePerTestCycleSec,
			CostPerSecond:       t.CostPerSecond,
			SamplesPerInput:     t.SamplesPerInput,
			Self: techlib.TestConfig{
				DefectCoverage:  t.SelfDefectCoverage,
				TestReuse:       t.SelfTestReuse,
				ScanChainCount:  t.SelfScanChainCount,
				ScanChainLength: t.SelfScanChainLength,
			},
			Assembly: techlib.TestConfig{
				DefectCoverage:  t.AssemblyDefectCoverage,
				TestReuse:       t.AssemblyTestReuse,
				ScanChainCount:  t.AssemblyScanChainCount,
				ScanChainLength: t.AssemblyScanChainLength,
			},
		}
		if err := test.FullyDefined(); err != nil {
			return nil, err
		}
		test.MakeStatic()
		out[i] = test
	}
	return out, nil
}

// BuildCatalog assembles a techlib.Catalog for the requested technology
// node names out of the parsed library entities. Each of wafers/
// assemblies/tests may list one entry per named node (the genetic
// optimizer's multi-node runs) or a single entry shared by every name (the
// single-tech command-line mode); BuildCatalog looks up by Name and falls
// back to the sole entry when the list has exactly one. The layer stackup
// is shared across every node: the library file format carries one
// stackup list, not a per-node one.
func BuildCatalog(names []string, wafers []*techlib.WaferProcess, assemblies []*techlib.Assembly, tests []*techlib.Test, layers []techlib.Layer, ios map[string]*techlib.IO) (techlib.Catalog, error) {
	catalog := techlib.Catalog{Techs: make(map[string]techlib.Library, len(names)), IOs: ios}
	for _, name := range names {
		wafer, err := pickByName(wafers, name, func(w *techlib.WaferProcess) string { return w.Name })
		if err != nil {
			return techlib.Catalog{}, err
		}
		assembly, err := pickByName(assemblies, name, func(a *techlib.Assembly) string { return a.Name })
		if err != nil {
			return techlib.Catalog{}, err
		}
		test, err := pickByName(tests, name, func(t *techlib.Test) string { return t.Name })
		if err != nil {
			return techlib.Catalog{}, err
		}
		catalog.Techs[name] = techlib.Library{Name: name, Wafer: wafer, Assembly: assembly, Test: test, Layers: layers}
	}
	return catalog, nil
}

// pickByName returns the entry whose name() equals target, or the sole
// entry in entries when there is exactly one and no name matches.
func pickByName[T any](entries []T, target string, name func(T) string) (T, error) {
	var zero T
	if len(entries) == 1 {
		return entries[0], nil
	}
	for _, e := range entries {
		if name(e) == target {
			return e, nil
		}
	}
	return zero, ErrParse
}
