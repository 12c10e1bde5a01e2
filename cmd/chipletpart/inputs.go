package main

import (
	"io"
	"os"

	"github.com/chipletpart/chipletpart/hypergraph"
	"github.com/chipletpart/chipletpart/netlistio"
	"github.com/chipletpart/chipletpart/techlib"
)

// parsedInputs bundles everything parsed from the seven library/netlist/
// blocks files before a run's mode (standard vs. genetic vs. evaluate)
// picks which technology node names to build a catalog for.
type parsedInputs struct {
	H          *hypergraph.Hypergraph
	Wafers     []*techlib.WaferProcess
	Assemblies []*techlib.Assembly
	Tests      []*techlib.Test
	Layers     []techlib.Layer
	IOs        map[string]*techlib.IO
}

// loadInputs parses the IO, layer, wafer, assembly, and test library
// files, the netlist, and the blocks file, in the order the command
// surface names them.
func loadInputs(ioPath, layerPath, waferPath, assemblyPath, testPath, netlistPath, blocksPath string) (parsedInputs, error) {
	ios, err := parseFile(ioPath, netlistio.ParseIOs)
	if err != nil {
		return parsedInputs{}, err
	}
	layers, err := parseFile(layerPath, netlistio.ParseLayers)
	if err != nil {
		return parsedInputs{}, err
	}
	wafers, err := parseFile(waferPath, netlistio.ParseWaferProcesses)
	if err != nil {
		return parsedInputs{}, err
	}
	assemblies, err := parseFile(assemblyPath, netlistio.ParseAssemblies)
	if err != nil {
		return parsedInputs{}, err
	}
	tests, err := parseFile(testPath, netlistio.ParseTests)
	if err != nil {
		return parsedInputs{}, err
	}
	blocks, blockIndex, err := parseFile2(blocksPath, netlistio.ParseBlocks)
	if err != nil {
		return parsedInputs{}, err
	}
	h, err := parseFile3(netlistPath, blocks, blockIndex, ios, netlistio.BuildHypergraph)
	if err != nil {
		return parsedInputs{}, err
	}

	return parsedInputs{H: h, Wafers: wafers, Assemblies: assemblies, Tests: tests, Layers: layers, IOs: ios}, nil
}

func parseFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	return parse(f)
}

func parseFile2[A, B any](path string, parse func(io.Reader) (A, B, error)) (A, B, error) {
	var zeroA A
	var zeroB B
	f, err := os.Open(path)
	if err != nil {
		return zeroA, zeroB, err
	}
	defer f.Close()
	return parse(f)
}

func parseFile3[A, B, C, D any](path string, a A, b B, c C, parse func(io.Reader, A, B, C) (D, error)) (D, error) {
	var zero D
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	return parse(f, a, b, c)
}
