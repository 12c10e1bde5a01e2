// Package netlistio is the only place in this repository that imports
// encoding/xml: it turns the five technology-library XML files and the
// netlist XML into the typed techlib/hypergraph data model, parses the
// whitespace-separated blocks file, and serializes partition results back
// to disk. No core package (hypergraph, techlib, chiptree, floorplan,
// refine, partition, gatech) imports encoding/xml or os directly — they
// stay pure data-and-algorithm packages driven entirely through Go values.
package netlistio
