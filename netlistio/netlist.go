package netlistio

import (
	"encoding/xml"
	"io"

	"github.com/chipletpart/chipletpart/hypergraph"
	"github.com/chipletpart/chipletpart/techlib"
)

// BuildHypergraph parses a netlist XML document and combines it with the
// already-parsed blocks and IO catalog into a hypergraph. Each <net>
// names exactly two blocks, so every resulting hyperedge has degree 2;
// the hypergraph data model itself admits higher-degree edges, but this
// input format never produces them. Net reach and per-pin footprint are
// looked up from the net's IO type, not carried in the netlist file
// itself, per this format's division of responsibility.
func BuildHypergraph(r io.Reader, blocks []hypergraph.Block, blockIndex map[string]int, ios map[string]*techlib.IO) (*hypergraph.Hypergraph, error) {
	var doc xmlNetlist
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, ErrParse
	}

	nets := make([]hypergraph.Net, 0, len(doc.Nets))
	netBlocks := make([][]int, 0, len(doc.Nets))
	for _, n := range doc.Nets {
		ioEntry, ok := ios[n.IOType]
		if !ok {
			return nil, ErrUnknownIOType
		}
		b0, ok := blockIndex[n.Block0]
		if !ok {
			return nil, ErrUnknownBlock
		}
		b1, ok := blockIndex[n.Block1]
		if !ok {
			return nil, ErrUnknownBlock
		}

		nets = append(nets, hypergraph.Net{
			Weight:    []float64{n.Bandwidth},
			IOType:    n.IOType,
			Reach:     ioEntry.ReachMM,
			IOSize:    ioEntry.AreaPerPad(),
			Bandwidth: n.Bandwidth,
		})
		netBlocks = append(netBlocks, []int{b0, b1})
	}

	return hypergraph.New(blocks, nets, netBlocks)
}
