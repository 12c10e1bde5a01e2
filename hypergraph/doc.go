// Package hypergraph is the CSR-backed hypergraph store for ChipletPart.
//
// A Hypergraph holds V blocks (vertices) and E nets (hyperedges). Each net
// may connect two or more blocks, carries a weight vector, an IO-type tag, a
// reach (mm) and an io-size. The store is built once from plain slices and
// is read-only thereafter; every accessor is O(1) (CSR offsets, no map
// lookups on the hot path).
//
// Two CSR directions are maintained and kept consistent by construction:
// net→blocks (NetBlocks) and block→nets (BlockNets). A block appears at
// most once in any given net.
//
// Errors:
//
//	ErrInvalidID - a vertex or net index is out of [0,n) range.
//	ErrDuplicateBlockInNet - a net lists the same block twice.
//
// AI-Hints:
//   - Build via New(blocks, nets, netBlocks); the constructor validates and derives
//     both CSR tables in one pass.
//   - BalanceBounds gives the per-partition [lower,upper] weight window the
//     refiners gate moves against.
package hypergraph
