package netlistio

import "errors"

// ErrParse indicates malformed XML or a malformed blocks-file line.
var ErrParse = errors.New("netlistio: parse error")

// ErrUnknownIOType indicates a net or IO reference names an IO type
// absent from the parsed IO catalog.
var ErrUnknownIOType = errors.New("netlistio: unknown IO type")

// ErrUnknownBlock indicates a netlist net references a block name absent
// from the parsed blocks file.
var ErrUnknownBlock = errors.New("netlistio: unknown block name")
