package floorplan

import "errors"

// ErrFloorplanInfeasible indicates annealing produced no feasible layout
// (every candidate violated a reach constraint or the parent envelope).
var ErrFloorplanInfeasible = errors.New("floorplan: no feasible layout found")

// ErrEmptyInstance indicates an Anneal/RunPool call with zero chiplets.
var ErrEmptyInstance = errors.New("floorplan: instance has no chiplets")
