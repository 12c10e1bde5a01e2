package gatech

import "errors"

// ErrEmptyPopulation indicates a generation produced zero viable
// individuals (every candidate failed repair).
var ErrEmptyPopulation = errors.New("gatech: population collapsed to zero individuals")

// ErrNoTechNodes indicates Options.TechNodes was empty.
var ErrNoTechNodes = errors.New("gatech: at least one technology node is required")
