package chiptree

import "github.com/chipletpart/chipletpart/techlib"

// ChipNet is one net incident to a Chip, as seen from that chip's side of
// an assembled package: how many outgoing/incoming connections it carries
// (internal connections within the same chip are excluded), used for both
// pad-grid sizing and io_power.
type ChipNet struct {
	IO       *techlib.IO
	ReachMM  float64
	Outgoing int
	Incoming int
}

// Chip is one node of the chip tree.
type Chip struct {
	Name string

	Wafer    *techlib.WaferProcess
	Assembly *techlib.Assembly
	Test     *techlib.Test
	Layers   []techlib.Layer

	Children []int                // owned: arena indices of child chips
	Parent   techlib.Optional[int] // non-owning back-reference

	// Geometry: placed by the floorplanner for every chip except the root.
	CoreAreaMM2 float64
	AspectRatio float64
	X, Y        float64
	Buried      bool

	// Black-box overrides short-circuit the corresponding derived value.
	BBArea    techlib.Optional[float64]
	BBCost    techlib.Optional[float64]
	BBQuality techlib.Optional[float64]
	BBPower   techlib.Optional[float64]

	// NRE sharing.
	ReticleShare float64
	Quantity     float64
	MemoryFrac   float64
	LogicFrac    float64
	AnalogFrac   float64

	// Own (non-IO, non-stack) power draw, excluding children.
	OwnPowerW float64

	// Nets incident to this chip, for pad-grid sizing and io_power.
	Nets []ChipNet

	// TestPadCount is the fixed test-pad overhead added to the pad grid.
	TestPadCount int

	derived derivedValues
	valid   bool
}

// derivedValues caches Initialize's bottom-up outputs for one chip.
type derivedValues struct {
	AreaMM2    float64
	PowerW     float64
	TrueYield  float64
	TestYield  float64
	Quality    float64
	SelfCost   float64
	TotalCost  float64
	NRECost    float64
}

// Derived returns the cached values computed by the last Initialize call,
// and whether this chip evaluated to a valid (finite, well-defined) state.
func (c *Chip) Derived() (area, power, yield, cost float64, valid bool) {
	return c.derived.AreaMM2, c.derived.PowerW, c.derived.Quality, c.derived.TotalCost, c.valid
}

// Tree is the flat arena of chip nodes.
type Tree struct {
	nodes []*Chip
	root  int
}

// NewTree creates an empty tree with no root yet.
func NewTree() *Tree {
	return &Tree{root: -1}
}

// AddChip appends chip to the arena. If parent is set, chip becomes a
// child of that index (parent must already exist); otherwise chip becomes
// (or replaces) the root. Returns the new chip's arena index.
func (t *Tree) AddChip(parent techlib.Optional[int], chip *Chip) (int, error) {
	idx := len(t.nodes)
	if p, ok := parent.Get(); ok {
		if p < 0 || p >= len(t.nodes) {
			return -1, ErrInvalidIndex
		}
		chip.Parent = techlib.Some(p)
		t.nodes[p].Children = append(t.nodes[p].Children, idx)
	} else {
		chip.Parent = techlib.None[int]()
		t.root = idx
	}
	t.nodes = append(t.nodes, chip)
	return idx, nil
}

// Chip returns the node at idx.
func (t *Tree) Chip(idx int) (*Chip, error) {
	if idx < 0 || idx >= len(t.nodes) {
		return nil, ErrInvalidIndex
	}
	return t.nodes[idx], nil
}

// Root returns the root chip's arena index, or -1 if the tree is empty.
func (t *Tree) Root() int { return t.root }

// Len returns the number of chips in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// postOrder returns arena indices in a children-before-parent order
// rooted at idx.
func (t *Tree) postOrder(idx int) []int {
	var order []int
	var visit func(int)
	visit = func(i int) {
		c := t.nodes[i]
		for _, ch := range c.Children {
			visit(ch)
		}
		order = append(order, i)
	}
	visit(idx)
	return order
}
