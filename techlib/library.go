package techlib

// Library bundles the technology-process entities a single named
// technology node supplies: the wafer process it fabricates on, its
// bonding/assembly process, its test process, and its layer stackup.
// IOs are kept separate (Catalog.IOs) since an IO cell is selected per
// net by IOType, not per technology node.
type Library struct {
	Name     string
	Wafer    *WaferProcess
	Assembly *Assembly
	Test     *Test
	Layers   []Layer
}

// Catalog is the full set of parsed technology data: one Library per
// technology node, plus the shared IO-cell catalog keyed by IO type.
type Catalog struct {
	Techs map[string]Library
	IOs   map[string]*IO
}

// Lookup returns the Library for a technology node name.
func (c Catalog) Lookup(tech string) (Library, bool) {
	lib, ok := c.Techs[tech]
	return lib, ok
}

// TechNames returns the available technology node names in map-iteration
// (unspecified) order; callers needing determinism should sort it.
func (c Catalog) TechNames() []string {
	names := make([]string, 0, len(c.Techs))
	for name := range c.Techs {
		names = append(names, name)
	}
	return names
}
