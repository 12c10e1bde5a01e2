package netlistio

// xmlWaferList/xmlWaferProcess mirror the wafer-process library file: a
// root element wrapping one <wafer_process> element per technology node.
type xmlWaferList struct {
	Processes []xmlWaferProcess `xml:"wafer_process"`
}

type xmlWaferProcess struct {
	Name             string  `xml:"name,attr"`
	DiameterMM       float64 `xml:"diameter,attr"`
	EdgeExclusionMM  float64 `xml:"edge_exclusion,attr"`
	ProcessYield     float64 `xml:"process_yield,attr"`
	DicingDistanceMM float64 `xml:"dicing_distance,attr"`
	ReticleXMM       float64 `xml:"reticle_x,attr"`
	ReticleYMM       float64 `xml:"reticle_y,attr"`
	WaferFillGrid    bool    `xml:"wafer_fill_grid,attr"`

	NREMemoryFrontMM2 float64 `xml:"nre_memory_front,attr"`
	NREMemoryBackMM2  float64 `xml:"nre_memory_back,attr"`
	NRELogicFrontMM2  float64 `xml:"nre_logic_front,attr"`
	NRELogicBackMM2   float64 `xml:"nre_logic_back,attr"`
	NREAnalogFrontMM2 float64 `xml:"nre_analog_front,attr"`
	NREAnalogBackMM2  float64 `xml:"nre_analog_back,attr"`
}

// xmlLayerList mirrors the layer-stackup library file.
type xmlLayerList struct {
	Layers []xmlLayer `xml:"layer"`
}

type xmlLayer struct {
	Name                 string  `xml:"name,attr"`
	Active               bool    `xml:"active,attr"`
	CostPerMM2           float64 `xml:"cost_per_mm2,attr"`
	DefectDensityPerMM2  float64 `xml:"defect_density,attr"`
	CriticalAreaFraction float64 `xml:"critical_area_fraction,attr"`
	GatesPerMM2          float64 `xml:"gates_per_mm2,attr"`
	MaskCost             float64 `xml:"mask_cost,attr"`
}

// xmlIOList mirrors the IO-cell library file.
type xmlIOList struct {
	IOs []xmlIO `xml:"io"`
}

type xmlIO struct {
	Type           string  `xml:"type,attr"`
	RxAreaMM2      float64 `xml:"rx_area,attr"`
	TxAreaMM2      float64 `xml:"tx_area,attr"`
	ShorelineUM    float64 `xml:"shoreline,attr"`
	BandwidthBPS   float64 `xml:"bandwidth,attr"`
	WireCount      int     `xml:"wire_count,attr"`
	Bidirectional  bool    `xml:"bidirectional,attr"`
	EnergyPerBitPJ float64 `xml:"energy_per_bit,attr"`
	ReachMM        float64 `xml:"reach,attr"`
}

// xmlAssemblyList mirrors the assembly-process library file.
type xmlAssemblyList struct {
	Assemblies []xmlAssembly `xml:"assembly_process"`
}

type xmlAssembly struct {
	Name string `xml:"name,attr"`

	MaterialsCostPerMM2 float64 `xml:"materials_cost_per_mm2,attr"`

	PickAndPlaceMachineCost    float64 `xml:"pick_and_place_machine_cost,attr"`
	PickAndPlaceLifetimeSec    float64 `xml:"pick_and_place_lifetime,attr"`
	PickAndPlaceUptime         float64 `xml:"pick_and_place_uptime,attr"`
	PickAndPlaceYearlyTechCost float64 `xml:"pick_and_place_yearly_tech_cost,attr"`
	PickAndPlaceTimeSec        float64 `xml:"pick_and_place_time,attr"`
	PickAndPlaceGroupSize      int     `xml:"pick_and_place_group_size,attr"`

	BondingMachineCost    float64 `xml:"bonding_machine_cost,attr"`
	BondingLifetimeSec    float64 `xml:"bonding_lifetime,attr"`
	BondingUptime         float64 `xml:"bonding_uptime,attr"`
	BondingYearlyTechCost float64 `xml:"bonding_yearly_tech_cost,attr"`
	BondingTimeSec        float64 `xml:"bonding_time,attr"`
	BondingGroupSize      int     `xml:"bonding_group_size,attr"`

	DieSeparationMM             float64 `xml:"die_separation,attr"`
	EdgeExclusionMM             float64 `xml:"edge_exclusion,attr"`
	MaxPadCurrentDensity        float64 `xml:"max_pad_current_density,attr"`
	CoreVoltageV                float64 `xml:"core_voltage,attr"`
	BondingPitchMM              float64 `xml:"bonding_pitch,attr"`
	AlignmentYield              float64 `xml:"alignment_yield,attr"`
	BondingYield                float64 `xml:"bonding_yield,attr"`
	DielectricBondDefectDensity float64 `xml:"dielectric_bond_defect_density,attr"`
}

// xmlTestList mirrors the test-process library file.
type xmlTestList struct {
	Tests []xmlTest `xml:"test_process"`
}

type xmlTest struct {
	Name                string  `xml:"name,attr"`
	TimePerTestCycleSec float64 `xml:"time_per_test_cycle,attr"`
	CostPerSecond       float64 `xml:"cost_per_second,attr"`
	SamplesPerInput     int     `xml:"samples_per_input,attr"`

	SelfDefectCoverage float64 `xml:"self_defect_coverage,attr"`
	SelfTestReuse      float64 `xml:"self_test_reuse,attr"`
	SelfScanChainCount  int    `xml:"self_scan_chain_count,attr"`
	SelfScanChainLength int    `xml:"self_scan_chain_length,attr"`

	AssemblyDefectCoverage float64 `xml:"assembly_defect_coverage,attr"`
	AssemblyTestReuse      float64 `xml:"assembly_test_reuse,attr"`
	AssemblyScanChainCount  int    `xml:"assembly_scan_chain_count,attr"`
	AssemblyScanChainLength int    `xml:"assembly_scan_chain_length,attr"`
}

// xmlNetlist mirrors the netlist file: a flat list of two-terminal nets
// naming blocks by the identifiers the blocks file assigns them.
type xmlNetlist struct {
	Nets []xmlNet `xml:"net"`
}

type xmlNet struct {
	IOType    string  `xml:"type,attr"`
	Block0    string  `xml:"block0,attr"`
	Block1    string  `xml:"block1,attr"`
	Bandwidth float64 `xml:"bandwidth,attr"`
}
