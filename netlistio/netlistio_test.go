package netlistio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chipletpart/chipletpart/netlistio"
	"github.com/chipletpart/chipletpart/partition"
	"github.com/chipletpart/chipletpart/refine"
)

const waferXML = `<wafer_processes>
  <wafer_process name="7nm" diameter="300" edge_exclusion="3" process_yield="0.95"
    dicing_distance="0.1" reticle_x="26" reticle_y="33" wafer_fill_grid="true"
    nre_memory_front="1" nre_memory_back="1" nre_logic_front="1" nre_logic_back="1"
    nre_analog_front="1" nre_analog_back="1"/>
</wafer_processes>`

const layerXML = `<layers>
  <layer name="M1" active="true" cost_per_mm2="1" defect_density="0.001"
    critical_area_fraction="1" gates_per_mm2="0" mask_cost="0"/>
</layers>`

const ioXML = `<ios>
  <io type="std" rx_area="0.001" tx_area="0.001" shoreline="1" bandwidth="1e9"
    wire_count="1" bidirectional="false" energy_per_bit="0.01" reach="5"/>
</ios>`

const assemblyXML = `<assembly_processes>
  <assembly_process name="7nm" materials_cost_per_mm2="0.01"
    pick_and_place_machine_cost="1000" pick_and_place_lifetime="1" pick_and_place_uptime="0.9"
    pick_and_place_yearly_tech_cost="10" pick_and_place_time="1" pick_and_place_group_size="1"
    bonding_machine_cost="1000" bonding_lifetime="1" bonding_uptime="0.9"
    bonding_yearly_tech_cost="10" bonding_time="1" bonding_group_size="1"
    die_separation="0.1" edge_exclusion="0.1" max_pad_current_density="1"
    core_voltage="1" bonding_pitch="0.1" alignment_yield="0.99" bonding_yield="0.999"
    dielectric_bond_defect_density="0.001"/>
</assembly_processes>`

const testXML = `<test_processes>
  <test_process name="7nm" time_per_test_cycle="1e-7" cost_per_second="0.01" samples_per_input="1"
    self_defect_coverage="0.9" self_test_reuse="0" self_scan_chain_count="1" self_scan_chain_length="1"
    assembly_defect_coverage="0.9" assembly_test_reuse="0" assembly_scan_chain_count="1" assembly_scan_chain_length="1"/>
</test_processes>`

const netlistXML = `<netlist>
  <net type="std" block0="b0" block1="b1" bandwidth="1e9"/>
  <net type="std" block0="b1" block1="b2" bandwidth="1e9"/>
</netlist>`

const blocksTxt = `
b0 1.0 0.1 7nm 0.2 0.7 0.1
b1 1.0 0.1 7nm 0.2 0.7 0.1
b2 1.0 0.1 7nm 0.2 0.7 0.1
`

func TestParseLibraries_RoundTrip(t *testing.T) {
	wafers, err := netlistio.ParseWaferProcesses(strings.NewReader(waferXML))
	require.NoError(t, err)
	require.Len(t, wafers, 1)

	layers, err := netlistio.ParseLayers(strings.NewReader(layerXML))
	require.NoError(t, err)
	require.Len(t, layers, 1)

	ios, err := netlistio.ParseIOs(strings.NewReader(ioXML))
	require.NoError(t, err)
	require.Contains(t, ios, "std")

	assemblies, err := netlistio.ParseAssemblies(strings.NewReader(assemblyXML))
	require.NoError(t, err)
	require.Len(t, assemblies, 1)

	tests, err := netlistio.ParseTests(strings.NewReader(testXML))
	require.NoError(t, err)
	require.Len(t, tests, 1)

	catalog, err := netlistio.BuildCatalog([]string{"7nm"}, wafers, assemblies, tests, layers, ios)
	require.NoError(t, err)
	lib, ok := catalog.Lookup("7nm")
	require.True(t, ok)
	require.Equal(t, "7nm", lib.Name)
}

func TestParseBlocksAndNetlist_BuildsHypergraph(t *testing.T) {
	blocks, index, err := netlistio.ParseBlocks(strings.NewReader(blocksTxt))
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	require.Equal(t, 0, index["b0"])

	ios, err := netlistio.ParseIOs(strings.NewReader(ioXML))
	require.NoError(t, err)

	h, err := netlistio.BuildHypergraph(strings.NewReader(netlistXML), blocks, index, ios)
	require.NoError(t, err)
	require.Equal(t, 3, h.NumBlocks())
	require.Equal(t, 2, h.NumNets())
}

func TestBuildHypergraph_UnknownBlockFails(t *testing.T) {
	blocks, index, err := netlistio.ParseBlocks(strings.NewReader(blocksTxt))
	require.NoError(t, err)
	ios, err := netlistio.ParseIOs(strings.NewReader(ioXML))
	require.NoError(t, err)

	bad := `<netlist><net type="std" block0="b0" block1="nope" bandwidth="1"/></netlist>`
	_, err = netlistio.BuildHypergraph(strings.NewReader(bad), blocks, index, ios)
	require.ErrorIs(t, err, netlistio.ErrUnknownBlock)
}

func TestWriteResults(t *testing.T) {
	var partBuf, techBuf, summaryBuf bytes.Buffer

	require.NoError(t, netlistio.WritePartition(&partBuf, []int{0, 1, 0}))
	require.Equal(t, "0\n1\n0\n", partBuf.String())

	require.NoError(t, netlistio.WriteTechs(&techBuf, []string{"7nm", "10nm"}))
	require.Equal(t, "7nm\n10nm\n", techBuf.String())

	cand := partition.Candidate{
		State:       refine.PartitionState{Part: []int{0, 0, 1}, K: 2},
		TechPerPart: []string{"7nm", "10nm"},
		Cost:        123.456,
		Valid:       true,
	}
	require.NoError(t, netlistio.WriteSummary(&summaryBuf, cand))
	out := summaryBuf.String()
	require.Contains(t, out, "k=2")
	require.Contains(t, out, "valid=true")
	require.Contains(t, out, "partition 0")
	require.Contains(t, out, "tech=7nm")
}

func TestParsePartitionAndTechsFiles_RoundTripWrites(t *testing.T) {
	var partBuf, techBuf bytes.Buffer
	require.NoError(t, netlistio.WritePartition(&partBuf, []int{0, 1, 0, 2}))
	require.NoError(t, netlistio.WriteTechs(&techBuf, []string{"7nm", "10nm", "14nm"}))

	part, err := netlistio.ParsePartitionFile(strings.NewReader(partBuf.String()))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 0, 2}, part)

	techs, err := netlistio.ParseTechsFile(strings.NewReader(techBuf.String()))
	require.NoError(t, err)
	require.Equal(t, []string{"7nm", "10nm", "14nm"}, techs)
}

func TestParsePartitionFile_RejectsNonInteger(t *testing.T) {
	_, err := netlistio.ParsePartitionFile(strings.NewReader("0\nnot-a-number\n"))
	require.ErrorIs(t, err, netlistio.ErrParse)
}
