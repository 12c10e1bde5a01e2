package netlistio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/chipletpart/chipletpart/hypergraph"
)

// ParseBlocks reads the whitespace-separated blocks file: one block per
// line, "Name Area(mm2) Power(W) Tech memory_frac logic_frac analog_frac".
// Blank lines are ignored. Line order fixes vertex IDs. Returns the
// parsed blocks alongside a name-to-vertex-ID index for the netlist
// parser to resolve block0/block1 references against.
func ParseBlocks(r io.Reader) ([]hypergraph.Block, map[string]int, error) {
	var blocks []hypergraph.Block
	index := make(map[string]int)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 7 {
			return nil, nil, ErrParse
		}
		area, err1 := strconv.ParseFloat(fields[1], 64)
		power, err2 := strconv.ParseFloat(fields[2], 64)
		memFrac, err3 := strconv.ParseFloat(fields[4], 64)
		logFrac, err4 := strconv.ParseFloat(fields[5], 64)
		anaFrac, err5 := strconv.ParseFloat(fields[6], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			return nil, nil, ErrParse
		}

		name := fields[0]
		index[name] = len(blocks)
		blocks = append(blocks, hypergraph.Block{
			Name:       name,
			Area:       area,
			Power:      power,
			Tech:       fields[3],
			MemoryFrac: memFrac,
			LogicFrac:  logFrac,
			AnalogFrac: anaFrac,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return blocks, index, nil
}
