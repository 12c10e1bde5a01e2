package netlistio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/chipletpart/chipletpart/partition"
)

// WritePartition writes the ".cpart.<k>" file: one line per vertex giving
// its partition ID, in vertex-ID order.
func WritePartition(w io.Writer, part []int) error {
	for _, p := range part {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

// WriteTechs writes the ".techs.<k>" sibling file: one technology name
// per partition, in partition-ID order.
func WriteTechs(w io.Writer, techPerPart []string) error {
	for _, t := range techPerPart {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

// ParsePartitionFile reads a ".cpart.<k>" file back into a per-vertex
// partition-ID slice, the inverse of WritePartition.
func ParsePartitionFile(r io.Reader) ([]int, error) {
	var part []int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := strconv.Atoi(line)
		if err != nil {
			return nil, ErrParse
		}
		part = append(part, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return part, nil
}

// ParseTechsFile reads a ".techs.<k>" file back into a per-partition
// technology-name slice, the inverse of WriteTechs.
func ParseTechsFile(r io.Reader) ([]string, error) {
	var techs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		techs = append(techs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return techs, nil
}

// summaryData feeds the summary.txt template: k, cost, validity, and a
// per-partition row of (size percentage, technology).
type summaryData struct {
	K       int
	Cost    float64
	Valid   bool
	PartRow []summaryPartRow
}

type summaryPartRow struct {
	ID      int
	SizePct float64
	Tech    string
}

var summaryTemplate = template.Must(template.New("summary").Parse(
	`k={{.K}} cost={{printf "%.6f" .Cost}} valid={{.Valid}}
{{range .PartRow}}partition {{.ID}}: {{printf "%.2f" .SizePct}}% tech={{.Tech}}
{{end}}`))

// WriteSummary renders the ".summary.txt" report for one scored candidate:
// k, total cost, feasibility, and each partition's share of total vertex
// count plus its assigned technology.
func WriteSummary(w io.Writer, cand partition.Candidate) error {
	k := cand.State.K
	counts := make([]int, k)
	for _, p := range cand.State.Part {
		counts[p]++
	}
	total := len(cand.State.Part)

	rows := make([]summaryPartRow, k)
	for p := 0; p < k; p++ {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(counts[p]) / float64(total)
		}
		tech := ""
		if p < len(cand.TechPerPart) {
			tech = cand.TechPerPart[p]
		}
		rows[p] = summaryPartRow{ID: p, SizePct: pct, Tech: tech}
	}

	return summaryTemplate.Execute(w, summaryData{K: k, Cost: cand.Cost, Valid: cand.Valid, PartRow: rows})
}
