// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/chroma/core"
)

// Partition is the region labelling of a Map.
type Partition struct {
	m       *Map
	Regions []Region
	// Label maps a row-major cell index to its region index, -1 for holes.
	Label []int
}

// Partition flood-fills the grid. Regions are numbered in row-major order
// of their first cell.
func (m *Map) Partition() *Partition {
	total := m.Width * m.Height
	p := &Partition{m: m, Label: make([]int, total)}
	for i := range p.Label {
		p.Label[i] = -1
	}

	width := len(strconv.Itoa(total))
	for start := 0; start < total; start++ {
		if p.Label[start] >= 0 || m.value(start) < 0 {
			continue
		}
		r := len(p.Regions)
		val := m.value(start)
		queue := []int{start}
		p.Label[start] = r
		for qi := 0; qi < len(queue); qi++ {
			m.neighbors(queue[qi], func(v int) {
				if p.Label[v] < 0 && m.value(v) == val {
					p.Label[v] = r
					queue = append(queue, v)
				}
			})
		}
		p.Regions = append(p.Regions, Region{
			ID:    fmt.Sprintf("r%0*d", width, r),
			Value: val,
			Cells: queue,
		})
	}

	return p
}

// Graph returns the region adjacency graph: one vertex per region, one edge
// per pair of regions with touching cells.
func (p *Partition) Graph() *core.Graph {
	g := core.NewGraph()
	for _, r := range p.Regions {
		_ = g.AddVertex(r.ID)
	}
	for cell, r := range p.Label {
		if r < 0 {
			continue
		}
		p.m.neighbors(cell, func(v int) {
			s := p.Label[v]
			if s > r {
				a, b := p.Regions[r].ID, p.Regions[s].ID
				if !g.HasEdge(a, b) {
					_, _ = g.AddEdge(a, b)
				}
			}
		})
	}
	return g
}

// Paint returns a grid holding the colour of each cell's region, 0 for
// holes.
func (p *Partition) Paint(colors map[string]int) ([][]int, error) {
	out := make([][]int, p.m.Height)
	for y := range out {
		out[y] = make([]int, p.m.Width)
	}
	for _, r := range p.Regions {
		c, ok := colors[r.ID]
		if !ok || c <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrUncoloredRegion, r.ID)
		}
		for _, cell := range r.Cells {
			x, y := p.m.Coordinate(cell)
			out[y][x] = c
		}
	}
	return out, nil
}
