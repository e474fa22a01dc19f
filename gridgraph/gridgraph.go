// SPDX-License-Identifier: MIT

package gridgraph

import "fmt"

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// New validates grid and copies it into a Map.
func New(grid [][]int, opts Options) (*Map, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(grid[0])
	cells := make([][]int, len(grid))
	for y, row := range grid {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells[y] = append([]int(nil), row...)
	}

	m := &Map{Width: w, Height: len(grid), Cells: cells, Conn: opts.Conn, offsets: offsets4}
	if opts.Conn == Conn8 {
		m.offsets = offsets8
	}
	return m, nil
}

// InBounds reports whether (x, y) lies inside the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Coordinate converts a row-major index to (x, y).
func (m *Map) Coordinate(idx int) (x, y int) {
	return idx % m.Width, idx / m.Width
}

func (m *Map) index(x, y int) int { return y*m.Width + x }

func (m *Map) value(idx int) int {
	x, y := m.Coordinate(idx)
	return m.Cells[y][x]
}

// neighbors calls fn for every in-bounds neighbour of cell idx.
func (m *Map) neighbors(idx int, fn func(int)) {
	x, y := m.Coordinate(idx)
	for _, d := range m.offsets {
		nx, ny := x+d[0], y+d[1]
		if m.InBounds(nx, ny) {
			fn(m.index(nx, ny))
		}
	}
}
