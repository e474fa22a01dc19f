// SPDX-License-Identifier: MIT

package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadGrid parses whitespace-separated integers, one grid row per line.
// Blank lines and lines starting with '#' are skipped.
func ReadGrid(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("gridgraph: line %d: %w", line, err)
			}
			row[i] = v
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: scan: %w", err)
	}
	return grid, nil
}
