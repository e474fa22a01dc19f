// SPDX-License-Identifier: MIT
//
// File: saturation.go
// Role: per-vertex multiset of neighbour colours for DSatur.

package coloring

// saturation tracks, for every uncoloured vertex, how many coloured
// neighbours hold each colour. sat[v] is the number of distinct colours in
// that multiset. A vertex's entry is dropped once it is coloured.
type saturation struct {
	t     *topology
	seen  []map[int]int
	sat   []int
	done  []bool
	count int // uncoloured vertices left
}

func newSaturation(t *topology) *saturation {
	n := t.size()

	return &saturation{
		t:     t,
		seen:  make([]map[int]int, n),
		sat:   make([]int, n),
		done:  make([]bool, n),
		count: n,
	}
}

func (s *saturation) add(u, c int) {
	m := s.seen[u]
	if m == nil {
		m = make(map[int]int)
		s.seen[u] = m
	}
	m[c]++
	if m[c] == 1 {
		s.sat[u]++
	}
}

func (s *saturation) remove(u, c int) {
	m := s.seen[u]
	if m == nil || m[c] == 0 {
		return
	}
	m[c]--
	if m[c] == 0 {
		delete(m, c)
		s.sat[u]--
	}
}

// colored drops v from the table and counts c at its uncoloured neighbours.
func (s *saturation) colored(v, c int) {
	s.done[v] = true
	s.seen[v] = nil
	s.sat[v] = 0
	s.count--
	for _, nb := range s.t.adj[v] {
		if !s.done[nb] {
			s.add(nb, c)
		}
	}
}

// recolored moves u's contribution from one colour to another after an
// interchange.
func (s *saturation) recolored(u, from, to int) {
	for _, nb := range s.t.adj[u] {
		if !s.done[nb] {
			s.remove(nb, from)
			s.add(nb, to)
		}
	}
}

// next returns the uncoloured vertex with the highest saturation, then the
// highest degree, then the lowest index; -1 when none is left.
//
// Complexity: O(V).
func (s *saturation) next() int {
	best := -1
	for v := range s.sat {
		if s.done[v] {
			continue
		}
		if best < 0 ||
			s.sat[v] > s.sat[best] ||
			(s.sat[v] == s.sat[best] && s.t.deg[v] > s.t.deg[best]) {
			best = v
		}
	}

	return best
}
