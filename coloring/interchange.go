// SPDX-License-Identifier: MIT
//
// File: interchange.go
// Role: depth-1 Kempe-style swap tried before a vertex opens a new colour.

package coloring

// interchange tries to colour v with an existing colour instead of proposed.
//
// Every colour a < proposed held by exactly one neighbour u of v is a
// candidate, taken in ascending colour order. The first colour b in
// 1..proposed-1 with b != a and b absent from u's neighbourhood is free for
// u: u moves to b and a is returned for v. When no candidate can move the
// call reports ok=false and nothing is changed.
//
// Complexity: O(deg(v) + Σ deg(u) over tried candidates).
func (c *colorer) interchange(v, proposed int) (freed int, ok bool) {
	nbrs := c.t.adj[v]
	for _, u := range nbrs {
		if k := c.color[u]; k > 0 && k < proposed {
			c.count[k]++
			// adjacency is sorted, so the first holder seen is the lowest ID
			if c.count[k] == 1 {
				c.holder[k] = u
			}
		}
	}
	defer func() {
		for k := 1; k < proposed; k++ {
			c.count[k] = 0
		}
	}()

	for a := 1; a < proposed; a++ {
		if c.count[a] != 1 {
			continue
		}
		u := c.holder[a]

		c.candGen++
		for _, w := range c.t.adj[u] {
			if k := c.color[w]; k > 0 {
				c.candSet[k] = c.candGen
			}
		}

		for b := 1; b < proposed; b++ {
			if b == a || c.candSet[b] == c.candGen {
				continue
			}
			c.color[u] = b
			c.swaps++
			if c.onRecolor != nil {
				c.onRecolor(u, a, b)
			}

			return a, true
		}
	}

	return 0, false
}
