// SPDX-License-Identifier: MIT
//
// File: degeneracy.go
// Role: smallest-last removal order over a degree-bucketed working copy.

package coloring

import (
	"cmp"
	"container/heap"
	"slices"
)

// DegeneracyOrder returns the order in which vertices are stripped when a
// minimum-degree vertex (lowest ID among ties) is removed repeatedly, and the
// degeneracy of g: the largest degree seen at removal time.
//
// Colouring in the reverse of this order gives every vertex at most
// degeneracy already-coloured neighbours, so SmallestLast never needs more
// than degeneracy+1 colours. An empty graph yields an empty order and 0.
func DegeneracyOrder[V cmp.Ordered](g Graph[V]) ([]V, int, error) {
	s, err := newSnapshot(g)
	if err != nil {
		return nil, 0, err
	}
	removal, k := degeneracy(&s.topology)

	out := make([]V, len(removal))
	for i, v := range removal {
		out[i] = s.ids[v]
	}

	return out, k, nil
}

// degeneracy computes the removal order on a private copy of the degrees.
//
// buckets[d] is a lazy min-heap of vertices pushed at degree d; an entry is
// live while the vertex is unremoved and still has current degree d. Degrees
// only decrease, so a stale entry never becomes live again. After a removal
// the minimum degree can drop by at most one, so the pointer steps back once
// and scans upward from there.
//
// Complexity: O((V+E) log V) time, O(V+E) memory.
func degeneracy(t *topology) (removal []int, k int) {
	n := t.size()
	if n == 0 {
		return []int{}, 0
	}

	cur := slices.Clone(t.deg)
	removed := make([]bool, n)
	buckets := make([]indexHeap, slices.Max(cur)+1)
	for v := 0; v < n; v++ {
		// ascending pushes keep each bucket heap-ordered
		buckets[cur[v]] = append(buckets[cur[v]], v)
	}

	removal = make([]int, 0, n)
	d := 0
	for len(removal) < n {
		v := -1
		for v < 0 {
			b := &buckets[d]
			for b.Len() > 0 {
				top := heap.Pop(b).(int)
				if !removed[top] && cur[top] == d {
					v = top
					break
				}
			}
			if v < 0 {
				d++
			}
		}

		removed[v] = true
		removal = append(removal, v)
		if d > k {
			k = d
		}
		for _, nb := range t.adj[v] {
			if removed[nb] {
				continue
			}
			cur[nb]--
			heap.Push(&buckets[cur[nb]], nb)
		}
		if d > 0 {
			d--
		}
	}

	return removal, k
}

// indexHeap is a min-heap of vertex indices.
type indexHeap []int

func (h indexHeap) Len() int           { return len(h) }
func (h indexHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *indexHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *indexHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]

	return x
}
