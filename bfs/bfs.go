// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker holds the mutable state of one traversal. visited may be shared
// across walks so Components can continue where the previous walk ended.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	head    int
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g from startID.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	w := newWalker(g, o, make(map[string]bool, g.VertexCount()))
	return w.res, w.walk(startID)
}

func newWalker(g *core.Graph, o Options, visited map[string]bool) *walker {
	n := g.VertexCount()
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: visited,
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
}

// walk explores from start until the queue drains, an error occurs or the
// context is cancelled.
func (w *walker) walk(start string) error {
	w.enqueue(start, 0, "")
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		nbrs, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("%w: neighbors of %q: %w", ErrNeighbors, item.id, err)
		}
		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range nbrs {
			if w.visited[nb] || !w.opts.FilterNeighbor(item.id, nb) {
				continue
			}
			w.enqueue(nb, next, item.id)
		}
	}

	return nil
}

func (w *walker) enqueue(id string, depth int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}
