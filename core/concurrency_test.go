// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	deg, err := g.Degree("X")
	require.NoError(t, err)
	require.Equal(t, num, deg)
}

// TestConcurrentReadersAndWriters mixes mutation with the read-only view
// methods used by the coloring engine.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge("Base", fmt.Sprintf("V%d", id))
		}(i)

		go func() {
			defer wg.Done()
			for _, e := range g.Edges() {
				_ = g.RemoveEdge(e.ID)
			}
		}()

		go func() {
			defer wg.Done()
			for _, v := range g.Vertices() {
				_, _ = g.NeighborIDs(v)
				_, _ = g.Degree(v)
			}
		}()
	}
	wg.Wait()
}
