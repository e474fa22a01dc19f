package bench_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/bench"
	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/timing"
)

func TestRun_Plan(t *testing.T) {
	var mu sync.Mutex
	observed := 0
	rows, err := bench.Run(context.Background(), bench.Config{
		Sizes:         []int{20, 40},
		Probabilities: []float64{0.1, 0.5, 1},
		Workers:       3,
		Seed:          42,
		Observe: func(*timing.Report) {
			mu.Lock()
			observed++
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	// 6 graphs x 4 strategies x 2 interchange settings.
	require.Len(t, rows, 48)
	assert.Equal(t, 48, observed)

	for i, r := range rows {
		assert.Equal(t, coloring.Strategies[(i/2)%4], r.Strategy, "row %d", i)
		assert.Equal(t, i%2 == 1, r.Interchange, "row %d", i)
		assert.NotEmpty(t, r.RunID)
		assert.Positive(t, r.ColorsUsed)
		if r.P == 1 {
			assert.Equal(t, r.N, r.ColorsUsed, "complete graph needs n colours")
			assert.Equal(t, r.N*(r.N-1)/2, r.Edges)
		}
		if !r.Interchange {
			assert.Zero(t, r.Swaps)
		}
	}
	assert.Equal(t, 20, rows[0].N)
	assert.Equal(t, 0.1, rows[0].P)
	assert.Equal(t, 40, rows[47].N)
}

func TestRun_Reproducible(t *testing.T) {
	cfg := bench.Config{
		Sizes:         []int{30},
		Probabilities: []float64{0.3, 0.6},
		Seed:          7,
	}
	strip := func(rows []bench.Row) []bench.Row {
		for i := range rows {
			rows[i].RunID = ""
			rows[i].Elapsed = 0
		}
		return rows
	}

	cfg.Workers = 1
	a, err := bench.Run(context.Background(), cfg)
	require.NoError(t, err)
	cfg.Workers = 8
	b, err := bench.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, strip(a), strip(b))
}

func TestRun_Errors(t *testing.T) {
	_, err := bench.Run(context.Background(), bench.Config{Sizes: []int{10}})
	assert.ErrorIs(t, err, bench.ErrEmptyPlan)

	_, err = bench.Run(context.Background(), bench.Config{Sizes: []int{10}, Probabilities: []float64{1.5}})
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bench.Run(ctx, bench.Config{Sizes: []int{10}, Probabilities: []float64{0.5}, Seed: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	rows := []bench.Row{
		{Strategy: coloring.StrategyLargestFirst, ColorsUsed: 4, Swaps: 0},
		{Strategy: coloring.StrategyLargestFirst, Interchange: true, ColorsUsed: 3, Swaps: 2},
		{Strategy: coloring.StrategyLargestFirst, ColorsUsed: 6, Swaps: 0},
		{Strategy: coloring.StrategyLargestFirst, Interchange: true, ColorsUsed: 5, Swaps: 1},
	}

	got := bench.Summarize(rows)
	require.Len(t, got, 2)

	assert.False(t, got[0].Interchange)
	assert.Equal(t, 2, got[0].Runs)
	assert.Equal(t, 4, got[0].MinColors)
	assert.Equal(t, 6, got[0].MaxColors)
	assert.InDelta(t, 5.0, got[0].MeanColors, 1e-9)

	assert.True(t, got[1].Interchange)
	assert.Equal(t, 3, got[1].Swaps)
	assert.InDelta(t, 4.0, got[1].MeanColors, 1e-9)
}
