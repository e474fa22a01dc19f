package metrics_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/metrics"
	"github.com/katalvlaran/chroma/timing"
)

func TestRecorder_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	rec.Observe(&timing.Report{
		Strategy:    coloring.StrategyDSatur,
		Interchange: true,
		Vertices:    10,
		ColorsUsed:  3,
		Swaps:       2,
		Elapsed:     2 * time.Millisecond,
	})
	rec.Observe(&timing.Report{
		Strategy: coloring.StrategyDSatur,
		Vertices: 5,
		Err:      errors.New("boom"),
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Runs.WithLabelValues("dsatur", "true", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Runs.WithLabelValues("dsatur", "false", "error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Interchanges.WithLabelValues("dsatur")))
	assert.Equal(t, 10.0, testutil.ToFloat64(rec.VerticesTotal.WithLabelValues("dsatur")))

	expected := `
# HELP chroma_colors_used Number of colours used by successful runs.
# TYPE chroma_colors_used histogram
chroma_colors_used_bucket{interchange="true",strategy="dsatur",le="1"} 0
chroma_colors_used_bucket{interchange="true",strategy="dsatur",le="2"} 0
chroma_colors_used_bucket{interchange="true",strategy="dsatur",le="4"} 1
chroma_colors_used_bucket{interchange="true",strategy="dsatur",le="8"} 1
chroma_colors_used_bucket{interchange="true",strategy="dsatur",le="16"} 1
chroma_colors_used_bucket{interchange="true",strategy="dsatur",le="32"} 1
chroma_colors_used_bucket{interchange="true",strategy="dsatur",le="64"} 1
chroma_colors_used_bucket{interchange="true",strategy="dsatur",le="128"} 1
chroma_colors_used_bucket{interchange="true",strategy="dsatur",le="256"} 1
chroma_colors_used_bucket{interchange="true",strategy="dsatur",le="512"} 1
chroma_colors_used_bucket{interchange="true",strategy="dsatur",le="+Inf"} 1
chroma_colors_used_sum{interchange="true",strategy="dsatur"} 3
chroma_colors_used_count{interchange="true",strategy="dsatur"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "chroma_colors_used"))
}

func TestRecorder_MeasuredRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	g := cycleView(7)
	for _, s := range coloring.Strategies {
		_, rep, err := timing.Measure[int](g, s, []coloring.Option{coloring.WithSeed(5)})
		require.NoError(t, err)
		rec.Observe(rep)
	}

	for _, s := range coloring.Strategies {
		assert.Equal(t, 1.0, testutil.ToFloat64(rec.Runs.WithLabelValues(s.String(), "false", "ok")), s.String())
		assert.Equal(t, 7.0, testutil.ToFloat64(rec.VerticesTotal.WithLabelValues(s.String())), s.String())
	}
	assert.Equal(t, 4, testutil.CollectAndCount(rec.Duration))
}

func TestNewRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)
	assert.Panics(t, func() { metrics.NewRecorder(reg) })
}

// cycle is a minimal Graph View over int IDs.
type cycle int

func cycleView(n int) cycle { return cycle(n) }

func (c cycle) VertexCount() int { return int(c) }

func (c cycle) Vertices() []int {
	vs := make([]int, int(c))
	for i := range vs {
		vs[i] = i
	}
	return vs
}

func (c cycle) NeighborIDs(v int) ([]int, error) {
	n := int(c)
	a, b := (v+n-1)%n, (v+1)%n
	if a > b {
		a, b = b, a
	}
	return []int{a, b}, nil
}

func (c cycle) Degree(int) (int, error) { return 2, nil }
