// SPDX-License-Identifier: MIT

// Package metrics exports colouring runs as Prometheus metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/chroma/timing"
)

// Recorder holds the colouring collectors registered on one registry.
type Recorder struct {
	Runs          *prometheus.CounterVec
	Duration      *prometheus.HistogramVec
	ColorsUsed    *prometheus.HistogramVec
	Interchanges  *prometheus.CounterVec
	VerticesTotal *prometheus.CounterVec
}

// NewRecorder registers the collectors on reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Recorder{
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "chroma_colorings_total",
			Help: "Total number of colouring runs, labelled by strategy, interchange and outcome.",
		}, []string{"strategy", "interchange", "outcome"}),

		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chroma_coloring_duration_ms",
			Help:    "Wall-clock duration of successful colouring runs in milliseconds.",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"strategy"}),

		ColorsUsed: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chroma_colors_used",
			Help:    "Number of colours used by successful runs.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"strategy", "interchange"}),

		Interchanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "chroma_interchanges_total",
			Help: "Total number of successful colour interchanges.",
		}, []string{"strategy"}),

		VerticesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "chroma_vertices_colored_total",
			Help: "Total number of vertices coloured.",
		}, []string{"strategy"}),
	}
}

// Observe records one measured run. Failed runs only bump Runs.
func (r *Recorder) Observe(rep *timing.Report) {
	strategy := rep.Strategy.String()
	interchange := strconv.FormatBool(rep.Interchange)

	r.Runs.WithLabelValues(strategy, interchange, rep.Outcome()).Inc()
	if rep.Err != nil {
		return
	}
	r.Duration.WithLabelValues(strategy).Observe(float64(rep.Elapsed) / 1e6)
	r.ColorsUsed.WithLabelValues(strategy, interchange).Observe(float64(rep.ColorsUsed))
	r.Interchanges.WithLabelValues(strategy).Add(float64(rep.Swaps))
	r.VerticesTotal.WithLabelValues(strategy).Add(float64(rep.Vertices))
}
