// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/graphio"
	"github.com/katalvlaran/chroma/timing"
)

// colorRequest is the body of POST /v1/colorings. Omitted fields fall back
// to the [coloring] section of the configuration. An order selects the
// greedy strategy.
type colorRequest struct {
	Graph       graphio.Document `json:"graph"`
	Strategy    string           `json:"strategy,omitempty"`
	Order       []string         `json:"order,omitempty"`
	Interchange *bool            `json:"interchange,omitempty"`
	Seed        *int64           `json:"seed,omitempty"`
	Steps       bool             `json:"steps,omitempty"`
}

type stepJSON struct {
	Index        int     `json:"index"`
	Color        int     `json:"color"`
	MaxColor     int     `json:"max_color"`
	Interchanged bool    `json:"interchanged"`
	AtMs         float64 `json:"at_ms"`
}

type colorResponse struct {
	graphio.Report
	RequestID  string     `json:"request_id,omitempty"`
	PreparedMs float64    `json:"prepared_ms"`
	ElapsedMs  float64    `json:"elapsed_ms"`
	Steps      []stepJSON `json:"steps,omitempty"`
}

type strategyJSON struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

var strategyList = []strategyJSON{
	{Name: coloring.StrategyRandomSequential.String(), Aliases: []string{"rs", "random"}},
	{Name: coloring.StrategyLargestFirst.String(), Aliases: []string{"lf"}},
	{Name: coloring.StrategySmallestLast.String(), Aliases: []string{"sl", "degeneracy"}},
	{Name: coloring.StrategyDSatur.String(), Aliases: []string{"saturation"}},
	{Name: coloring.StrategyGreedy.String(), Aliases: []string{}},
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /v1/strategies
func (s *Server) listStrategies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"strategies": strategyList})
}

// POST /v1/colorings
func (s *Server) createColoring(w http.ResponseWriter, r *http.Request) {
	cfg := s.Config()

	r.Body = http.MaxBytesReader(w, r.Body, int64(cfg.Server.MaxBodyKB)*1024)
	var req colorRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}

	g, err := req.Graph.Graph()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if g.VertexCount() > cfg.Server.MaxVertices || g.EdgeCount() > cfg.Server.MaxEdges {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf(
			"graph too large: %d vertices, %d edges (limits %d, %d)",
			g.VertexCount(), g.EdgeCount(), cfg.Server.MaxVertices, cfg.Server.MaxEdges))
		return
	}

	interchange := cfg.Coloring.Interchange
	if req.Interchange != nil {
		interchange = *req.Interchange
	}
	seed := cfg.Coloring.Seed
	if req.Seed != nil {
		seed = *req.Seed
	}

	ctx := r.Context()
	if cfg.Coloring.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Coloring.TimeoutMs)*time.Millisecond)
		defer cancel()
	}
	copts := []coloring.Option{
		coloring.WithContext(ctx),
		coloring.WithInterchange(interchange),
		coloring.WithSeed(seed),
	}

	var (
		res *coloring.Result[string]
		rep *timing.Report
	)
	if req.Order != nil || req.Strategy == coloring.StrategyGreedy.String() {
		res, rep, err = timing.MeasureGreedy(g, req.Order, copts)
	} else {
		name := req.Strategy
		if name == "" {
			name = cfg.Coloring.Strategy
		}
		strategy, perr := coloring.ParseStrategy(name)
		if perr != nil {
			writeError(w, http.StatusBadRequest, perr.Error())
			return
		}
		res, rep, err = timing.Measure(g, strategy, copts)
	}
	s.recorder.Observe(rep)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	resp := colorResponse{
		Report:     graphio.NewReport(g, res, rep.RunID, rep.Elapsed),
		RequestID:  middleware.GetReqID(r.Context()),
		PreparedMs: ms(rep.Prepared),
		ElapsedMs:  ms(rep.Elapsed),
	}
	if req.Steps {
		resp.Steps = make([]stepJSON, len(rep.Steps))
		for i, st := range rep.Steps {
			resp.Steps[i] = stepJSON{
				Index:        st.Index,
				Color:        st.Color,
				MaxColor:     st.MaxColor,
				Interchanged: st.Interchanged,
				AtMs:         ms(st.At),
			}
		}
	}
	s.logger.Info("coloring done",
		"run_id", rep.RunID, "strategy", rep.Strategy, "vertices", rep.Vertices,
		"colors", rep.ColorsUsed, "swaps", rep.Swaps, "elapsed", rep.Elapsed)
	writeJSON(w, http.StatusOK, resp)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled):
		return 499
	case errors.Is(err, coloring.ErrInvalidGraph), errors.Is(err, coloring.ErrInvalidOrder):
		return http.StatusUnprocessableEntity
	case errors.Is(err, coloring.ErrUnknownStrategy), errors.Is(err, coloring.ErrOptionViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func ms(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
