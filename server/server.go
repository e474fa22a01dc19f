// SPDX-License-Identifier: MIT

// Package server exposes the colouring engine over HTTP.
//
// Routes:
//
//	POST /v1/colorings   colour a graph sent as {"graph": {...}, "strategy": ...}
//	GET  /v1/strategies  list strategy names
//	GET  /healthz        liveness
//	GET  /metrics        Prometheus exposition
package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/chroma/config"
	"github.com/katalvlaran/chroma/metrics"
)

// Server routes API requests. Its configuration can be swapped at runtime.
type Server struct {
	router   chi.Router
	logger   *log.Logger
	recorder *metrics.Recorder
	cfg      atomic.Pointer[config.Config]
}

// New builds a Server. A nil cfg uses config.Default(), a nil logger
// log.Default() and a nil reg a fresh registry.
func New(cfg *config.Config, logger *log.Logger, reg *prometheus.Registry) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	s := &Server{
		logger:   logger,
		recorder: metrics.NewRecorder(reg),
	}
	s.cfg.Store(cfg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Route("/v1", func(r chi.Router) {
		r.Get("/strategies", s.listStrategies)
		r.Post("/colorings", s.createColoring)
	})
	s.router = r

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// SetConfig replaces the configuration used by subsequent requests.
// It matches the signature of config.Loader.OnChange.
func (s *Server) SetConfig(cfg *config.Config) {
	if cfg != nil {
		s.cfg.Store(cfg)
	}
}

// Config returns the configuration in effect.
func (s *Server) Config() *config.Config { return s.cfg.Load() }

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return err
	}
	s.logger.Info("goodbye")
	return nil
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"dur", time.Since(start).Round(time.Microsecond),
				"req_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
