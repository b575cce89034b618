// Package server exposes the analytics engine over HTTP for client
// apps that report events and dashboards that read aggregates. The
// engine itself stays policy-free; request validation and rate-limit
// admission decisions live here.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/runnerr0/beacon/internal/analytics"
	"github.com/runnerr0/beacon/internal/config"
)

type Server struct {
	store analytics.Store
	cfg   *config.Config
	log   zerolog.Logger
	srv   *http.Server
	lis   net.Listener
}

// New builds a Server around an already-opened store.
func New(store analytics.Store, cfg *config.Config, logger zerolog.Logger) *Server {
	s := &Server{store: store, cfg: cfg, log: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/healthz", s.handleHealth)
	mux.HandleFunc("/v1/events", s.handleRecordEvent)
	mux.HandleFunc("/v1/stats", s.handleStats)
	mux.HandleFunc("/v1/stats/daily", s.handleDailyActive)
	mux.HandleFunc("/v1/stats/optimizations", s.handleOptimizations)
	mux.HandleFunc("/v1/admin/cleanup", s.handleCleanup)

	s.srv = &http.Server{Handler: s.withRequestID(cors(mux))}
	return s
}

// Handler returns the fully wrapped HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	s.log.Info().Str("addr", addr).Msg("analytics server listening")

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRequestID tags every request with an id and logs its outcome.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		start := time.Now()
		next.ServeHTTP(w, r)

		s.log.Debug().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}
