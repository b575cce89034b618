package server

import (
	"net/http"

	"github.com/runnerr0/beacon/internal/analytics"
)

// statsResponse mirrors the wire shape dashboards consume. Versions and
// platforms become JSON objects; the underlying query orders them by
// count descending before the maps are built, so consumers that care
// about ranking use the counts, not key order.
type statsResponse struct {
	Today     analytics.WindowStats `json:"today"`
	Week      analytics.WindowStats `json:"week"`
	Month     analytics.WindowStats `json:"month"`
	Versions  map[string]int64      `json:"versions"`
	Platforms map[string]int64      `json:"platforms"`
}

func toCountMap(counts []analytics.ValueCount) map[string]int64 {
	m := make(map[string]int64, len(counts))
	for _, vc := range counts {
		m[vc.Value] = vc.Count
	}
	return m
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stats, err := s.store.Stats(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("stats query failed")
		writeError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	writeJSON(w, statsResponse{
		Today:     stats.Today,
		Week:      stats.Week,
		Month:     stats.Month,
		Versions:  toCountMap(stats.Versions),
		Platforms: toCountMap(stats.Platforms),
	})
}

func (s *Server) handleDailyActive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	days := parseDays(r.URL.Query().Get("days"))
	rows, err := s.store.DailyActive(r.Context(), days)
	if err != nil {
		s.log.Error().Err(err).Msg("daily active query failed")
		writeError(w, http.StatusInternalServerError, "failed to read daily rollup")
		return
	}

	type dailyRow struct {
		Date        string `json:"date"`
		UniqueCount int64  `json:"unique_count"`
		EventCount  int64  `json:"event_count"`
	}
	out := make([]dailyRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, dailyRow{Date: row.Date, UniqueCount: row.UniqueCount, EventCount: row.EventCount})
	}
	writeJSON(w, out)
}

func (s *Server) handleOptimizations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	days := parseDays(r.URL.Query().Get("days"))
	rows, err := s.store.OptimizationsPerDay(r.Context(), days)
	if err != nil {
		s.log.Error().Err(err).Msg("optimizations query failed")
		writeError(w, http.StatusInternalServerError, "failed to count optimizations")
		return
	}

	type countRow struct {
		Date  string `json:"date"`
		Count int64  `json:"count"`
	}
	out := make([]countRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, countRow{Date: row.Date, Count: row.Count})
	}
	writeJSON(w, out)
}

func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !s.authorized(r) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	deleted, err := s.store.CleanupOldEvents(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("cleanup failed")
		writeError(w, http.StatusInternalServerError, "cleanup failed")
		return
	}

	writeJSON(w, map[string]int64{"deleted": deleted})
}
