package server

import (
	"encoding/json"
	"net/http"

	"github.com/runnerr0/beacon/internal/analytics"
)

type recordEventReq struct {
	AppID     string         `json:"app_id"`
	EventType string         `json:"event_type"`
	Version   string         `json:"version"`
	Platform  string         `json:"platform"`
	Locale    string         `json:"locale,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// validate enforces the required fields. The engine itself is
// permissive; callers of RecordEvent own validation.
func (r *recordEventReq) validate() string {
	switch {
	case r.AppID == "":
		return "app_id is required"
	case r.EventType == "":
		return "event_type is required"
	case r.Version == "":
		return "version is required"
	case r.Platform == "":
		return "platform is required"
	}
	return ""
}

func (s *Server) handleRecordEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body := http.MaxBytesReader(w, r.Body, int64(s.cfg.Server.MaxRequestSize))
	var req recordEventReq
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	// Admission control: the engine reports the recent-event count, the
	// configured limit decides.
	limit := s.cfg.RateLimit
	if limit.MaxPerWindow > 0 {
		count, err := s.store.RecentRequestCount(r.Context(), req.AppID, limit.WindowMinutes)
		if err != nil {
			s.log.Error().Err(err).Msg("rate limit lookup failed")
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if count >= int64(limit.MaxPerWindow) {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
	}

	event := &analytics.Event{
		AppID:     req.AppID,
		EventType: req.EventType,
		Version:   req.Version,
		Platform:  req.Platform,
		Locale:    req.Locale,
		Metadata:  req.Metadata,
	}
	result, err := s.store.RecordEvent(r.Context(), event)
	if err != nil {
		s.log.Error().Err(err).Msg("record event failed")
		writeError(w, http.StatusInternalServerError, "failed to record event")
		return
	}

	resp := map[string]any{"status": "ok"}
	if result.RollupWarning != nil {
		resp["rollup_warning"] = result.RollupWarning.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(resp)
}
