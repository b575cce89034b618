package server

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeJSON writes a 200 JSON response with the given data.
func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// parseDays parses a days query parameter, defaulting to 30 for empty
// or invalid values.
func parseDays(s string) int {
	if s == "" {
		return 30
	}
	if days, err := strconv.Atoi(s); err == nil && days > 0 {
		return days
	}
	return 30
}

// authorized checks the bearer token when one is configured. An empty
// configured token leaves admin endpoints open (local deployments).
func (s *Server) authorized(r *http.Request) bool {
	token := s.cfg.Server.AuthToken
	if token == "" {
		return true
	}
	return r.Header.Get("Authorization") == "Bearer "+token
}
