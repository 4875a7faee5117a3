package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/hiring-console/internal/scoring"
	"github.com/jonathan/hiring-console/internal/types"
)

// handleGetAutomation returns a job's automation settings, or null when none
// are configured yet
func (s *Server) handleGetAutomation(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"automation": job.Automation,
	})
}

// handleSaveAutomation stores a job's automation settings. Unlike
// availability saves, an invalid automation payload is rejected outright.
func (s *Server) handleSaveAutomation(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}

	var automation types.Automation
	if err := json.NewDecoder(r.Body).Decode(&automation); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := scoring.ValidateAutomation(&automation); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.db.SaveAutomation(r.Context(), job.ID, &automation); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
