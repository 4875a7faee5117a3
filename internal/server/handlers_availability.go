package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/hiring-console/internal/config"
	"github.com/jonathan/hiring-console/internal/schedule"
	"github.com/jonathan/hiring-console/internal/types"
)

// SaveAvailabilityResponse is the response for availability writes. The
// validation result is advisory; the payload is saved either way so
// recruiters never lose edits to a warning.
type SaveAvailabilityResponse struct {
	Status     string          `json:"status"`
	Validation schedule.Result `json:"validation"`
}

// handleGetAvailability returns a job's interview availability in the wire
// envelope the scheduling UI consumes
func (s *Server) handleGetAvailability(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}

	availability, err := s.db.GetAvailability(r.Context(), job.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	response := types.AvailabilityResponse{
		Availability: types.AvailabilityPayload{
			Timezone:       s.timezone,
			Availabilities: []types.AvailabilityEntry{},
		},
	}
	if availability != nil {
		response.Status = true
		response.Availability.Timezone = config.ResolveTimezone(availability.Timezone)
		if availability.Entries != nil {
			response.Availability.Availabilities = availability.Entries
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleSaveAvailability stores a job's interview availability. The request
// body is the bare entry array; the object envelope with timezone appears
// only on reads. Structurally broken payloads (unknown days, duplicate
// dates) are rejected; overlap and gap findings are returned but never block
// the save.
func (s *Server) handleSaveAvailability(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}

	var entries []types.AvailabilityEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	weekly, dates, err := types.SchedulesFromEntries(entries)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	validation := mergeResults(schedule.ValidateWeekly(weekly), schedule.ValidateDates(dates))

	timezone := s.timezone
	if tz := r.URL.Query().Get("timezone"); tz != "" {
		timezone = config.ResolveTimezone(tz)
	}
	if err := s.db.SaveAvailability(r.Context(), job.ID, timezone, entries); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SaveAvailabilityResponse{
		Status:     "ok",
		Validation: validation,
	})
}

// mergeResults combines the weekly and date-specific validation results into
// one.
func mergeResults(a, b schedule.Result) schedule.Result {
	merged := schedule.Result{
		Errors:   append(append([]string{}, a.Errors...), b.Errors...),
		Warnings: append(append([]string{}, a.Warnings...), b.Warnings...),
	}
	merged.IsValid = len(merged.Errors) == 0
	return merged
}
