package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/hiring-console/internal/db"
	"github.com/jonathan/hiring-console/internal/server/middleware"
)

// JobRequest represents the request body for creating or updating a job
type JobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// authorizedJob parses the {id} path value, loads the job, and checks that
// the authenticated recruiter owns it. Writes the error response and returns
// (nil, false) on any failure. Jobs owned by other recruiters report as not
// found rather than forbidden.
func (s *Server) authorizedJob(w http.ResponseWriter, r *http.Request) (*db.Job, bool) {
	recruiterID, err := middleware.GetRecruiterID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return nil, false
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if job == nil || job.RecruiterID != recruiterID {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return nil, false
	}
	return job, true
}

// handleCreateJob creates a new job posting
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	recruiterID, err := middleware.GetRecruiterID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	jobID, err := s.db.CreateJob(r.Context(), recruiterID, req.Title, req.Description)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil || job == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load created job")
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleListJobs lists the authenticated recruiter's jobs
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	recruiterID, err := middleware.GetRecruiterID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobs, err := s.db.ListJobs(r.Context(), recruiterID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if jobs == nil {
		jobs = []db.Job{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// handleGetJob retrieves one job by ID
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleUpdateJob updates a job's title and description
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}

	var req JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	if err := s.db.UpdateJob(r.Context(), job.ID, req.Title, req.Description); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	updated, err := s.db.GetJob(r.Context(), job.ID)
	if err != nil || updated == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load updated job")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteJob deletes a job and its dependent data
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteJob(r.Context(), job.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
