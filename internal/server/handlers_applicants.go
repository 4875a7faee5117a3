package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/hiring-console/internal/scoring"
	"github.com/jonathan/hiring-console/internal/types"
)

// ApplicantRequest represents the request body for adding an applicant
type ApplicantRequest struct {
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	SectionScores map[types.Section]int `json:"sectionScores"`
}

// ClassificationResponse is the per-applicant scoring preview: each scored
// section's band, plus the automation rule that fires for this applicant,
// if any.
type ClassificationResponse struct {
	ApplicantID uuid.UUID              `json:"applicant_id"`
	Sections    []types.SectionOutcome `json:"sections"`
	FiredRule   int                    `json:"fired_rule"`
	Action      types.RuleAction       `json:"action,omitempty"`
	Preview     string                 `json:"preview,omitempty"`
}

// handleCreateApplicant adds an applicant with their per-section scores
func (s *Server) handleCreateApplicant(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}

	var req ApplicantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	for section, score := range req.SectionScores {
		if !section.IsValid() {
			s.errorResponse(w, http.StatusBadRequest, "unknown section: "+string(section))
			return
		}
		if score < 0 || score > 100 {
			s.errorResponse(w, http.StatusBadRequest, "section scores must be between 0 and 100")
			return
		}
	}

	applicant := &types.Applicant{
		JobID:         job.ID,
		Name:          req.Name,
		Email:         req.Email,
		SectionScores: req.SectionScores,
	}

	id, err := s.db.CreateApplicant(r.Context(), applicant)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	created, err := s.db.GetApplicant(r.Context(), job.ID, id)
	if err != nil || created == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load created applicant")
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

// handleListApplicants lists a job's applicants
func (s *Server) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}

	applicants, err := s.db.ListApplicants(r.Context(), job.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if applicants == nil {
		applicants = []types.Applicant{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"applicants": applicants,
		"count":      len(applicants),
	})
}

// handleClassifyApplicant classifies an applicant's section scores against
// the job's thresholds and reports which automation rule would fire. Jobs
// without automation settings classify everything as a pass with no rule.
func (s *Server) handleClassifyApplicant(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}

	applicantID, err := uuid.Parse(r.PathValue("aid"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid applicant ID")
		return
	}

	applicant, err := s.db.GetApplicant(r.Context(), job.ID, applicantID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if applicant == nil {
		s.errorResponse(w, http.StatusNotFound, "Applicant not found")
		return
	}

	var thresholds map[types.Section]types.SectionThreshold
	var rules []types.AutomationRule
	if job.Automation != nil {
		thresholds = job.Automation.SectionThresholds
		rules = job.Automation.JobRules
	}

	outcomes := scoring.ClassifySections(thresholds, applicant.SectionScores)

	response := ClassificationResponse{
		ApplicantID: applicant.ID,
		Sections:    outcomes,
		FiredRule:   scoring.EvaluateRules(rules, outcomes),
	}
	if response.FiredRule >= 0 {
		rule := rules[response.FiredRule]
		response.Action = rule.Action
		response.Preview = scoring.PreviewText(rule)
	}

	s.jsonResponse(w, http.StatusOK, response)
}
