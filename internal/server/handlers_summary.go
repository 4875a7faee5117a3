package server

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/hiring-console/internal/db"
	"github.com/jonathan/hiring-console/internal/scoring"
	"github.com/jonathan/hiring-console/internal/types"
)

// JobSummaryResponse is the dashboard roll-up for one job
type JobSummaryResponse struct {
	Job               *db.Job                  `json:"job"`
	AvailabilitySet   bool                     `json:"availability_set"`
	AvailabilityCount int                      `json:"availability_count"`
	QuestionCount     int                      `json:"question_count"`
	ApplicantCount    int                      `json:"applicant_count"`
	ActionCounts      map[types.RuleAction]int `json:"action_counts"`
	UnmatchedCount    int                      `json:"unmatched_count"`
}

// handleJobSummary assembles the dashboard summary for a job. The three
// dependent reads are independent, so they run concurrently.
func (s *Server) handleJobSummary(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}

	var (
		availability *db.Availability
		questions    []types.CustomQuestion
		applicants   []types.Applicant
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		availability, err = s.db.GetAvailability(ctx, job.ID)
		return err
	})
	g.Go(func() error {
		var err error
		questions, err = s.db.ListQuestions(ctx, job.ID)
		return err
	})
	g.Go(func() error {
		var err error
		applicants, err = s.db.ListApplicants(ctx, job.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	response := JobSummaryResponse{
		Job:            job,
		QuestionCount:  len(questions),
		ApplicantCount: len(applicants),
		ActionCounts:   make(map[types.RuleAction]int),
	}
	if availability != nil {
		response.AvailabilitySet = true
		response.AvailabilityCount = len(availability.Entries)
	}

	var thresholds map[types.Section]types.SectionThreshold
	var rules []types.AutomationRule
	if job.Automation != nil {
		thresholds = job.Automation.SectionThresholds
		rules = job.Automation.JobRules
	}

	for _, applicant := range applicants {
		outcomes := scoring.ClassifySections(thresholds, applicant.SectionScores)
		fired := scoring.EvaluateRules(rules, outcomes)
		if fired < 0 {
			response.UnmatchedCount++
			continue
		}
		response.ActionCounts[rules[fired].Action]++
	}

	s.jsonResponse(w, http.StatusOK, response)
}
