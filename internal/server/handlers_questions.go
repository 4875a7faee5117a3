package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/hiring-console/internal/db"
	"github.com/jonathan/hiring-console/internal/types"
)

// handleListQuestions lists a job's custom screening questions in authoring
// order
func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}

	questions, err := s.db.ListQuestions(r.Context(), job.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if questions == nil {
		questions = []types.CustomQuestion{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions": questions,
		"count":     len(questions),
	})
}

// handleAddQuestion appends a custom question to a job
func (s *Server) handleAddQuestion(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}

	var question types.CustomQuestion
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := question.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.db.AddQuestion(r.Context(), job.ID, &question)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	question.ID = id.String()

	s.jsonResponse(w, http.StatusCreated, question)
}

// handleDeleteQuestion removes one custom question from a job
func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	job, ok := s.authorizedJob(w, r)
	if !ok {
		return
	}

	questionID, err := uuid.Parse(r.PathValue("qid"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	if err := s.db.DeleteQuestion(r.Context(), job.ID, questionID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Question not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
