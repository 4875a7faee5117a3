package types

import (
	"time"

	"github.com/google/uuid"
)

// Applicant is one candidate who applied to a job, with their per-section
// scores as computed by the screening backend.
type Applicant struct {
	ID            uuid.UUID       `json:"id"`
	JobID         uuid.UUID       `json:"job_id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	SectionScores map[Section]int `json:"sectionScores"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SectionOutcome pairs a section with its classified status for one applicant.
type SectionOutcome struct {
	Section Section       `json:"section"`
	Score   int           `json:"score"`
	Status  SectionStatus `json:"status"`
}
