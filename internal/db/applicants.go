package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/hiring-console/internal/types"
)

// CreateApplicant inserts an applicant with their per-section scores.
func (db *DB) CreateApplicant(ctx context.Context, applicant *types.Applicant) (uuid.UUID, error) {
	scoresJSON, err := json.Marshal(applicant.SectionScores)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal section scores: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO applicants (job_id, name, email, section_scores)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		applicant.JobID, applicant.Name, applicant.Email, scoresJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create applicant: %w", err)
	}
	return id, nil
}

// GetApplicant retrieves one applicant of a job. Returns (nil, nil) when not
// found.
func (db *DB) GetApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*types.Applicant, error) {
	var applicant types.Applicant
	var scoresJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, name, email, section_scores, created_at
		 FROM applicants WHERE id = $1 AND job_id = $2`,
		applicantID, jobID,
	).Scan(&applicant.ID, &applicant.JobID, &applicant.Name, &applicant.Email,
		&scoresJSON, &applicant.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get applicant: %w", err)
	}

	if err := json.Unmarshal(scoresJSON, &applicant.SectionScores); err != nil {
		return nil, fmt.Errorf("failed to parse section scores for applicant %s: %w", applicantID, err)
	}
	return &applicant, nil
}

// ListApplicants returns a job's applicants, newest first.
func (db *DB) ListApplicants(ctx context.Context, jobID uuid.UUID) ([]types.Applicant, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_id, name, email, section_scores, created_at
		 FROM applicants WHERE job_id = $1
		 ORDER BY created_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	defer rows.Close()

	var applicants []types.Applicant
	for rows.Next() {
		var applicant types.Applicant
		var scoresJSON []byte
		if err := rows.Scan(&applicant.ID, &applicant.JobID, &applicant.Name,
			&applicant.Email, &scoresJSON, &applicant.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan applicant: %w", err)
		}
		if err := json.Unmarshal(scoresJSON, &applicant.SectionScores); err != nil {
			return nil, fmt.Errorf("failed to parse section scores for applicant %s: %w", applicant.ID, err)
		}
		applicants = append(applicants, applicant)
	}
	return applicants, rows.Err()
}
