package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/hiring-console/internal/types"
)

// Job is one job posting as stored, with its automation settings attached.
type Job struct {
	ID          uuid.UUID         `json:"id"`
	RecruiterID uuid.UUID         `json:"recruiter_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Automation  *types.Automation `json:"automation,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// CreateJob inserts a job posting and returns its ID.
func (db *DB) CreateJob(ctx context.Context, recruiterID uuid.UUID, title, description string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (recruiter_id, title, description)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		recruiterID, title, description,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job by ID. Returns (nil, nil) when the job does not
// exist.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	var job Job
	var automationJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, recruiter_id, title, description, automation, created_at, updated_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.RecruiterID, &job.Title, &job.Description, &automationJSON,
		&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if automationJSON != nil {
		job.Automation = &types.Automation{}
		if err := json.Unmarshal(automationJSON, job.Automation); err != nil {
			return nil, fmt.Errorf("failed to parse automation for job %s: %w", id, err)
		}
	}

	return &job, nil
}

// ListJobs returns all jobs owned by a recruiter, newest first.
func (db *DB) ListJobs(ctx context.Context, recruiterID uuid.UUID) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, recruiter_id, title, description, created_at, updated_at
		 FROM jobs WHERE recruiter_id = $1
		 ORDER BY created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var job Job
		if err := rows.Scan(&job.ID, &job.RecruiterID, &job.Title, &job.Description,
			&job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// UpdateJob updates a job's title and description.
func (db *DB) UpdateJob(ctx context.Context, id uuid.UUID, title, description string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE jobs SET title = $1, description = $2, updated_at = NOW() WHERE id = $3`,
		title, description, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteJob removes a job and everything hanging off it (availability,
// questions, applicants cascade at the schema level).
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	return nil
}

// SaveAutomation stores the automation payload for a job as JSONB.
func (db *DB) SaveAutomation(ctx context.Context, jobID uuid.UUID, automation *types.Automation) error {
	automationJSON, err := json.Marshal(automation)
	if err != nil {
		return fmt.Errorf("failed to marshal automation: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE jobs SET automation = $1, updated_at = NOW() WHERE id = $2`,
		automationJSON, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to save automation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", jobID, ErrNotFound)
	}
	return nil
}
