package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/hiring-console/internal/types"
)

// AddQuestion appends a custom question to a job, after the existing ones.
func (db *DB) AddQuestion(ctx context.Context, jobID uuid.UUID, question *types.CustomQuestion) (uuid.UUID, error) {
	payload, err := json.Marshal(question)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal question: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO job_questions (job_id, payload, position)
		 VALUES ($1, $2, COALESCE((SELECT MAX(position) + 1 FROM job_questions WHERE job_id = $1), 0))
		 RETURNING id`,
		jobID, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to add question: %w", err)
	}
	return id, nil
}

// ListQuestions returns a job's custom questions in authoring order.
func (db *DB) ListQuestions(ctx context.Context, jobID uuid.UUID) ([]types.CustomQuestion, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, payload FROM job_questions WHERE job_id = $1 ORDER BY position`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var questions []types.CustomQuestion
	for rows.Next() {
		var id uuid.UUID
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		var question types.CustomQuestion
		if err := json.Unmarshal(payload, &question); err != nil {
			return nil, fmt.Errorf("failed to parse question %s: %w", id, err)
		}
		question.ID = id.String()
		questions = append(questions, question)
	}
	return questions, rows.Err()
}

// DeleteQuestion removes one question from a job.
func (db *DB) DeleteQuestion(ctx context.Context, jobID, questionID uuid.UUID) error {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM job_questions WHERE id = $1 AND job_id = $2`,
		questionID, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", questionID, ErrNotFound)
	}
	return nil
}
