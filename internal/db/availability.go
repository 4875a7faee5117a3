package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/hiring-console/internal/types"
)

// Availability is the stored interview availability for one job. Entries are
// kept as the exact wire-format array so slot order round-trips untouched.
type Availability struct {
	JobID    uuid.UUID
	Timezone string
	Entries  []types.AvailabilityEntry
}

// SaveAvailability upserts a job's availability entries.
func (db *DB) SaveAvailability(ctx context.Context, jobID uuid.UUID, timezone string, entries []types.AvailabilityEntry) error {
	if entries == nil {
		entries = []types.AvailabilityEntry{}
	}
	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal availability entries: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_availability (job_id, timezone, entries)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (job_id) DO UPDATE SET timezone = $2, entries = $3, updated_at = NOW()`,
		jobID, timezone, entriesJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save availability: %w", err)
	}
	return nil
}

// GetAvailability retrieves a job's availability. Returns (nil, nil) when
// none has been configured yet.
func (db *DB) GetAvailability(ctx context.Context, jobID uuid.UUID) (*Availability, error) {
	var availability Availability
	var entriesJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT job_id, timezone, entries FROM job_availability WHERE job_id = $1`,
		jobID,
	).Scan(&availability.JobID, &availability.Timezone, &entriesJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}

	if err := json.Unmarshal(entriesJSON, &availability.Entries); err != nil {
		return nil, fmt.Errorf("failed to parse availability entries for job %s: %w", jobID, err)
	}
	return &availability, nil
}
