package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Recruiter is a recruiter account row, including the password hash. Only
// the db package sees the hash; API responses use types.Recruiter.
type Recruiter struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateRecruiter inserts a recruiter account and returns its ID.
func (db *DB) CreateRecruiter(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO recruiters (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		name, email, passwordHash,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create recruiter: %w", err)
	}
	return id, nil
}

// GetRecruiter retrieves a recruiter by ID. Returns (nil, nil) when not
// found.
func (db *DB) GetRecruiter(ctx context.Context, id uuid.UUID) (*Recruiter, error) {
	return db.getRecruiter(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at
		 FROM recruiters WHERE id = $1`, id)
}

// GetRecruiterByEmail retrieves a recruiter by email. Returns (nil, nil)
// when not found.
func (db *DB) GetRecruiterByEmail(ctx context.Context, email string) (*Recruiter, error) {
	return db.getRecruiter(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at
		 FROM recruiters WHERE email = $1`, email)
}

func (db *DB) getRecruiter(ctx context.Context, query string, arg any) (*Recruiter, error) {
	var recruiter Recruiter
	err := db.pool.QueryRow(ctx, query, arg).Scan(
		&recruiter.ID, &recruiter.Name, &recruiter.Email, &recruiter.PasswordHash,
		&recruiter.CreatedAt, &recruiter.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recruiter: %w", err)
	}
	return &recruiter, nil
}

// EmailExists reports whether a recruiter account already uses the email.
func (db *DB) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM recruiters WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}
