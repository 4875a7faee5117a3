package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/hiring-console/internal/config"
	"github.com/jonathan/hiring-console/internal/db"
	"github.com/jonathan/hiring-console/internal/types"
)

// AuthStore is the subset of db operations the recruiter service needs.
// It keeps the service testable without a database.
type AuthStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateRecruiter(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetRecruiter(ctx context.Context, id uuid.UUID) (*db.Recruiter, error)
	GetRecruiterByEmail(ctx context.Context, email string) (*db.Recruiter, error)
}

// RecruiterService provides business logic for recruiter account operations
type RecruiterService struct {
	store          AuthStore
	passwordConfig *config.PasswordConfig
}

// NewRecruiterService creates a new RecruiterService with the given dependencies
func NewRecruiterService(store AuthStore, passwordConfig *config.PasswordConfig) *RecruiterService {
	return &RecruiterService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// toAPIRecruiter converts db.Recruiter to types.Recruiter, excluding the
// password hash.
func toAPIRecruiter(row *db.Recruiter) *types.Recruiter {
	if row == nil {
		return nil
	}
	return &types.Recruiter{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

// Register creates a new recruiter account with password authentication
func (s *RecruiterService) Register(ctx context.Context, req *types.RegisterRequest) (*types.Recruiter, error) {
	exists, err := s.store.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	recruiterID, err := s.store.CreateRecruiter(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create recruiter: %w", err)
	}

	row, err := s.store.GetRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created recruiter: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("created recruiter not found: %s", recruiterID)
	}

	return toAPIRecruiter(row), nil
}

// Login authenticates a recruiter and returns the account data
func (s *RecruiterService) Login(ctx context.Context, req *types.LoginRequest) (*types.Recruiter, error) {
	row, err := s.store.GetRecruiterByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get recruiter by email: %w", err)
	}

	// Unknown email and wrong password return the same generic error.
	if row == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, row.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return toAPIRecruiter(row), nil
}
