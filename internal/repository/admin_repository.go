package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/noplanb/backend/internal/database"
	"github.com/noplanb/backend/internal/models"
)

type AdminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(email string) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM admins
		WHERE email = $1
	`

	admin := &models.Admin{}
	err := r.db.QueryRow(query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", database.TranslateError(err))
	}

	return admin, nil
}

// GetByID retrieves an admin by id
func (r *AdminRepository) GetByID(id uuid.UUID) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM admins
		WHERE id = $1
	`

	admin := &models.Admin{}
	err := r.db.QueryRow(query, id).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", database.TranslateError(err))
	}

	return admin, nil
}

// Ensure returns the admin with the given email, creating the account with
// the supplied password hash when it does not exist yet. An existing
// account's password is left untouched.
func (r *AdminRepository) Ensure(email, passwordHash string) (*models.Admin, error) {
	admin, err := r.GetByEmail(email)
	if err == nil {
		return admin, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	admin = &models.Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	query := `
		INSERT INTO admins (id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRow(
		query,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.CreatedAt,
		admin.UpdatedAt,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		// Lost a race with a concurrent startup; the row exists now.
		if errors.Is(database.TranslateError(err), database.ErrConflict) {
			return r.GetByEmail(email)
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}
