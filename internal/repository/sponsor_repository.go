package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/noplanb/backend/internal/database"
	"github.com/noplanb/backend/internal/models"
)

type SponsorRepository struct {
	db *database.DB
}

func NewSponsorRepository(db *database.DB) *SponsorRepository {
	return &SponsorRepository{db: db}
}

const sponsorColumns = `id, name, logo_url, description, website_link, featured, created_at, updated_at`

// List returns sponsors featured-first, then by name ascending.
// featuredOnly restricts to featured sponsors; a zero limit returns all.
func (r *SponsorRepository) List(limit int, featuredOnly bool) ([]models.Sponsor, error) {
	query := `SELECT ` + sponsorColumns + ` FROM sponsors`
	if featuredOnly {
		query += ` WHERE featured = true`
	}
	query += ` ORDER BY featured DESC, name ASC`

	args := []interface{}{}
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}
	defer rows.Close()

	sponsors := []models.Sponsor{}
	for rows.Next() {
		var s models.Sponsor
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.LogoURL,
			&s.Description,
			&s.WebsiteLink,
			&s.Featured,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sponsor: %w", err)
		}
		sponsors = append(sponsors, s)
	}

	return sponsors, rows.Err()
}

// GetByID retrieves one sponsor
func (r *SponsorRepository) GetByID(id uuid.UUID) (*models.Sponsor, error) {
	query := `SELECT ` + sponsorColumns + ` FROM sponsors WHERE id = $1`

	s := &models.Sponsor{}
	err := r.db.QueryRow(query, id).Scan(
		&s.ID,
		&s.Name,
		&s.LogoURL,
		&s.Description,
		&s.WebsiteLink,
		&s.Featured,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get sponsor: %w", database.TranslateError(err))
	}
	return s, nil
}

// Create inserts a new sponsor
func (r *SponsorRepository) Create(s *models.Sponsor) error {
	query := `
		INSERT INTO sponsors (id, name, logo_url, description, website_link, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(
		query,
		s.ID,
		s.Name,
		s.LogoURL,
		s.Description,
		s.WebsiteLink,
		s.Featured,
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sponsor: %w", database.TranslateError(err))
	}

	return nil
}

// Update rewrites the sponsor row by id
func (r *SponsorRepository) Update(s *models.Sponsor) error {
	query := `
		UPDATE sponsors
		SET name = $1, logo_url = $2, description = $3, website_link = $4, featured = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		query,
		s.Name,
		s.LogoURL,
		s.Description,
		s.WebsiteLink,
		s.Featured,
		s.ID,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update sponsor: %w", database.TranslateError(err))
	}

	return nil
}

// Delete removes a sponsor by id
func (r *SponsorRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM sponsors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sponsor: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("failed to delete sponsor: %w", database.ErrNotFound)
	}

	return nil
}

// Count returns the total number of sponsors
func (r *SponsorRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM sponsors`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sponsors: %w", err)
	}
	return count, nil
}

// CountSince returns sponsors created at or after the given time
func (r *SponsorRepository) CountSince(since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM sponsors WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent sponsors: %w", err)
	}
	return count, nil
}
