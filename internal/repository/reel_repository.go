package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/noplanb/backend/internal/database"
	"github.com/noplanb/backend/internal/models"
)

type ReelRepository struct {
	db *database.DB
}

func NewReelRepository(db *database.DB) *ReelRepository {
	return &ReelRepository{db: db}
}

const reelColumns = `id, embed_url, caption, thumbnail_url, instagram_id, publish_date, created_at, updated_at`

// List returns reels ordered newest publish date first. A zero limit
// returns everything.
func (r *ReelRepository) List(limit int) ([]models.Reel, error) {
	query := `SELECT ` + reelColumns + ` FROM reels ORDER BY publish_date DESC NULLS LAST, created_at DESC`

	args := []interface{}{}
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reels: %w", err)
	}
	defer rows.Close()

	reels := []models.Reel{}
	for rows.Next() {
		var reel models.Reel
		err := rows.Scan(
			&reel.ID,
			&reel.EmbedURL,
			&reel.Caption,
			&reel.ThumbnailURL,
			&reel.InstagramID,
			&reel.PublishDate,
			&reel.CreatedAt,
			&reel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reel: %w", err)
		}
		reels = append(reels, reel)
	}

	return reels, rows.Err()
}

// GetByID retrieves one reel
func (r *ReelRepository) GetByID(id uuid.UUID) (*models.Reel, error) {
	query := `SELECT ` + reelColumns + ` FROM reels WHERE id = $1`

	reel := &models.Reel{}
	err := r.db.QueryRow(query, id).Scan(
		&reel.ID,
		&reel.EmbedURL,
		&reel.Caption,
		&reel.ThumbnailURL,
		&reel.InstagramID,
		&reel.PublishDate,
		&reel.CreatedAt,
		&reel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get reel: %w", database.TranslateError(err))
	}
	return reel, nil
}

// Create inserts a new reel
func (r *ReelRepository) Create(reel *models.Reel) error {
	query := `
		INSERT INTO reels (id, embed_url, caption, thumbnail_url, instagram_id, publish_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(
		query,
		reel.ID,
		reel.EmbedURL,
		reel.Caption,
		reel.ThumbnailURL,
		reel.InstagramID,
		reel.PublishDate,
		reel.CreatedAt,
		reel.UpdatedAt,
	).Scan(&reel.CreatedAt, &reel.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create reel: %w", database.TranslateError(err))
	}

	return nil
}

// Update rewrites the reel row by id
func (r *ReelRepository) Update(reel *models.Reel) error {
	query := `
		UPDATE reels
		SET embed_url = $1, caption = $2, thumbnail_url = $3, instagram_id = $4, publish_date = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		query,
		reel.EmbedURL,
		reel.Caption,
		reel.ThumbnailURL,
		reel.InstagramID,
		reel.PublishDate,
		reel.ID,
	).Scan(&reel.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update reel: %w", database.TranslateError(err))
	}

	return nil
}

// Delete removes a reel by id
func (r *ReelRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM reels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reel: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("failed to delete reel: %w", database.ErrNotFound)
	}

	return nil
}

// Count returns the total number of reels
func (r *ReelRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM reels`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reels: %w", err)
	}
	return count, nil
}

// CountSince returns reels created at or after the given time
func (r *ReelRepository) CountSince(since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM reels WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent reels: %w", err)
	}
	return count, nil
}
