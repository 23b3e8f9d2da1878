package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/noplanb/backend/internal/database"
	"github.com/noplanb/backend/internal/models"
)

type EpisodeRepository struct {
	db *database.DB
}

func NewEpisodeRepository(db *database.DB) *EpisodeRepository {
	return &EpisodeRepository{db: db}
}

const episodeColumns = `id, title, description, guest, spotify_link, youtube_link, apple_link, amazon_link, tags, thumbnail_url, duration, publish_date, featured, created_at, updated_at`

// List returns episodes ordered newest publish date first. A zero limit
// returns everything; featuredOnly restricts to featured episodes.
func (r *EpisodeRepository) List(limit int, featuredOnly bool) ([]models.Episode, error) {
	query := `SELECT ` + episodeColumns + ` FROM episodes`
	if featuredOnly {
		query += ` WHERE featured = true`
	}
	query += ` ORDER BY publish_date DESC NULLS LAST, created_at DESC`

	args := []interface{}{}
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}
	defer rows.Close()

	episodes := []models.Episode{}
	for rows.Next() {
		var e models.Episode
		var tags []string
		err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Description,
			&e.Guest,
			&e.SpotifyLink,
			&e.YoutubeLink,
			&e.AppleLink,
			&e.AmazonLink,
			pq.Array(&tags),
			&e.ThumbnailURL,
			&e.Duration,
			&e.PublishDate,
			&e.Featured,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan episode: %w", err)
		}
		e.Tags = tags
		episodes = append(episodes, e)
	}

	return episodes, rows.Err()
}

// GetByID retrieves one episode
func (r *EpisodeRepository) GetByID(id uuid.UUID) (*models.Episode, error) {
	query := `SELECT ` + episodeColumns + ` FROM episodes WHERE id = $1`

	e := &models.Episode{}
	var tags []string
	err := r.db.QueryRow(query, id).Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Guest,
		&e.SpotifyLink,
		&e.YoutubeLink,
		&e.AppleLink,
		&e.AmazonLink,
		pq.Array(&tags),
		&e.ThumbnailURL,
		&e.Duration,
		&e.PublishDate,
		&e.Featured,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get episode: %w", database.TranslateError(err))
	}
	e.Tags = tags
	return e, nil
}

// Create inserts a new episode
func (r *EpisodeRepository) Create(e *models.Episode) error {
	query := `
		INSERT INTO episodes (id, title, description, guest, spotify_link, youtube_link, apple_link, amazon_link, tags, thumbnail_url, duration, publish_date, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(
		query,
		e.ID,
		e.Title,
		e.Description,
		e.Guest,
		e.SpotifyLink,
		e.YoutubeLink,
		e.AppleLink,
		e.AmazonLink,
		pq.Array(e.Tags),
		e.ThumbnailURL,
		e.Duration,
		e.PublishDate,
		e.Featured,
		e.CreatedAt,
		e.UpdatedAt,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create episode: %w", database.TranslateError(err))
	}

	return nil
}

// Update rewrites the episode row by id. Updating a missing id reports
// not-found rather than succeeding silently.
func (r *EpisodeRepository) Update(e *models.Episode) error {
	query := `
		UPDATE episodes
		SET title = $1, description = $2, guest = $3, spotify_link = $4, youtube_link = $5, apple_link = $6, amazon_link = $7, tags = $8, thumbnail_url = $9, duration = $10, publish_date = $11, featured = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		query,
		e.Title,
		e.Description,
		e.Guest,
		e.SpotifyLink,
		e.YoutubeLink,
		e.AppleLink,
		e.AmazonLink,
		pq.Array(e.Tags),
		e.ThumbnailURL,
		e.Duration,
		e.PublishDate,
		e.Featured,
		e.ID,
	).Scan(&e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update episode: %w", database.TranslateError(err))
	}

	return nil
}

// Delete removes an episode by id
func (r *EpisodeRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM episodes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete episode: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("failed to delete episode: %w", database.ErrNotFound)
	}

	return nil
}

// Count returns the total number of episodes
func (r *EpisodeRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM episodes`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count episodes: %w", err)
	}
	return count, nil
}

// CountSince returns episodes created at or after the given time
func (r *EpisodeRepository) CountSince(since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM episodes WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent episodes: %w", err)
	}
	return count, nil
}
