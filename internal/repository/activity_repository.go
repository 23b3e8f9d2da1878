package repository

import (
	"fmt"

	"github.com/noplanb/backend/internal/models"

	"github.com/noplanb/backend/internal/database"
)

// ActivityRepository appends and reads the admin action log.
type ActivityRepository struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends a log entry
func (r *ActivityRepository) Create(a *models.Activity) error {
	query := `
		INSERT INTO admin_activities (id, admin_id, activity_type, description, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	var metadata interface{}
	if len(a.Metadata) > 0 {
		metadata = []byte(a.Metadata)
	}

	err := r.db.QueryRow(
		query,
		a.ID,
		a.AdminID,
		a.ActivityType,
		a.Description,
		metadata,
		a.CreatedAt,
	).Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", database.TranslateError(err))
	}

	return nil
}

// ListRecent returns the newest entries up to limit
func (r *ActivityRepository) ListRecent(limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, admin_id, activity_type, description, metadata, created_at
		FROM admin_activities
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		var metadata []byte
		err := rows.Scan(
			&a.ID,
			&a.AdminID,
			&a.ActivityType,
			&a.Description,
			&metadata,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		a.Metadata = metadata
		activities = append(activities, a)
	}

	return activities, rows.Err()
}
