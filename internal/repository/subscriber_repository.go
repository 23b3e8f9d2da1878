package repository

import (
	"fmt"
	"time"

	"github.com/noplanb/backend/internal/database"
	"github.com/noplanb/backend/internal/models"
)

type SubscriberRepository struct {
	db *database.DB
}

func NewSubscriberRepository(db *database.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// Create inserts a new subscriber. A duplicate email surfaces as
// database.ErrConflict so the caller can treat it as "already subscribed"
// rather than a failure.
func (r *SubscriberRepository) Create(s *models.Subscriber) error {
	query := `
		INSERT INTO subscribers (id, email, mobile, marketing_consent, privacy_consent, subscribed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING subscribed_at, created_at
	`

	err := r.db.QueryRow(
		query,
		s.ID,
		s.Email,
		s.Mobile,
		s.MarketingConsent,
		s.PrivacyConsent,
		s.SubscribedAt,
		s.CreatedAt,
	).Scan(&s.SubscribedAt, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create subscriber: %w", database.TranslateError(err))
	}

	return nil
}

// List returns subscribers newest first
func (r *SubscriberRepository) List() ([]models.Subscriber, error) {
	query := `
		SELECT id, email, mobile, marketing_consent, privacy_consent, subscribed_at, created_at
		FROM subscribers
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := []models.Subscriber{}
	for rows.Next() {
		var s models.Subscriber
		err := rows.Scan(
			&s.ID,
			&s.Email,
			&s.Mobile,
			&s.MarketingConsent,
			&s.PrivacyConsent,
			&s.SubscribedAt,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, s)
	}

	return subscribers, rows.Err()
}

// ListSignupTimes returns subscriber creation times oldest first, used for
// the growth chart.
func (r *SubscriberRepository) ListSignupTimes() ([]time.Time, error) {
	rows, err := r.db.Query(`SELECT created_at FROM subscribers ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriber signup times: %w", err)
	}
	defer rows.Close()

	times := []time.Time{}
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan signup time: %w", err)
		}
		times = append(times, t)
	}

	return times, rows.Err()
}

// Count returns the total number of subscribers
func (r *SubscriberRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM subscribers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

// CountSince returns subscribers created at or after the given time
func (r *SubscriberRepository) CountSince(since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM subscribers WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent subscribers: %w", err)
	}
	return count, nil
}
