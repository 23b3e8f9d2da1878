package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Reel struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	EmbedURL     string     `json:"embed_url" db:"embed_url"`
	Caption      *string    `json:"caption,omitempty" db:"caption"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty" db:"thumbnail_url"`
	InstagramID  *string    `json:"instagram_id,omitempty" db:"instagram_id"`
	PublishDate  *time.Time `json:"publish_date,omitempty" db:"publish_date"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// ReelRequest carries the editor form fields for create and update.
type ReelRequest struct {
	EmbedURL     string `json:"embed_url"`
	Caption      string `json:"caption"`
	ThumbnailURL string `json:"thumbnail_url"`
	InstagramID  string `json:"instagram_id"`
	PublishDate  string `json:"publish_date"`
}

// Validate checks the form fields in declaration order and returns the
// first violated constraint.
func (r *ReelRequest) Validate() error {
	if isBlank(r.EmbedURL) {
		return fmt.Errorf("embed_url is required")
	}
	if !isValidURL(r.EmbedURL) {
		return fmt.Errorf("embed_url must be a valid URL")
	}
	if len(r.Caption) > 500 {
		return fmt.Errorf("caption must be at most 500 characters")
	}
	if r.ThumbnailURL != "" && !isValidURL(r.ThumbnailURL) {
		return fmt.Errorf("thumbnail_url must be a valid URL")
	}
	if _, err := parseDate(r.PublishDate); err != nil {
		return fmt.Errorf("publish_date must be a date in YYYY-MM-DD format")
	}
	return nil
}

// Apply copies the validated form fields onto a reel record.
func (r *ReelRequest) Apply(reel *Reel) {
	reel.EmbedURL = r.EmbedURL
	reel.Caption = optional(r.Caption)
	reel.ThumbnailURL = optional(r.ThumbnailURL)
	reel.InstagramID = optional(r.InstagramID)
	reel.PublishDate, _ = parseDate(r.PublishDate)
}
