package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Episode struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	Description  *string    `json:"description,omitempty" db:"description"`
	Guest        *string    `json:"guest,omitempty" db:"guest"`
	SpotifyLink  *string    `json:"spotify_link,omitempty" db:"spotify_link"`
	YoutubeLink  *string    `json:"youtube_link,omitempty" db:"youtube_link"`
	AppleLink    *string    `json:"apple_link,omitempty" db:"apple_link"`
	AmazonLink   *string    `json:"amazon_link,omitempty" db:"amazon_link"`
	Tags         []string   `json:"tags,omitempty" db:"tags"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty" db:"thumbnail_url"`
	Duration     *string    `json:"duration,omitempty" db:"duration"`
	PublishDate  *time.Time `json:"publish_date,omitempty" db:"publish_date"`
	Featured     bool       `json:"featured" db:"featured"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// EpisodeRequest carries the editor form fields for create and update.
// Empty strings mean "not provided" and are stored as NULL.
type EpisodeRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Guest        string   `json:"guest"`
	SpotifyLink  string   `json:"spotify_link"`
	YoutubeLink  string   `json:"youtube_link"`
	AppleLink    string   `json:"apple_link"`
	AmazonLink   string   `json:"amazon_link"`
	Tags         []string `json:"tags"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Duration     string   `json:"duration"`
	PublishDate  string   `json:"publish_date"`
	Featured     bool     `json:"featured"`
}

// Validate checks the form fields in declaration order and returns the
// first violated constraint. No write is attempted when it fails.
func (r *EpisodeRequest) Validate() error {
	if isBlank(r.Title) {
		return fmt.Errorf("title is required")
	}
	if len(r.Title) > 200 {
		return fmt.Errorf("title must be at most 200 characters")
	}
	if r.SpotifyLink != "" && !isValidURL(r.SpotifyLink) {
		return fmt.Errorf("spotify_link must be a valid URL")
	}
	if r.YoutubeLink != "" && !isValidURL(r.YoutubeLink) {
		return fmt.Errorf("youtube_link must be a valid URL")
	}
	if r.AppleLink != "" && !isValidURL(r.AppleLink) {
		return fmt.Errorf("apple_link must be a valid URL")
	}
	if r.AmazonLink != "" && !isValidURL(r.AmazonLink) {
		return fmt.Errorf("amazon_link must be a valid URL")
	}
	if r.ThumbnailURL != "" && !isValidURL(r.ThumbnailURL) {
		return fmt.Errorf("thumbnail_url must be a valid URL")
	}
	if _, err := parseDate(r.PublishDate); err != nil {
		return fmt.Errorf("publish_date must be a date in YYYY-MM-DD format")
	}
	return nil
}

// Apply copies the validated form fields onto an episode record.
func (r *EpisodeRequest) Apply(e *Episode) {
	e.Title = r.Title
	e.Description = optional(r.Description)
	e.Guest = optional(r.Guest)
	e.SpotifyLink = optional(r.SpotifyLink)
	e.YoutubeLink = optional(r.YoutubeLink)
	e.AppleLink = optional(r.AppleLink)
	e.AmazonLink = optional(r.AmazonLink)
	e.Tags = r.Tags
	e.ThumbnailURL = optional(r.ThumbnailURL)
	e.Duration = optional(r.Duration)
	e.PublishDate, _ = parseDate(r.PublishDate)
	e.Featured = r.Featured
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
