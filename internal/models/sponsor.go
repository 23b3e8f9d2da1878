package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Sponsor struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	LogoURL     *string   `json:"logo_url,omitempty" db:"logo_url"`
	Description *string   `json:"description,omitempty" db:"description"`
	WebsiteLink *string   `json:"website_link,omitempty" db:"website_link"`
	Featured    bool      `json:"featured" db:"featured"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// SponsorRequest carries the editor form fields for create and update.
type SponsorRequest struct {
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url"`
	Description string `json:"description"`
	WebsiteLink string `json:"website_link"`
	Featured    bool   `json:"featured"`
}

// Validate checks the form fields in declaration order and returns the
// first violated constraint.
func (r *SponsorRequest) Validate() error {
	if isBlank(r.Name) {
		return fmt.Errorf("name is required")
	}
	if r.LogoURL != "" && !isValidURL(r.LogoURL) {
		return fmt.Errorf("logo_url must be a valid URL")
	}
	if r.WebsiteLink != "" && !isValidURL(r.WebsiteLink) {
		return fmt.Errorf("website_link must be a valid URL")
	}
	return nil
}

// Apply copies the validated form fields onto a sponsor record.
func (r *SponsorRequest) Apply(s *Sponsor) {
	s.Name = r.Name
	s.LogoURL = optional(r.LogoURL)
	s.Description = optional(r.Description)
	s.WebsiteLink = optional(r.WebsiteLink)
	s.Featured = r.Featured
}
