package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Subscriber struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Email            string    `json:"email" db:"email"`
	Mobile           *string   `json:"mobile,omitempty" db:"mobile"`
	MarketingConsent bool      `json:"marketing_consent" db:"marketing_consent"`
	PrivacyConsent   bool      `json:"privacy_consent" db:"privacy_consent"`
	SubscribedAt     time.Time `json:"subscribed_at" db:"subscribed_at"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// SubscribeRequest is the public subscribe form payload.
type SubscribeRequest struct {
	Email            string `json:"email"`
	Mobile           string `json:"mobile"`
	MarketingConsent bool   `json:"marketing_consent"`
	PrivacyConsent   bool   `json:"privacy_consent"`
}

// Validate checks the form fields in declaration order and returns the
// first violated constraint. Privacy consent must be exactly true for the
// record to be accepted.
func (r *SubscribeRequest) Validate() error {
	if isBlank(r.Email) {
		return fmt.Errorf("email is required")
	}
	if len(r.Email) > 255 {
		return fmt.Errorf("email must be at most 255 characters")
	}
	if !isValidEmail(r.Email) {
		return fmt.Errorf("email must be a valid email address")
	}
	if r.Mobile != "" && !isValidMobile(r.Mobile) {
		return fmt.Errorf("mobile must be a valid phone number")
	}
	if !r.PrivacyConsent {
		return fmt.Errorf("privacy policy must be accepted")
	}
	return nil
}
