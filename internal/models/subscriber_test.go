package models

import (
	"strings"
	"testing"
)

func TestSubscribeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SubscribeRequest
		wantErr bool
	}{
		{
			name:    "Valid subscription",
			req:     SubscribeRequest{Email: "listener@example.com", PrivacyConsent: true},
			wantErr: false,
		},
		{
			name: "Valid with mobile",
			req: SubscribeRequest{
				Email:          "listener@example.com",
				Mobile:         "+44 7700 900123",
				PrivacyConsent: true,
			},
			wantErr: false,
		},
		{
			name:    "Empty email",
			req:     SubscribeRequest{Email: "", PrivacyConsent: true},
			wantErr: true,
		},
		{
			name:    "Invalid email",
			req:     SubscribeRequest{Email: "not-an-email", PrivacyConsent: true},
			wantErr: true,
		},
		{
			name: "Email too long",
			req: SubscribeRequest{
				Email:          strings.Repeat("a", 250) + "@example.com",
				PrivacyConsent: true,
			},
			wantErr: true,
		},
		{
			name: "Invalid mobile",
			req: SubscribeRequest{
				Email:          "listener@example.com",
				Mobile:         "call me maybe",
				PrivacyConsent: true,
			},
			wantErr: true,
		},
		{
			name:    "Missing privacy consent",
			req:     SubscribeRequest{Email: "listener@example.com", PrivacyConsent: false},
			wantErr: true,
		},
		{
			name: "Marketing consent alone is not enough",
			req: SubscribeRequest{
				Email:            "listener@example.com",
				MarketingConsent: true,
				PrivacyConsent:   false,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("SubscribeRequest.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubscribeRequest_ValidateFirstError(t *testing.T) {
	req := SubscribeRequest{Email: "bad", Mobile: "worse", PrivacyConsent: false}
	err := req.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "email must be a valid email address" {
		t.Errorf("expected the email error first, got %q", err.Error())
	}
}

func TestReelRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ReelRequest
		wantErr bool
	}{
		{
			name:    "Valid reel",
			req:     ReelRequest{EmbedURL: "https://youtube.com/embed/abc"},
			wantErr: false,
		},
		{
			name:    "Empty embed URL",
			req:     ReelRequest{EmbedURL: ""},
			wantErr: true,
		},
		{
			name:    "Invalid embed URL",
			req:     ReelRequest{EmbedURL: "nope"},
			wantErr: true,
		},
		{
			name: "Caption too long",
			req: ReelRequest{
				EmbedURL: "https://youtube.com/embed/abc",
				Caption:  strings.Repeat("x", 501),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("ReelRequest.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSponsorRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SponsorRequest
		wantErr bool
	}{
		{
			name:    "Valid sponsor",
			req:     SponsorRequest{Name: "Acme Coffee"},
			wantErr: false,
		},
		{
			name:    "Empty name",
			req:     SponsorRequest{Name: ""},
			wantErr: true,
		},
		{
			name:    "Invalid website",
			req:     SponsorRequest{Name: "Acme Coffee", WebsiteLink: "acme"},
			wantErr: true,
		},
		{
			name: "Valid with logo and website",
			req: SponsorRequest{
				Name:        "Acme Coffee",
				LogoURL:     "https://cdn.example.com/acme.png",
				WebsiteLink: "https://acme.example.com",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("SponsorRequest.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
