package models

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	mobilePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{6,19}$`)
)

// isValidURL reports whether s parses as an absolute http(s) URL.
func isValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// isValidEmail reports whether s looks like an email address.
func isValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// isValidMobile reports whether s matches an international phone pattern.
func isValidMobile(s string) bool {
	return mobilePattern.MatchString(s)
}

// isBlank reports whether s is empty after trimming whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// dateLayout is the wire format for publish dates.
const dateLayout = "2006-01-02"

// parseDate parses a publish date string, returning nil for the empty string.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
