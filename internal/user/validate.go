package user

import (
	"regexp"
	"strings"

	"github.com/cterryc/netlify-two/internal/apperr"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreateInput holds the validated fields for a new user.
type CreateInput struct {
	Name  string
	Email string
	Phone string
}

// ParseNewUser extracts and validates the user fields from a normalized
// request body. All violations are collected before returning, so the
// caller can report every bad field at once.
func ParseNewUser(fields map[string]any) (CreateInput, error) {
	var violated []string

	name, ok := stringField(fields, "name")
	if !ok {
		violated = append(violated, "name")
	}
	email, ok := stringField(fields, "email")
	if !ok || !emailPattern.MatchString(email) {
		violated = append(violated, "email")
	}
	phone, ok := stringField(fields, "phone")
	if !ok {
		violated = append(violated, "phone")
	}

	if len(violated) > 0 {
		return CreateInput{}, apperr.ValidationFailed(violated)
	}
	return CreateInput{Name: name, Email: email, Phone: phone}, nil
}

// stringField reports the trimmed string value under key, or ok=false
// when the key is absent, not a string, or blank.
func stringField(fields map[string]any, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}
