// Package validation provides input validation utilities.
package validation

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/HarminderDhillon/twitter-clone/internal/models"
)

var usernameRegex = regexp.MustCompile(`^[a-z0-9_]{3,50}$`)

var reservedUsernames = map[string]struct{}{
	"admin":    {},
	"api":      {},
	"auth":     {},
	"home":     {},
	"search":   {},
	"settings": {},
	"users":    {},
	"posts":    {},
	"trending": {},
	"hashtag":  {},
	"swagger":  {},
	"metrics":  {},
	"login":    {},
	"signup":   {},
	"ws":       {},
}

// ValidateUsername checks username format and reserved names.
// Usernames are compared case-insensitively, so the check runs on the
// lowercased form.
func ValidateUsername(username string) error {
	u := strings.ToLower(username)
	if !usernameRegex.MatchString(u) {
		return models.NewValidationError("Username must be 3-50 characters and contain only letters, numbers, and underscores")
	}
	if _, exists := reservedUsernames[u]; exists {
		return models.NewValidationError("Username is reserved")
	}
	return nil
}

// ValidateEmail checks that email has a valid address form.
func ValidateEmail(email string) error {
	if email == "" {
		return models.NewValidationError("Email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return models.NewValidationError("Email must be a valid address")
	}
	return nil
}

// ValidatePassword checks that a password meets length requirements.
// Passwords are only ever stored as a one-way hash.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return models.NewValidationError("Password must be at least 8 characters long")
	}
	if len(password) > 100 {
		return models.NewValidationError("Password must not exceed 100 characters")
	}
	return nil
}

// ValidateBio checks the bio length limit.
func ValidateBio(bio string) error {
	if len(bio) > 160 {
		return models.NewValidationError("Bio cannot exceed 160 characters")
	}
	return nil
}

// ValidatePostContent checks post content constraints.
func ValidatePostContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Content cannot be blank")
	}
	if len(content) > 280 {
		return models.NewValidationError("Content cannot exceed 280 characters")
	}
	return nil
}
