// Package validation contains field-level validators shared by services.
package validation

import (
	"strings"

	"yatube/internal/models"
)

const maxSlugLen = 20

// Slug validates a group slug: non-empty, at most 20 characters,
// lowercase letters, digits, and hyphens only.
func Slug(slug string) error {
	if slug == "" {
		return models.NewValidationError("Slug is required")
	}
	if len(slug) > maxSlugLen {
		return models.NewValidationError("Slug too long (max 20 characters)")
	}
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return models.NewValidationError("Slug may only contain lowercase letters, digits, and hyphens")
		}
	}
	return nil
}

// Text validates a required free-text field such as a post or comment body.
// Whitespace-only input does not count as content.
func Text(field, text string) error {
	if strings.TrimSpace(text) == "" {
		return models.NewValidationError(field + " is required")
	}
	return nil
}
