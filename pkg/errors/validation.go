package errors

import (
	"strings"
	"unicode"
)

// ValidateShapeName validates a shape name, typically one arriving from a
// remote catalog index.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateShapeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "shape name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "shape name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "shape name contains invalid control characters")
		}
	}

	return nil
}

// ValidateStyle validates an mxGraph style string. Style strings end up as
// XML attribute values, so control characters are rejected outright.
//
// Validation rules:
//   - Style cannot be empty
//   - Maximum length of 4096 characters
//   - No control characters or null bytes
func ValidateStyle(style string) error {
	if style == "" {
		return New(ErrCodeInvalidInput, "style cannot be empty")
	}

	const maxStyleLength = 4096
	if len(style) > maxStyleLength {
		return New(ErrCodeInvalidInput, "style too long (max %d characters)", maxStyleLength)
	}

	for _, r := range style {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "style contains invalid characters")
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
