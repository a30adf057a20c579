package errors

import (
	"strings"
	"unicode"
)

// ValidateLayoutName validates a user-supplied layout name before it becomes
// part of a storage key or filename.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateLayoutName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "layout name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "layout name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "layout name contains control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "layout name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateSnapshotID validates a snapshot identifier loaded from storage or
// received over the API. IDs are UUID-shaped but any simple opaque token is
// accepted; the check only rejects strings that could escape a storage key.
func ValidateSnapshotID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "snapshot id cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "snapshot id too long (max 64 characters)")
	}
	for _, r := range id {
		valid := r == '-' || r == '_' ||
			(r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z')
		if !valid {
			return New(ErrCodeInvalidInput, "snapshot id contains invalid character %q", r)
		}
	}
	return nil
}
