package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds problem IDs and solution names, which become path
// components in the solution store.
const maxNameLength = 128

// ValidateName validates a problem ID or solution name for use as a file
// name. It rejects names that could be used for path traversal.
//
// Rules:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or ".." sequences
//   - No leading dot
//   - Maximum length of 128 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
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
			return New(ErrCodeInvalidName, "name contains invalid characters: %q", pattern)
		}
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidName, "name cannot start with a dot")
	}

	return nil
}

// ValidateIndex reports an out-of-range vertex index found in input data.
// Inside the solver such an index is a programming error and panics; at the
// file boundary it is the user's mistake and becomes an error.
func ValidateIndex(code Code, what string, idx, n int) error {
	if idx < 0 || idx >= n {
		return New(code, "%s references vertex %d, but only %d vertices exist", what, idx, n)
	}
	return nil
}
