package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds group and panel identifiers accepted from users.
const maxIDLength = 128

// ValidateID validates a group or panel identifier supplied by a user
// (fixture files, URL path parameters). kind names the identifier in the
// error message.
//
// The rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or whitespace
//   - No path separators
//   - Maximum length of 128 characters
func ValidateID(kind, id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "%s id cannot be empty", kind)
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "%s id too long (max %d characters)", kind, maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "%s id contains invalid characters", kind)
		}
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidInput, "%s id cannot contain path separators", kind)
	}

	return nil
}

// ValidatePath validates a fixture or output file path given on the command
// line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateDimension validates a container width or height.
func ValidateDimension(name string, v float64) error {
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %g", name, v)
	}
	return nil
}
