package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// roomNameRegex matches the room names the program parser produces and
// accepts in override tables: template names plus numbered variants
// such as Bedroom_2 or Bathroom_3.
var roomNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidateRoomName validates a room name used to key override tables.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Letters, digits, and underscores only, starting with a letter
//   - Maximum length of 64 characters
func ValidateRoomName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidProgram, "room name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidProgram, "room name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidProgram, "room name contains invalid control characters")
		}
	}

	if !roomNameRegex.MatchString(name) {
		return New(ErrCodeInvalidProgram, "invalid room name: %q", name)
	}

	return nil
}

// ValidatePath validates an output file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
