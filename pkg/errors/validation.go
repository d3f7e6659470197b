package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches "#rgb" and "#rrggbb" colour literals.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a CSS-style hex colour literal.
func ValidateHexColor(field, value string) error {
	if !hexColorRegex.MatchString(value) {
		return New(ErrCodeInvalidConfig, "%s: invalid colour %q (want #rrggbb)", field, value)
	}
	return nil
}

// ValidateColumns validates the calendar column count.
func ValidateColumns(cols int) error {
	if cols < 1 {
		return New(ErrCodeInvalidGeometry, "columns must be at least 1, got %d", cols)
	}
	return nil
}

// ValidateOutputPath validates a file path the document will be written to.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Path cannot name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidInput, "output path %q names a directory", path)
	}

	return nil
}
