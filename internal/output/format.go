// Package output holds the error-output format type shared between the
// command layer and its tests.
package output

import (
	"errors"
	"strings"
)

// Format represents the error output format type.
type Format string

const (
	// FormatText is the human-readable single-line format (default).
	FormatText Format = "text"
	// FormatJSON is a JSON error envelope.
	FormatJSON Format = "json"
	// FormatYAML is a YAML error envelope.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatText.
// Returns error if the format is invalid.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid error format (expected text|json|yaml)")
	}
}

// IsStructured reports whether the format is machine-readable structured
// output.
func IsStructured(format Format) bool {
	switch format {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}
