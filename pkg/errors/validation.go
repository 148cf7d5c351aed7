package errors

import (
	"strings"
)

// engineNames lists the engines the layout facade dispatches to.
var engineNames = []string{"force", "tree", "seriesparallel", "orthogonal", "hierarchic"}

// ValidateEngine validates a layout engine name.
// Names are matched case-insensitively.
func ValidateEngine(name string) error {
	if name == "" {
		return New(ErrCodeUnknownEngine, "engine name cannot be empty")
	}
	lower := strings.ToLower(name)
	for _, n := range engineNames {
		if n == lower {
			return nil
		}
	}
	return New(ErrCodeUnknownEngine, "unknown engine %q (want one of %s)", name, strings.Join(engineNames, ", "))
}

// ValidateOrientation validates an orientation letter (N, E, S or W).
// The empty string is accepted and means the default, N.
func ValidateOrientation(o string) error {
	switch strings.ToUpper(o) {
	case "", "N", "E", "S", "W":
		return nil
	}
	return New(ErrCodeInvalidConfig, "invalid orientation %q (want N, E, S or W)", o)
}

// ValidateFormat validates an output format name.
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case "json", "svg", "dot", "png":
		return nil
	}
	return New(ErrCodeInvalidFormat, "unsupported output format %q", format)
}

// ValidatePositive validates that a numeric option is strictly positive.
func ValidatePositive(name string, v float64) error {
	if v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateNonNegative validates that a numeric option is zero or positive.
func ValidateNonNegative(name string, v float64) error {
	if v < 0 {
		return New(ErrCodeInvalidConfig, "%s must not be negative, got %g", name, v)
	}
	return nil
}
