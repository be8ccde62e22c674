package errors

import (
	"maps"
	"math"
	"slices"
	"strings"
)

// ValidateViewport checks that both dimensions are finite and not negative.
// Zero is allowed: a zero-sized viewport lays out no items.
func ValidateViewport(width, height float64) error {
	for _, v := range []float64{width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidViewport, "viewport dimensions must be finite (got %vx%v)", width, height)
		}
		if v < 0 {
			return New(ErrCodeInvalidViewport, "viewport dimensions cannot be negative (got %vx%v)", width, height)
		}
	}
	return nil
}

// ValidateFontSize checks a font size in points. Zero selects the default.
func ValidateFontSize(size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) || size < 0 {
		return New(ErrCodeInvalidInput, "font size must be a non-negative number (got %v)", size)
	}
	if size > 512 {
		return New(ErrCodeInvalidInput, "font size too large (max 512pt, got %v)", size)
	}
	return nil
}

// ValidateFormats checks every requested output format against the allowed set.
func ValidateFormats(formats []string, allowed map[string]bool) error {
	if len(formats) == 0 {
		return New(ErrCodeInvalidFormat, "at least one output format is required")
	}
	for _, f := range formats {
		if !allowed[f] {
			return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", f, strings.Join(sortedKeys(allowed), ", "))
		}
	}
	return nil
}

// ValidateLabel rejects labels that cannot be rendered as SVG text.
func ValidateLabel(label string) error {
	if len(label) > 4096 {
		return New(ErrCodeInvalidInput, "label too long (max 4096 bytes)")
	}
	if strings.ContainsRune(label, '\x00') {
		return New(ErrCodeInvalidInput, "label contains a null byte")
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	return slices.Sorted(maps.Keys(m))
}
