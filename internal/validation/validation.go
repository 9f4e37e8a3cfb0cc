package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSeconds coerces raw textual input into a threshold or extension
// duration. Empty input, non-numeric input, and non-positive values are
// rejected; the caller keeps its last committed value in that case.
func ParseSeconds(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be a positive number of seconds")
	}
	return v, nil
}

// ParseConfidence coerces raw textual input into a confidence threshold.
// Only negative input is refused outright; the backend enforces the upper
// bound, the client check is advisory.
func ParseConfidence(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	if v > 1 {
		return 0, fmt.Errorf("must be a decimal fraction between 0 and 1")
	}
	return v, nil
}
