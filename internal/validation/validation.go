// Package validation holds the client-side form checks run before any
// onboarding write. A validation failure must never produce a network call.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gerdlab/refluxtrack/internal/constants"
)

// Sane bounds for self-reported measurements. The server re-validates; these
// exist to catch typos before a round trip.
const (
	MinAge      = 1
	MaxAge      = 120
	MaxWeightKg = 500
	MaxHeightCm = 260

	MinPasswordLen = 8
)

// RequireName checks the free-text name field.
func RequireName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// ParseAge parses and bounds-checks an age field.
func ParseAge(s string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("age must be a whole number")
	}
	if age < MinAge || age > MaxAge {
		return 0, fmt.Errorf("age must be between %d and %d", MinAge, MaxAge)
	}
	return age, nil
}

// ParseWeight parses and bounds-checks a weight field (kg).
func ParseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("weight must be a number")
	}
	if w <= 0 || w > MaxWeightKg {
		return 0, fmt.Errorf("weight must be greater than 0 and at most %d kg", MaxWeightKg)
	}
	return w, nil
}

// ParseHeight parses and bounds-checks a height field (cm).
func ParseHeight(s string) (float64, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("height must be a number")
	}
	if h <= 0 || h > MaxHeightCm {
		return 0, fmt.Errorf("height must be greater than 0 and at most %d cm", MaxHeightCm)
	}
	return h, nil
}

// ValidateDate checks YYYY-MM-DD format.
func ValidateDate(s string) error {
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return nil
}

// ValidatePassword applies the minimum password rule.
func ValidatePassword(s string) error {
	if len(s) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	return nil
}

// ValidateCompletionLevel checks the 0..3 habit completion scale.
func ValidateCompletionLevel(level int) error {
	if level < 0 || level > constants.MaxCompletionLevel {
		return fmt.Errorf("completion level must be between 0 and %d", constants.MaxCompletionLevel)
	}
	return nil
}
