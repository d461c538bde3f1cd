package cli

import (
	"strconv"
	"strings"
	"time"
)

// ValidationError describes why a single input field was rejected. The menu
// loop re-prompts on validation errors; they never reach the core.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// dateOnly is the accepted calendar date format.
const dateOnly = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, *ValidationError) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &ValidationError{Field: "date", Reason: "required"}
	}
	parsed, err := time.Parse(dateOnly, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: "must be a YYYY-MM-DD date"}
	}
	return parsed, nil
}

// ParseAmount parses a strictly positive decimal amount.
func ParseAmount(s string) (float64, *ValidationError) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Field: "amount", Reason: "required"}
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ValidationError{Field: "amount", Reason: "must be a number"}
	}
	if value <= 0 {
		return 0, &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	return value, nil
}

// ParseChoice parses a menu choice in the inclusive range [min, max].
func ParseChoice(s string, min, max int) (int, *ValidationError) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Field: "choice", Reason: "required"}
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{Field: "choice", Reason: "must be a number"}
	}
	if value < min || value > max {
		return 0, &ValidationError{Field: "choice", Reason: "must be between " + strconv.Itoa(min) + " and " + strconv.Itoa(max)}
	}
	return value, nil
}

// ParseText parses a required free-text field.
func ParseText(field, s string) (string, *ValidationError) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ValidationError{Field: field, Reason: "required"}
	}
	return s, nil
}
