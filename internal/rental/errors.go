package rental

import (
	"errors"
	"fmt"
)

// Field names used when classifying input failures
const (
	FieldID    = "id"
	FieldModel = "model"
	FieldPrice = "price"
)

// Reasons reported by ValidationFailure
const (
	ReasonEmpty       = "empty"
	ReasonNonPositive = "non-positive"
)

// ParseFailure reports text that could not be converted to the expected numeric type
type ParseFailure struct {
	Field string
	Input string
	Err   error
}

func (e *ParseFailure) Error() string {
	return fmt.Sprintf("cannot parse %s from %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseFailure) Unwrap() error {
	return e.Err
}

// ValidationFailure reports a parsed value that violates a rental entry rule
type ValidationFailure struct {
	Field  string
	Reason string
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("%s is %s", e.Field, e.Reason)
}

// Message turns an add-entry failure into the text shown to the user.
func Message(err error) string {
	var parseErr *ParseFailure
	if errors.As(err, &parseErr) {
		return "Invalid input: please enter valid numeric values for ID and price."
	}

	var validationErr *ValidationFailure
	if errors.As(err, &validationErr) {
		switch {
		case validationErr.Field == FieldModel && validationErr.Reason == ReasonEmpty:
			return "Invalid input: car model cannot be empty."
		case validationErr.Field == FieldPrice && validationErr.Reason == ReasonNonPositive:
			return "Invalid input: rental price must be positive."
		default:
			return fmt.Sprintf("Invalid input: %s.", validationErr)
		}
	}

	return fmt.Sprintf("An unexpected error occurred: %v", err)
}
