package store

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound covers both "row absent" and "row owned by someone else";
	// the two are collapsed so callers cannot probe for other users' records.
	ErrNotFound = errors.New("record not found")

	// ErrNoActiveBudget is returned when the caller has no budget with a nil end date.
	ErrNoActiveBudget = errors.New("no active budget found")
)

// ValidationError reports the missing or malformed fields of a payload.
// Detected before any store access.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid or missing fields: " + strings.Join(e.Fields, ", ")
}

// fieldErrors accumulates offending field names while validating a payload.
type fieldErrors []string

func (f *fieldErrors) add(field string) {
	*f = append(*f, field)
}

// err returns a ValidationError if any field was reported, nil otherwise.
func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
