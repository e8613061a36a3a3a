package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound         = errors.New("property not found")
	ErrOriginalNotFound = fmt.Errorf("original %w", ErrNotFound)
	ErrUnauthorized     = errors.New("property is owned by another agent")
	ErrValidation       = errors.New("validation failed")
	ErrTokenInvalid     = errors.New("invalid jwt token")

	// ErrNotRentable is a NotFound: only live rent listings can be booked.
	ErrNotRentable = fmt.Errorf("%w or not available for rent", ErrNotFound)

	ErrBookingState = errors.New("booking cannot move to the requested status")
)

// ValidationError carries a message per offending field.
// errors.Is(err, ErrValidation) matches it.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
