package errs

import (
	"errors"
	"fmt"
	"strings"
)

var ErrValidationFailed = errors.New("validation failed")

// Violation is a single failed rule, addressed by the property it concerns.
type Violation struct {
	Path    string `json:"propertyPath"`
	Message string `json:"message"`
}

// ValidationError collects every rule an entity broke during one validation pass.
type ValidationError struct {
	Entity     string
	ID         any
	Violations []Violation
}

func NewValidationError(entity string, id any) *ValidationError {
	return &ValidationError{
		Entity: entity,
		ID:     id,
	}
}

func (e *ValidationError) Add(path, message string) {
	e.Violations = append(e.Violations, Violation{Path: path, Message: message})
}

func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// ErrorOrNil returns nil when nothing was recorded so callers can return it directly.
func (e *ValidationError) ErrorOrNil() error {
	if e == nil || !e.HasViolations() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Path+": "+v.Message)
	}
	return fmt.Sprintf("%s: %s %s: %s", ErrValidationFailed, e.Entity, sanitize(e.ID), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
