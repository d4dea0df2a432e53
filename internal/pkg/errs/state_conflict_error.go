package errs

import (
	"errors"
	"fmt"
)

var ErrStateConflict = errors.New("state conflict")

// StateConflictError reports an operation the entity's current state forbids,
// such as editing a manifested overpack. Reason is safe to show to the caller.
type StateConflictError struct {
	Entity string
	ID     any
	Reason string
}

func NewStateConflictError(entity string, id any, reason string) *StateConflictError {
	return &StateConflictError{
		Entity: entity,
		ID:     id,
		Reason: reason,
	}
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", ErrStateConflict, e.Entity, sanitize(e.ID), e.Reason)
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}
