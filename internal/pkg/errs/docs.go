// Package errs is the error taxonomy shared by the domain, the use cases and the
// HTTP adapter.
//
// Every type unwraps to a sentinel so callers classify with errors.Is and read
// details with errors.As:
//
//	ErrObjectNotFound     missing, or owned by another principal (both answer 404)
//	ErrStateConflict      the entity's current state forbids the operation
//	ErrValidationFailed   one or more rule violations, each with a property path
//	ErrValueIsRequired    a required value is empty
//	ErrValueIsInvalid     a value is malformed
//	ErrValueIsOutOfRange  a value is outside its bounds
//	ErrPersistenceFailed  the store failed; never shown to the caller
package errs
