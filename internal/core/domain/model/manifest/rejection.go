package manifest

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// RejectionReason names why an overpack could not join a manifest.
type RejectionReason int

const (
	AlreadyManifested RejectionReason = iota + 1
	NoShipments
	EntryPointMismatch
)

func (r RejectionReason) String() string {
	switch r {
	case AlreadyManifested:
		return "already_manifested"
	case NoShipments:
		return "no_shipments"
	case EntryPointMismatch:
		return "entry_point_mismatch"
	}
	return "unknown"
}

// RejectionError is a validation failure naming the offending overpack.
type RejectionError struct {
	OverpackID string
	Reason     RejectionReason
	Message    string
}

func newAlreadyManifested(overpackID string) *RejectionError {
	return &RejectionError{
		OverpackID: overpackID,
		Reason:     AlreadyManifested,
		Message:    fmt.Sprintf("Already manifested Overpacks (overpack id: %s) cannot be added.", overpackID),
	}
}

func newNoShipments(overpackID string) *RejectionError {
	return &RejectionError{
		OverpackID: overpackID,
		Reason:     NoShipments,
		Message:    fmt.Sprintf("Overpacks with no Shipments (overpack id: %s) cannot be manifested.", overpackID),
	}
}

func newEntryPointMismatch(overpackID, want, got string) *RejectionError {
	return &RejectionError{
		OverpackID: overpackID,
		Reason:     EntryPointMismatch,
		Message: fmt.Sprintf("Overpacks in one Manifest must share entry point %s (overpack id: %s has %s).",
			want, overpackID, got),
	}
}

func (e *RejectionError) Error() string {
	return e.Message
}

func (e *RejectionError) Unwrap() error {
	return errs.ErrValidationFailed
}
