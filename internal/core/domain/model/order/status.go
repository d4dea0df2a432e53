package order

import (
	"fmt"
	"strings"

	"backoffice/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
//	Holding ⇄ Processing ──(system)──> Ready ──(system)──> Packing ──> Fulfilled
//	                ^                    │
//	                └──── user edit ─────┘
//
// Backordered and Exception are set by the warehouse and may be edited back to
// Holding or Processing.
type Status int

const (
	Unknown Status = iota
	Holding
	Processing
	Packing
	Ready
	Fulfilled
	Backordered
	Exception
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Holding:     "Holding",
		Processing:  "Processing",
		Packing:     "Packing",
		Ready:       "Ready",
		Fulfilled:   "Fulfilled",
		Backordered: "Backordered",
		Exception:   "Exception",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Holding:     "Holding",
		Processing:  "Processing",
		Packing:     "Packing",
		Ready:       "Ready",
		Fulfilled:   "Fulfilled",
		Backordered: "Backordered",
		Exception:   "Exception",
	}
}

// ParseStatus maps a case-insensitive status name to a Status.
func ParseStatus(s string) (Status, error) {
	for st, name := range getValidStatusStrings() {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsUserSettable reports whether a user may request this status.
func (s Status) IsUserSettable() bool {
	return s == Holding || s == Processing
}

// IsDeletable reports whether an order in this status may be deleted.
func (s Status) IsDeletable() bool {
	switch s {
	case Backordered, Exception, Holding, Processing, Ready:
		return true
	case Unknown, Packing, Fulfilled:
		return false
	}
	return false
}

// transition is what a user edit does to an order stored in a given status.
type transition struct {
	frozen          bool
	forced          Status
	resetQuantities bool
}

func getTransitions() map[Status]transition {
	return map[Status]transition{
		Holding:     {},
		Processing:  {},
		Backordered: {},
		Exception:   {},
		Ready:       {forced: Processing, resetQuantities: true},
		Packing:     {frozen: true},
		Fulfilled:   {frozen: true},
	}
}

// transitionFrom returns the edit rule for the stored status. Unknown behaves
// like a fresh order.
func (s Status) transitionFrom() transition {
	if t, ok := getTransitions()[s]; ok {
		return t
	}
	return transition{}
}

// Next resolves the status an edit ends in. requested is Unknown when the edit
// does not touch the status.
func (s Status) Next(requested Status) Status {
	t := s.transitionFrom()
	if t.forced != Unknown {
		return t.forced
	}
	if requested != Unknown {
		return requested
	}
	if s == Unknown {
		return Processing
	}
	return s
}

// IsFrozen reports whether orders in this status reject every user edit.
func (s Status) IsFrozen() bool {
	return s.transitionFrom().frozen
}
