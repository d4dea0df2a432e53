package shipment

import "errors"

var ErrNotDeletable = errors.New("Only test shipments and shipments without labels can be deleted.")

// Disposal is the outcome of a delete request on a shipment.
type Disposal int

const (
	DisposalNone Disposal = iota
	DisposalDelete
	DisposalCancel
	DisposalCancelLabelRetained
)

// Message is the text returned to the caller when the shipment was canceled instead of deleted.
func (d Disposal) Message() string {
	switch d {
	case DisposalCancel:
		return "This shipment will be canceled."
	case DisposalCancelLabelRetained:
		return "This shipment will be canceled instead because it has a label."
	case DisposalNone, DisposalDelete:
		return ""
	}
	return ""
}

func (d Disposal) String() string {
	switch d {
	case DisposalDelete:
		return "deleted"
	case DisposalCancel, DisposalCancelLabelRetained:
		return "canceled"
	case DisposalNone:
		return "none"
	}
	return "none"
}
