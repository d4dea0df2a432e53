package shipment

import (
	"errors"
	"strings"

	"backoffice/internal/pkg/errs"
)

// LineItem is a customs declaration line.
type LineItem struct {
	Description   string
	Quantity      int
	Value         float64
	Weight        float64
	OriginCountry string
}

func (l LineItem) Validate() error {
	var err error
	if strings.TrimSpace(l.Description) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("line_items.description"))
	}
	if l.Quantity < 1 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("line_items.quantity", l.Quantity, 1, "unbounded"))
	}
	if l.Value < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidError("line_items.value"))
	}
	return err
}
