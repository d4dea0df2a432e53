package kernel

import (
	"fmt"
	"strings"

	"backoffice/internal/pkg/errs"
)

const maxEntryPointLength = 6

// EntryPoint is the code of the carrier hub a shipment is injected at.
type EntryPoint struct {
	code string
}

func NewEntryPoint(code string) (EntryPoint, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return EntryPoint{}, errs.NewValueIsRequiredError("entry_point")
	}
	if len(code) > maxEntryPointLength {
		return EntryPoint{}, errs.NewValueIsInvalidErrorWithCause(
			"entry_point", fmt.Errorf("%q is longer than %d characters", code, maxEntryPointLength))
	}
	return EntryPoint{code: code}, nil
}

func (e EntryPoint) Code() string {
	return e.code
}

func (e EntryPoint) IsEmpty() bool {
	return e.code == ""
}

func (e EntryPoint) IsEqual(other EntryPoint) bool {
	return e.code == other.code
}

func (e EntryPoint) String() string {
	return e.code
}
