package shipment

import (
	"errors"
	"fmt"

	"backoffice/internal/pkg/errs"
)

var ErrTooManyPackages = errors.New(
	"Shipments using the default eCommerce class, can only have one package. " +
		"For more than one package, use the Payload class instead.",
)

// Class selects the packaging rules a shipment is held to.
type Class int

const (
	UnknownClass Class = iota
	ECommerce
	Payload
)

func getClassStrings() map[Class]string {
	return map[Class]string{
		UnknownClass: "Unknown",
		ECommerce:    "eCommerce",
		Payload:      "Payload",
	}
}

// ParseClass maps the wire name to a Class. An empty name selects eCommerce.
func ParseClass(s string) (Class, error) {
	if s == "" {
		return ECommerce, nil
	}
	for c, name := range getClassStrings() {
		if c != UnknownClass && name == s {
			return c, nil
		}
	}
	return UnknownClass, errs.NewValueIsInvalidErrorWithCause("class", fmt.Errorf("%q is not a shipment class", s))
}

func (c Class) Validate() error {
	if _, ok := getClassRules()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("class", fmt.Errorf("%d is not a valid class", c))
	}
	return nil
}

func (c Class) String() string {
	if s, ok := getClassStrings()[c]; ok {
		return s
	}
	return "Unknown"
}

// classRule is one row of the packaging rule table.
type classRule struct {
	maxPackages       int // 0 means unlimited
	requireDimensions bool
	defaults          Dimensions
}

func getClassRules() map[Class]classRule {
	return map[Class]classRule{
		ECommerce: {
			maxPackages: 1,
			defaults:    Dimensions{Height: 1, Length: 15, Width: 10},
		},
		Payload: {
			requireDimensions: true,
		},
	}
}

// Apply checks packages against the class rules and returns them with class
// defaults filled in. A package count over the class limit is reported on its
// own, before any per-package rule.
func (c Class) Apply(packages []Package) ([]Package, error) {
	rule, ok := getClassRules()[c]
	if !ok {
		return nil, c.Validate()
	}

	if rule.maxPackages > 0 && len(packages) > rule.maxPackages {
		return nil, errs.NewValueIsInvalidErrorWithCause("packages", ErrTooManyPackages)
	}

	if rule.requireDimensions {
		if v := missingDimensions(packages); v.HasViolations() {
			return nil, v
		}
		return append([]Package(nil), packages...), nil
	}

	out := make([]Package, 0, len(packages))
	for _, p := range packages {
		out = append(out, p.withDefaults(rule.defaults))
	}
	return out, nil
}

// missingDimensions reports the absent dimensions of the first package that lacks any.
func missingDimensions(packages []Package) *errs.ValidationError {
	v := errs.NewValidationError("shipment", "packages")
	for _, p := range packages {
		for _, dim := range p.Dimensions().missing() {
			v.Add(dim, fmt.Sprintf("Packages in a Shipment of Payload class must provide the %s in centimeters.", dim))
		}
		if v.HasViolations() {
			break
		}
	}
	return v
}
